// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

// BufferCallback is invoked once the driver no longer reads buffer
type BufferCallback func(buffer []byte, user interface{})

// BufferDescriptor hands caller owned memory to the driver, along with the
// callback that gives it back. A descriptor has exactly one owner at a time;
// hand it over with Move, never by copying the struct.
type BufferDescriptor struct {
	Buffer   []byte
	Callback BufferCallback
	User     interface{}
}

// NewBufferDescriptor creates a descriptor for buffer. callback may be nil.
func NewBufferDescriptor(buffer []byte, callback BufferCallback, user interface{}) *BufferDescriptor {
	return &BufferDescriptor{
		Buffer:   buffer,
		Callback: callback,
		User:     user,
	}
}

// Move transfers ownership out of b into the returned descriptor.
// b is left empty, so releasing it afterwards does nothing.
func (b *BufferDescriptor) Move() *BufferDescriptor {
	moved := *b
	*b = BufferDescriptor{}
	return &moved
}

// Release invokes the callback with the buffer and user data, then clears
// the descriptor. Only the first call has an effect.
func (b *BufferDescriptor) Release() {
	callback, buffer, user := b.Callback, b.Buffer, b.User
	*b = BufferDescriptor{}
	if callback != nil {
		callback(buffer, user)
	}
}

// ImageCallback acknowledges the release of an acquired image
type ImageCallback func(image interface{}, user interface{})

// AcquiredImage is an externally acquired image, e.g. from a platform
// image stream, that must be explicitly handed back once the driver is
// done with it. Image is opaque to the driver.
type AcquiredImage struct {
	Image    interface{}
	Callback ImageCallback
	User     interface{}
}

// NewAcquiredImage creates a descriptor for image. callback may be nil.
func NewAcquiredImage(image interface{}, callback ImageCallback, user interface{}) *AcquiredImage {
	return &AcquiredImage{
		Image:    image,
		Callback: callback,
		User:     user,
	}
}

// Move transfers ownership out of a into the returned descriptor
func (a *AcquiredImage) Move() *AcquiredImage {
	moved := *a
	*a = AcquiredImage{}
	return &moved
}

// Release invokes the callback with the image and user data, then clears
// the descriptor. Only the first call has an effect.
func (a *AcquiredImage) Release() {
	callback, image, user := a.Callback, a.Image, a.User
	*a = AcquiredImage{}
	if callback != nil {
		callback(image, user)
	}
}
