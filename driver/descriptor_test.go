// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devblok/koru-backend/driver"
)

func TestBufferDescriptorRelease(t *testing.T) {
	var (
		calls   int
		gotData []byte
		gotUser interface{}
	)
	data := []byte{1, 2, 3}
	buffer := driver.NewBufferDescriptor(data, func(b []byte, user interface{}) {
		calls++
		gotData = b
		gotUser = user
	}, 42)

	buffer.Release()
	buffer.Release()

	assert.Equal(t, 1, calls)
	assert.Equal(t, data, gotData)
	assert.Equal(t, 42, gotUser)
}

func TestBufferDescriptorMove(t *testing.T) {
	calls := 0
	buffer := driver.NewBufferDescriptor([]byte{1}, func([]byte, interface{}) {
		calls++
	}, nil)

	moved := buffer.Move()
	buffer.Release()
	assert.Zero(t, calls)

	moved.Release()
	assert.Equal(t, 1, calls)
}

func TestBufferDescriptorNilCallback(t *testing.T) {
	var buffer driver.BufferDescriptor
	assert.NotPanics(t, buffer.Release)
	assert.NotPanics(t, driver.NewBufferDescriptor([]byte{1}, nil, nil).Release)
}

func TestAcquiredImageRelease(t *testing.T) {
	var (
		calls    int
		gotImage interface{}
		gotUser  interface{}
	)
	image := driver.NewAcquiredImage("stream-frame", func(img interface{}, user interface{}) {
		calls++
		gotImage = img
		gotUser = user
	}, "consumer")

	moved := image.Move()
	image.Release()
	assert.Zero(t, calls)

	moved.Release()
	moved.Release()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "stream-frame", gotImage)
	assert.Equal(t, "consumer", gotUser)
}
