// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vulkan adapts driver level types to the Vulkan API
package vulkan

import (
	"github.com/hyp3rd/ewrap"
	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/koru-backend/driver"
	"github.com/devblok/koru-backend/model"
)

// ErrNoFormat is returned when an element type has no Vulkan format
var ErrNoFormat = ewrap.New("no vulkan format for element type")

var formats = map[driver.ElementType]vk.Format{
	driver.ElementByte:    vk.FormatR8Sint,
	driver.ElementByte2:   vk.FormatR8g8Sint,
	driver.ElementByte3:   vk.FormatR8g8b8Sint,
	driver.ElementByte4:   vk.FormatR8g8b8a8Sint,
	driver.ElementUbyte:   vk.FormatR8Uint,
	driver.ElementUbyte2:  vk.FormatR8g8Uint,
	driver.ElementUbyte3:  vk.FormatR8g8b8Uint,
	driver.ElementUbyte4:  vk.FormatR8g8b8a8Uint,
	driver.ElementShort:   vk.FormatR16Sint,
	driver.ElementShort2:  vk.FormatR16g16Sint,
	driver.ElementShort3:  vk.FormatR16g16b16Sint,
	driver.ElementShort4:  vk.FormatR16g16b16a16Sint,
	driver.ElementUshort:  vk.FormatR16Uint,
	driver.ElementUshort2: vk.FormatR16g16Uint,
	driver.ElementUshort3: vk.FormatR16g16b16Uint,
	driver.ElementUshort4: vk.FormatR16g16b16a16Uint,
	driver.ElementInt:     vk.FormatR32Sint,
	driver.ElementUint:    vk.FormatR32Uint,
	driver.ElementFloat:   vk.FormatR32Sfloat,
	driver.ElementFloat2:  vk.FormatR32g32Sfloat,
	driver.ElementFloat3:  vk.FormatR32g32b32Sfloat,
	driver.ElementFloat4:  vk.FormatR32g32b32a32Sfloat,
	driver.ElementHalf:    vk.FormatR16Sfloat,
	driver.ElementHalf2:   vk.FormatR16g16Sfloat,
	driver.ElementHalf3:   vk.FormatR16g16b16Sfloat,
	driver.ElementHalf4:   vk.FormatR16g16b16a16Sfloat,
}

// normalized integer formats, read by shaders as floats in [-1, 1] or [0, 1]
var normalizedFormats = map[driver.ElementType]vk.Format{
	driver.ElementByte:    vk.FormatR8Snorm,
	driver.ElementByte2:   vk.FormatR8g8Snorm,
	driver.ElementByte3:   vk.FormatR8g8b8Snorm,
	driver.ElementByte4:   vk.FormatR8g8b8a8Snorm,
	driver.ElementUbyte:   vk.FormatR8Unorm,
	driver.ElementUbyte2:  vk.FormatR8g8Unorm,
	driver.ElementUbyte3:  vk.FormatR8g8b8Unorm,
	driver.ElementUbyte4:  vk.FormatR8g8b8a8Unorm,
	driver.ElementShort:   vk.FormatR16Snorm,
	driver.ElementShort2:  vk.FormatR16g16Snorm,
	driver.ElementShort3:  vk.FormatR16g16b16Snorm,
	driver.ElementShort4:  vk.FormatR16g16b16a16Snorm,
	driver.ElementUshort:  vk.FormatR16Unorm,
	driver.ElementUshort2: vk.FormatR16g16Unorm,
	driver.ElementUshort3: vk.FormatR16g16b16Unorm,
	driver.ElementUshort4: vk.FormatR16g16b16a16Unorm,
}

// Format returns the Vulkan format of an element type. When normalized
// is set, 8 and 16 bit integer types map to their normalized formats;
// every other type ignores it.
func Format(t driver.ElementType, normalized bool) (vk.Format, error) {
	if normalized {
		if format, ok := normalizedFormats[t]; ok {
			return format, nil
		}
	}
	format, ok := formats[t]
	if !ok {
		return vk.FormatUndefined, ewrap.Wrapf(ErrNoFormat, "element type %s", t).
			WithMetadata("element_type", int(t))
	}
	return format, nil
}

// VertexInputDescriptions builds the binding and attribute descriptions of
// a vertex layout bound at binding
func VertexInputDescriptions(binding, stride uint32, layout []model.Attribute) (vk.VertexInputBindingDescription, []vk.VertexInputAttributeDescription, error) {
	bindingDescription := vk.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    stride,
		InputRate: vk.VertexInputRateVertex,
	}

	attributes := make([]vk.VertexInputAttributeDescription, 0, len(layout))
	for _, attr := range layout {
		format, err := Format(attr.Type, false)
		if err != nil {
			return bindingDescription, nil, ewrap.Wrapf(err, "attribute at location %d", attr.Location)
		}
		attributes = append(attributes, vk.VertexInputAttributeDescription{
			Binding:  binding,
			Location: attr.Location,
			Format:   format,
			Offset:   attr.Offset,
		})
	}
	return bindingDescription, attributes, nil
}

// ImageCallback acknowledges the release of an acquired Vulkan image
type ImageCallback func(image vk.Image, user interface{})

// NewAcquiredImage wraps an externally acquired Vulkan image for
// scheduling with driver.Base.ScheduleRelease
func NewAcquiredImage(image vk.Image, callback ImageCallback, user interface{}) *driver.AcquiredImage {
	var release driver.ImageCallback
	if callback != nil {
		release = func(img interface{}, u interface{}) {
			callback(img.(vk.Image), u)
		}
	}
	return driver.NewAcquiredImage(image, release, user)
}
