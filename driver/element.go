// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

import (
	"strconv"
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/hyp3rd/ewrap"
)

// ErrUnknownElementType is returned for values outside the ElementType set
var ErrUnknownElementType = ewrap.New("unknown vertex element type")

// Half is the storage of an IEEE 754 half precision float
type Half uint16

// ElementType is the type of a single vertex attribute
type ElementType int

// Vertex element types
const (
	ElementByte ElementType = iota
	ElementByte2
	ElementByte3
	ElementByte4
	ElementUbyte
	ElementUbyte2
	ElementUbyte3
	ElementUbyte4
	ElementShort
	ElementShort2
	ElementShort3
	ElementShort4
	ElementUshort
	ElementUshort2
	ElementUshort3
	ElementUshort4
	ElementInt
	ElementUint
	ElementFloat
	ElementFloat2
	ElementFloat3
	ElementFloat4
	ElementHalf
	ElementHalf2
	ElementHalf3
	ElementHalf4

	elementTypeCount
)

var elementTypeNames = [...]string{
	"BYTE", "BYTE2", "BYTE3", "BYTE4",
	"UBYTE", "UBYTE2", "UBYTE3", "UBYTE4",
	"SHORT", "SHORT2", "SHORT3", "SHORT4",
	"USHORT", "USHORT2", "USHORT3", "USHORT4",
	"INT", "UINT",
	"FLOAT", "FLOAT2", "FLOAT3", "FLOAT4",
	"HALF", "HALF2", "HALF3", "HALF4",
}

func (t ElementType) String() string {
	if t < 0 || t >= elementTypeCount {
		return "ElementType(" + strconv.Itoa(int(t)) + ")"
	}
	return elementTypeNames[t]
}

// ElementTypes lists every element type in declaration order
func ElementTypes() []ElementType {
	types := make([]ElementType, 0, elementTypeCount)
	for t := ElementByte; t < elementTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ElementTypeSize returns the size in bytes of one element of type t.
// There is no fallback size: unknown types yield ErrUnknownElementType.
func ElementTypeSize(t ElementType) (int, error) {
	var size uintptr
	switch t {
	case ElementByte:
		size = unsafe.Sizeof(int8(0))
	case ElementByte2:
		size = unsafe.Sizeof([2]int8{})
	case ElementByte3:
		size = unsafe.Sizeof([3]int8{})
	case ElementByte4:
		size = unsafe.Sizeof([4]int8{})
	case ElementUbyte:
		size = unsafe.Sizeof(uint8(0))
	case ElementUbyte2:
		size = unsafe.Sizeof([2]uint8{})
	case ElementUbyte3:
		size = unsafe.Sizeof([3]uint8{})
	case ElementUbyte4:
		size = unsafe.Sizeof([4]uint8{})
	case ElementShort:
		size = unsafe.Sizeof(int16(0))
	case ElementShort2:
		size = unsafe.Sizeof([2]int16{})
	case ElementShort3:
		size = unsafe.Sizeof([3]int16{})
	case ElementShort4:
		size = unsafe.Sizeof([4]int16{})
	case ElementUshort:
		size = unsafe.Sizeof(uint16(0))
	case ElementUshort2:
		size = unsafe.Sizeof([2]uint16{})
	case ElementUshort3:
		size = unsafe.Sizeof([3]uint16{})
	case ElementUshort4:
		size = unsafe.Sizeof([4]uint16{})
	case ElementInt:
		size = unsafe.Sizeof(int32(0))
	case ElementUint:
		size = unsafe.Sizeof(uint32(0))
	case ElementFloat:
		size = unsafe.Sizeof(float32(0))
	case ElementFloat2:
		size = unsafe.Sizeof(glm.Vec2{})
	case ElementFloat3:
		size = unsafe.Sizeof(glm.Vec3{})
	case ElementFloat4:
		size = unsafe.Sizeof(glm.Vec4{})
	case ElementHalf:
		size = unsafe.Sizeof(Half(0))
	case ElementHalf2:
		size = unsafe.Sizeof([2]Half{})
	case ElementHalf3:
		size = unsafe.Sizeof([3]Half{})
	case ElementHalf4:
		size = unsafe.Sizeof([4]Half{})
	default:
		return 0, ewrap.Wrapf(ErrUnknownElementType, "element type %d", int(t)).
			WithMetadata("element_type", int(t))
	}
	return int(size), nil
}

// MustElementTypeSize is like ElementTypeSize but panics on unknown types
func MustElementTypeSize(t ElementType) int {
	size, err := ElementTypeSize(t)
	if err != nil {
		panic(err)
	}
	return size
}
