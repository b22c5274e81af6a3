// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the engine's vertex formats
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/koru-backend/driver"
)

// Attribute describes one vertex attribute inside a vertex
type Attribute struct {
	Location uint32
	Type     driver.ElementType
	Offset   uint32
}

// Vertex is a model vertex
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec4
}

// Stride is the distance in bytes between two consecutive vertices
func (Vertex) Stride() uint32 {
	return uint32(unsafe.Sizeof(Vertex{}))
}

// Layout returns the vertex attributes, so backends can build their
// input descriptions from it. It has to match Vertex exactly
func (Vertex) Layout() []Attribute {
	return []Attribute{
		{
			Location: 0,
			Type:     driver.ElementFloat3,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Location: 1,
			Type:     driver.ElementFloat4,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
	}
}

// Bytes reinterprets vertices as raw memory, ready to be handed to the
// driver in a buffer descriptor. The result aliases vertices.
func Bytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	size := len(vertices) * int(unsafe.Sizeof(Vertex{}))
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), size)
}
