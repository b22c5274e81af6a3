// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package systrace defines the tracing capability the driver emits command
// markers into, along with the sinks the engine ships with. A marker is a
// named begin followed, possibly on another goroutine, by an unnamed end.
package systrace

// Tracer receives scope begin and end markers. Implementations must be
// safe to call from several goroutines at once.
type Tracer interface {
	// Begin opens a named scope
	Begin(name string)

	// End closes the most recently opened scope
	End()
}

// Nop is a Tracer that drops every marker.
type Nop struct{}

// Begin implements Tracer
func (Nop) Begin(string) {}

// End implements Tracer
func (Nop) End() {}
