// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package systrace

import (
	"context"
	"runtime/trace"
)

// Category is the runtime/trace log category markers are written under.
const Category = "koru.driver"

// Runtime writes markers into the Go execution tracer. Markers are only
// recorded while a trace is running (see runtime/trace.Start). Begin and
// End are written as log events rather than regions, since an async
// command ends on a different goroutine than the caller that began it.
type Runtime struct {
	ctx context.Context
}

// NewRuntime creates a Runtime tracer logging under ctx.
// A nil ctx is replaced with context.Background().
func NewRuntime(ctx context.Context) *Runtime {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Runtime{ctx: ctx}
}

// Begin implements Tracer
func (r *Runtime) Begin(name string) {
	if !trace.IsEnabled() {
		return
	}
	trace.Log(r.ctx, Category, "begin "+name)
}

// End implements Tracer
func (r *Runtime) End() {
	if !trace.IsEnabled() {
		return
	}
	trace.Log(r.ctx, Category, "end")
}
