// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/koru-backend/systrace"
)

// Dispatcher is the backend specific command dispatcher a driver is built
// around. The driver base owns it and destroys it with itself.
type Dispatcher interface {
	// Destroy destroys internal members
	Destroy()
}

// Option configures a Base
type Option func(*Base)

// WithLogger sets the diagnostic log the driver writes to
func WithLogger(logger log.FieldLogger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTracer sets the tracer command markers are emitted into
func WithTracer(tracer systrace.Tracer) Option {
	return func(b *Base) {
		if tracer != nil {
			b.tracer = tracer
		}
	}
}

// Base carries the state every concrete driver shares: the dispatcher,
// the instrumentation sinks and the queue of resources awaiting release.
// Backends embed it and override what they need, typically Execute.
type Base struct {
	dispatcher Dispatcher

	logger log.FieldLogger
	tracer systrace.Tracer

	purgeMutex     sync.Mutex
	buffersToPurge []*BufferDescriptor
	imagesToPurge  []*AcquiredImage
}

// NewBase creates a driver base owning dispatcher, which may be nil.
// Without options the diagnostic log is discarded and markers go to the
// Go execution tracer.
func NewBase(dispatcher Dispatcher, opts ...Option) *Base {
	silent := log.New()
	silent.Out = io.Discard

	b := &Base{
		dispatcher: dispatcher,
		logger:     silent,
		tracer:     systrace.NewRuntime(nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dispatcher returns the dispatcher the driver was built with
func (b *Base) Dispatcher() Dispatcher {
	return b.dispatcher
}

// Destroy destroys the dispatcher. It does not purge; resources still
// queued are never released, so purge first.
func (b *Base) Destroy() {
	if b == nil || b.dispatcher == nil {
		return
	}
	b.dispatcher.Destroy()
	b.dispatcher = nil
}

// ScheduleDestroySlow queues buffer for release on the next Purge. This is
// the slow path, for buffers whose release is not latency sensitive.
// Ownership moves into the queue: buffer is left empty.
func (b *Base) ScheduleDestroySlow(buffer *BufferDescriptor) {
	if buffer == nil {
		return
	}
	moved := buffer.Move()

	b.purgeMutex.Lock()
	b.buffersToPurge = append(b.buffersToPurge, moved)
	b.purgeMutex.Unlock()
}

// ScheduleRelease queues image for release on the next Purge. It is called
// from the backend goroutine, typically at most once per frame, while
// Purge runs on the user goroutine. Ownership moves into the queue.
func (b *Base) ScheduleRelease(image *AcquiredImage) {
	if image == nil {
		return
	}
	moved := image.Move()

	b.purgeMutex.Lock()
	b.imagesToPurge = append(b.imagesToPurge, moved)
	b.purgeMutex.Unlock()
}

// Purge releases everything queued so far. Images are acknowledged first,
// in scheduling order, then buffers are released in scheduling order.
//
// No lock is held while callbacks run, so a callback may schedule more
// resources; those are released by the next Purge. A panicking callback is
// not recovered: queued buffers are still released on the way out, images
// after the failing one are not.
func (b *Base) Purge() {
	b.purgeMutex.Lock()
	buffers := b.buffersToPurge
	images := b.imagesToPurge
	b.buffersToPurge = nil
	b.imagesToPurge = nil
	b.purgeMutex.Unlock()

	if len(buffers) == 0 && len(images) == 0 {
		return
	}
	b.logger.WithFields(log.Fields{
		"buffers": len(buffers),
		"images":  len(images),
	}).Debug("purging driver resources")

	defer dropBuffers(buffers)

	for _, image := range images {
		image.Release()
	}
}

// Pending reports how many buffers and images await the next Purge
func (b *Base) Pending() (buffers, images int) {
	b.purgeMutex.Lock()
	defer b.purgeMutex.Unlock()
	return len(b.buffersToPurge), len(b.imagesToPurge)
}

// dropBuffers releases a detached snapshot. A panicking callback does not
// stop the buffers after it from being released.
func dropBuffers(buffers []*BufferDescriptor) {
	i := 0
	defer func() {
		if i < len(buffers) {
			dropBuffers(buffers[i+1:])
		}
	}()
	for ; i < len(buffers); i++ {
		buffers[i].Release()
	}
}

// Execute runs fn on the calling goroutine. Drivers that marshal work
// elsewhere override it.
func (b *Base) Execute(fn func()) {
	fn()
}
