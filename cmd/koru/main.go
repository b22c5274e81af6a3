// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"os/signal"
	"sync/atomic"

	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/koru-backend/command"
	"github.com/devblok/koru-backend/core"
	"github.com/devblok/koru-backend/driver"
	"github.com/devblok/koru-backend/model"
	"github.com/devblok/koru-backend/vulkan"
)

var envFile = flag.String("env", "", "optional .env file to read configuration from")

// dispatcher stands in for a native backend dispatcher
type dispatcher struct {
	logger log.FieldLogger
}

func (d *dispatcher) Destroy() {
	d.logger.Info("dispatcher destroyed")
}

// threadedDriver runs everything handed to Execute on its own goroutine,
// the way a backend owning a native API context has to.
type threadedDriver struct {
	*driver.Base

	work chan func()
	done chan struct{}
}

func newThreadedDriver(base *driver.Base) *threadedDriver {
	d := &threadedDriver{
		Base: base,
		work: make(chan func()),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *threadedDriver) run() {
	defer close(d.done)
	for fn := range d.work {
		fn()
	}
}

// Execute runs fn on the backend goroutine and waits for it
func (d *threadedDriver) Execute(fn func()) {
	finished := make(chan struct{})
	d.work <- func() {
		defer close(finished)
		fn()
	}
	<-finished
}

func (d *threadedDriver) stop() {
	close(d.work)
	<-d.done
}

type counters struct {
	buffers atomic.Int64
	images  atomic.Int64
}

// recordFrame queues the commands of one frame. Each command hands its
// resources back to the driver once executed, to be purged later.
func recordFrame(drv driver.Driver, stream *command.Stream, frame int, vertices []model.Vertex, released *counters) {
	drv.DebugCommandBegin(stream, false, "updateBufferObject")
	buffer := driver.NewBufferDescriptor(model.Bytes(vertices), func([]byte, interface{}) {
		released.buffers.Add(1)
	}, frame)
	stream.QueueCommand(func() {
		drv.ScheduleDestroySlow(buffer)
	})
	drv.DebugCommandEnd(stream, false, "updateBufferObject")

	drv.DebugCommandBegin(stream, false, "setAcquiredImage")
	image := driver.NewAcquiredImage(frame, func(interface{}, interface{}) {
		released.images.Add(1)
	}, nil)
	stream.QueueCommand(func() {
		drv.ScheduleRelease(image)
	})
	drv.DebugCommandEnd(stream, false, "setAcquiredImage")
}

func main() {
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := core.LoadConfiguration(files...)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := core.NewLogger(cfg.Driver)
	if err != nil {
		log.Fatal(err)
	}

	base, err := core.NewDriver(cfg.Driver, logger, &dispatcher{logger: logger})
	if err != nil {
		logger.Fatal(err)
	}
	drv := newThreadedDriver(base)
	stream := command.NewStream()

	var v model.Vertex
	_, attributes, err := vulkan.VertexInputDescriptions(0, v.Stride(), v.Layout())
	if err != nil {
		logger.Fatal(err)
	}
	for _, attr := range attributes {
		logger.WithFields(log.Fields{
			"location": attr.Location,
			"format":   attr.Format,
			"offset":   attr.Offset,
		}).Debug("vertex attribute")
	}

	vertices := []model.Vertex{
		{Pos: glm.Vec3{0.0, -0.5, 0.0}, Color: glm.Vec4{1.0, 0.0, 0.0, 1.0}},
		{Pos: glm.Vec3{0.5, 0.5, 0.0}, Color: glm.Vec4{0.0, 1.0, 0.0, 1.0}},
		{Pos: glm.Vec3{-0.5, 0.5, 0.0}, Color: glm.Vec4{0.0, 0.0, 1.0, 1.0}},
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	time := core.NewTime(cfg.Time)
	defer time.Stop()

	var released counters
	frames := 0
EventLoop:
	for time.Frames() == 0 || frames < time.Frames() {
		select {
		case <-interrupt:
			logger.Info("interrupted")
			break EventLoop
		case <-time.FpsTicker().C:
			recordFrame(drv, stream, frames, vertices, &released)
			drv.Execute(func() {
				stream.Flush()
			})
			drv.Purge()
			frames++
		}
	}

	drv.stop()
	drv.Purge()
	logger.WithFields(log.Fields{
		"frames":  frames,
		"buffers": released.buffers.Load(),
		"images":  released.images.Load(),
	}).Info("event loop exited")
	drv.Destroy()
}
