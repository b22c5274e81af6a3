// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devblok/koru-backend/core"
	"github.com/devblok/koru-backend/systrace"
)

type dispatcher struct {
	destroyed int
}

func (d *dispatcher) Destroy() {
	d.destroyed++
}

func TestNewLogger(t *testing.T) {
	logger, err := core.NewLogger(core.DriverConfiguration{LogLevel: "warn"})
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.Level)

	_, err = core.NewLogger(core.DriverConfiguration{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewTracer(t *testing.T) {
	logger, _ := test.NewNullLogger()

	tracer, err := core.NewTracer(core.DriverConfiguration{Tracer: core.TracerRuntime}, logger)
	require.NoError(t, err)
	assert.IsType(t, &systrace.Runtime{}, tracer)

	tracer, err = core.NewTracer(core.DriverConfiguration{Tracer: core.TracerLog}, logger)
	require.NoError(t, err)
	assert.IsType(t, &systrace.Logrus{}, tracer)

	tracer, err = core.NewTracer(core.DriverConfiguration{Tracer: core.TracerNone}, logger)
	require.NoError(t, err)
	assert.Equal(t, systrace.Nop{}, tracer)

	_, err = core.NewTracer(core.DriverConfiguration{Tracer: "perfetto"}, logger)
	assert.True(t, errors.Is(err, core.ErrUnknownTracer))
}

func TestNewDriver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := &dispatcher{}

	drv, err := core.NewDriver(core.DriverConfiguration{Tracer: core.TracerNone}, logger, d)
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "driver created", hook.LastEntry().Message)

	assert.Same(t, d, drv.Dispatcher())
	drv.Destroy()
	drv.Destroy()
	assert.Equal(t, 1, d.destroyed)
}

func TestNewDriverUnknownTracer(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := core.NewDriver(core.DriverConfiguration{Tracer: "perfetto"}, logger, nil)
	assert.True(t, errors.Is(err, core.ErrUnknownTracer))
}

func TestTime(t *testing.T) {
	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 1000, Frames: 3})
	defer tm.Stop()

	assert.Equal(t, 1000, tm.Fps())
	assert.Equal(t, 3, tm.Frames())
	<-tm.FpsTicker().C
}
