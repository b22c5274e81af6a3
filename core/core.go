// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core wires engine configuration into the backend driver
package core

import (
	"context"
	"os"

	"github.com/hyp3rd/ewrap"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/koru-backend/driver"
	"github.com/devblok/koru-backend/systrace"
)

// ErrUnknownTracer is returned for an unrecognised DriverConfiguration.Tracer
var ErrUnknownTracer = ewrap.New("unknown tracer")

// NewLogger creates the engine logger, writing text to stderr
func NewLogger(cfg DriverConfiguration) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, ewrap.Wrap(err, "parsing log level")
	}

	logger := log.New()
	logger.Out = os.Stderr
	logger.Level = level
	logger.Formatter = &log.TextFormatter{FullTimestamp: true}
	return logger, nil
}

// NewTracer creates the tracer selected by cfg
func NewTracer(cfg DriverConfiguration, logger log.FieldLogger) (systrace.Tracer, error) {
	switch cfg.Tracer {
	case TracerRuntime, "":
		return systrace.NewRuntime(context.Background()), nil
	case TracerLog:
		return systrace.NewLogrus(logger), nil
	case TracerNone:
		return systrace.Nop{}, nil
	}
	return nil, ewrap.Wrapf(ErrUnknownTracer, "tracer %q", cfg.Tracer)
}

// NewDriver creates a driver base configured by cfg, logging into logger
// and owning dispatcher
func NewDriver(cfg DriverConfiguration, logger log.FieldLogger, dispatcher driver.Dispatcher) (*driver.Base, error) {
	tracer, err := NewTracer(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"tracer":        cfg.Tracer,
		"debugCommands": driver.DebugCommandsLevel.String(),
	}).Info("driver created")

	return driver.NewBase(dispatcher,
		driver.WithLogger(logger),
		driver.WithTracer(tracer),
	), nil
}
