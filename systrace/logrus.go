// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package systrace

import (
	log "github.com/sirupsen/logrus"
)

// Logrus writes markers as trace level entries of a logrus logger.
type Logrus struct {
	logger log.FieldLogger
}

// NewLogrus creates a tracer writing into logger
func NewLogrus(logger log.FieldLogger) *Logrus {
	return &Logrus{logger: logger}
}

// Begin implements Tracer
func (l *Logrus) Begin(name string) {
	l.logger.WithField("marker", "begin").Trace(name)
}

// End implements Tracer
func (l *Logrus) End() {
	l.logger.WithField("marker", "end").Trace("")
}
