// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devblok/koru-backend/command"
	"github.com/devblok/koru-backend/systrace"
)

func newDebugBase(t *testing.T) (*Base, *systrace.Recorder, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	recorder := &systrace.Recorder{}
	return NewBase(nil, WithLogger(logger), WithTracer(recorder)), recorder, hook
}

func begin(name string) systrace.Event {
	return systrace.Event{Kind: systrace.BeginMarker, Name: name}
}

var end = systrace.Event{Kind: systrace.EndMarker}

func TestDebugCommandsBuildLevel(t *testing.T) {
	if DebugCommandsLevel != DebugCommandsNone {
		t.Skipf("built with %s instrumentation", DebugCommandsLevel)
	}
	base, recorder, hook := newDebugBase(t)
	stream := command.NewStream()

	base.DebugCommandBegin(stream, false, "updateBufferObject")
	base.DebugCommandEnd(stream, false, "updateBufferObject")
	base.DebugCommandBegin(stream, true, "getTimerQueryValue")
	base.DebugCommandEnd(stream, true, "getTimerQueryValue")

	assert.Empty(t, recorder.Events())
	assert.Empty(t, hook.AllEntries())
	assert.Zero(t, stream.Len())
}

func TestDebugCommandsNone(t *testing.T) {
	base, recorder, hook := newDebugBase(t)
	stream := command.NewStream()

	base.debugCommandBegin(DebugCommandsNone, stream, false, "draw")
	base.debugCommandEnd(DebugCommandsNone, stream, false, "draw")

	assert.Empty(t, recorder.Events())
	assert.Empty(t, hook.AllEntries())
	assert.Zero(t, stream.Len())
}

func TestDebugCommandsLog(t *testing.T) {
	base, recorder, hook := newDebugBase(t)
	stream := command.NewStream()

	base.debugCommandBegin(DebugCommandsLog, stream, false, "draw")
	base.debugCommandEnd(DebugCommandsLog, stream, false, "draw")
	base.debugCommandBegin(DebugCommandsLog, stream, true, "readPixels")
	base.debugCommandEnd(DebugCommandsLog, stream, true, "readPixels")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "draw", entries[0].Message)
	assert.Equal(t, log.DebugLevel, entries[0].Level)
	assert.Equal(t, "readPixels", entries[1].Message)

	assert.Empty(t, recorder.Events())
	assert.Zero(t, stream.Len())
}

func TestDebugCommandsSystraceSynchronous(t *testing.T) {
	base, recorder, hook := newDebugBase(t)
	stream := command.NewStream()

	base.debugCommandBegin(DebugCommandsSystrace, stream, true, "getTimerQueryValue")
	assert.Equal(t, []systrace.Event{begin("getTimerQueryValue")}, recorder.Events())

	base.debugCommandEnd(DebugCommandsSystrace, stream, true, "getTimerQueryValue")
	assert.Equal(t, []systrace.Event{begin("getTimerQueryValue"), end}, recorder.Events())

	assert.Zero(t, stream.Len())
	assert.Empty(t, hook.AllEntries())
}

func TestDebugCommandsSystraceAsynchronous(t *testing.T) {
	base, recorder, _ := newDebugBase(t)
	stream := command.NewStream()

	var executed []systrace.Event
	base.debugCommandBegin(DebugCommandsSystrace, stream, false, "draw")
	stream.QueueCommand(func() {
		executed = recorder.Events()
	})
	base.debugCommandEnd(DebugCommandsSystrace, stream, false, "draw")

	// markers on the caller
	assert.Equal(t, []systrace.Event{begin("draw"), end}, recorder.Events())
	assert.Equal(t, 3, stream.Len())

	recorder.Reset()
	assert.Equal(t, 3, stream.Flush())

	// the queued begin ran right before the command, the end right after
	assert.Equal(t, []systrace.Event{begin("draw")}, executed)
	assert.Equal(t, []systrace.Event{begin("draw"), end}, recorder.Events())
}

func TestDebugCommandsAll(t *testing.T) {
	base, recorder, hook := newDebugBase(t)
	stream := command.NewStream()
	level := DebugCommandsLog | DebugCommandsSystrace

	base.debugCommandBegin(level, stream, false, "commit")
	base.debugCommandEnd(level, stream, false, "commit")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "commit", hook.LastEntry().Message)
	assert.Len(t, recorder.Events(), 2)
	assert.Equal(t, 2, stream.Len())
}

func TestDebugCommandsString(t *testing.T) {
	assert.Equal(t, "none", DebugCommandsNone.String())
	assert.Equal(t, "log", DebugCommandsLog.String())
	assert.Equal(t, "systrace", DebugCommandsSystrace.String())
	assert.Equal(t, "log|systrace", (DebugCommandsLog | DebugCommandsSystrace).String())
	assert.Equal(t, "invalid", DebugCommands(8).String())
}
