// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

// DebugCommands selects how driver methods are instrumented
type DebugCommands int

// Instrumentation levels, combinable
const (
	DebugCommandsNone     DebugCommands = 0
	DebugCommandsLog      DebugCommands = 1 << 0
	DebugCommandsSystrace DebugCommands = 1 << 1
)

// String returns a readable level, e.g. "log|systrace"
func (d DebugCommands) String() string {
	switch d {
	case DebugCommandsNone:
		return "none"
	case DebugCommandsLog:
		return "log"
	case DebugCommandsSystrace:
		return "systrace"
	case DebugCommandsLog | DebugCommandsSystrace:
		return "log|systrace"
	}
	return "invalid"
}

// DebugCommandBegin marks the start of methodName. Asynchronous methods run
// later on the command stream, so the marker is queued there too.
// It does nothing unless built with koru_debug_log or koru_debug_systrace.
func (b *Base) DebugCommandBegin(cmds CommandQueue, synchronous bool, methodName string) {
	if DebugCommandsLevel == DebugCommandsNone {
		return
	}
	b.debugCommandBegin(DebugCommandsLevel, cmds, synchronous, methodName)
}

// DebugCommandEnd marks the end of methodName, see DebugCommandBegin.
func (b *Base) DebugCommandEnd(cmds CommandQueue, synchronous bool, methodName string) {
	if DebugCommandsLevel == DebugCommandsNone {
		return
	}
	b.debugCommandEnd(DebugCommandsLevel, cmds, synchronous, methodName)
}

func (b *Base) debugCommandBegin(level DebugCommands, cmds CommandQueue, synchronous bool, methodName string) {
	if level&DebugCommandsLog != 0 {
		b.logger.Debug(methodName)
	}
	if level&DebugCommandsSystrace != 0 {
		tracer := b.tracer
		tracer.Begin(methodName)
		if !synchronous {
			cmds.QueueCommand(func() {
				tracer.Begin(methodName)
			})
		}
	}
}

func (b *Base) debugCommandEnd(level DebugCommands, cmds CommandQueue, synchronous bool, methodName string) {
	if level&DebugCommandsSystrace != 0 {
		tracer := b.tracer
		// queued first so the end lands right behind the bracketed command
		if !synchronous {
			cmds.QueueCommand(func() {
				tracer.End()
			})
		}
		tracer.End()
	}
}
