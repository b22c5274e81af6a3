// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package driver

// CommandQueue is the part of a command stream the driver base uses.
// Queued commands run later, in order, on the stream's consuming goroutine.
type CommandQueue interface {
	QueueCommand(command func())
}

// Driver is the contract every concrete backend driver fulfils.
// *Base implements all of it; backends embed Base.
type Driver interface {
	// ScheduleDestroySlow queues a buffer for release on the next Purge
	ScheduleDestroySlow(*BufferDescriptor)

	// ScheduleRelease queues an acquired image for release on the next Purge
	ScheduleRelease(*AcquiredImage)

	// Purge releases everything queued so far, on the calling goroutine
	Purge()

	// DebugCommandBegin marks the start of a driver method
	DebugCommandBegin(cmds CommandQueue, synchronous bool, methodName string)

	// DebugCommandEnd marks the end of a driver method
	DebugCommandEnd(cmds CommandQueue, synchronous bool, methodName string)

	// Execute runs a unit of work
	Execute(func())

	// Destroy destroys internal members
	Destroy()
}

var _ Driver = (*Base)(nil)
