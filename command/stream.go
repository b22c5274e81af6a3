// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package command provides the ordered command stream drivers consume.
package command

import "sync"

// Stream is an ordered queue of commands. Producers queue commands from any
// goroutine; the consuming goroutine runs them with Flush.
type Stream struct {
	mutex    sync.Mutex
	commands []func()
}

// NewStream creates an empty stream
func NewStream() *Stream {
	return &Stream{}
}

// QueueCommand appends command to the stream
func (s *Stream) QueueCommand(command func()) {
	if command == nil {
		return
	}
	s.mutex.Lock()
	s.commands = append(s.commands, command)
	s.mutex.Unlock()
}

// Len returns the number of commands waiting to run
func (s *Stream) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.commands)
}

// Flush runs every queued command in order on the calling goroutine and
// returns how many ran. Commands queued while flushing wait for the next
// Flush.
func (s *Stream) Flush() int {
	s.mutex.Lock()
	commands := s.commands
	s.commands = nil
	s.mutex.Unlock()

	for _, command := range commands {
		command()
	}
	return len(commands)
}
