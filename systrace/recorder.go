// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package systrace

import "sync"

// Kind tells a begin marker apart from an end marker
type Kind int

// Marker kinds
const (
	BeginMarker Kind = iota
	EndMarker
)

func (k Kind) String() string {
	if k == BeginMarker {
		return "begin"
	}
	return "end"
}

// Event is a single recorded marker. Name is empty for end markers.
type Event struct {
	Kind Kind
	Name string
}

// Recorder keeps every marker it receives, in arrival order.
type Recorder struct {
	mutex  sync.Mutex
	events []Event
}

// Begin implements Tracer
func (r *Recorder) Begin(name string) {
	r.mutex.Lock()
	r.events = append(r.events, Event{Kind: BeginMarker, Name: name})
	r.mutex.Unlock()
}

// End implements Tracer
func (r *Recorder) End() {
	r.mutex.Lock()
	r.events = append(r.events, Event{Kind: EndMarker})
	r.mutex.Unlock()
}

// Events returns a copy of the markers recorded so far
func (r *Recorder) Events() []Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset forgets every recorded marker
func (r *Recorder) Reset() {
	r.mutex.Lock()
	r.events = nil
	r.mutex.Unlock()
}
