package analytics

import (
	"context"
	"sync"
)

// Sink accepts events. Implementations must return promptly and must not
// panic; delivery is best effort.
type Sink interface {
	Emit(Event)
}

// Recorder delivers one event to a backend. Recorders run on the
// Dispatcher's worker goroutine, never on the caller's.
type Recorder interface {
	Record(ctx context.Context, e Event) error
	Name() string
}

type nopSink struct{}

func (nopSink) Emit(Event) {}

// Nop discards every event.
var Nop Sink = nopSink{}

// Recorded keeps events in memory. It is both a Sink and a Recorder and is
// safe for concurrent use.
type Recorded struct {
	mu     sync.Mutex
	events []Event
}

func (m *Recorded) Emit(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

func (m *Recorded) Record(_ context.Context, e Event) error {
	m.Emit(e)
	return nil
}

func (m *Recorded) Name() string { return "recorded" }

// Events returns a copy of everything emitted so far.
func (m *Recorded) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Names returns the names of everything emitted so far, in order.
func (m *Recorded) Names() []Name {
	events := m.Events()
	names := make([]Name, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

// Reset forgets all recorded events.
func (m *Recorded) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
