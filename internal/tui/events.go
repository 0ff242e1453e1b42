package tui

import (
	"sync"

	"github.com/handiism/picturedb/internal/organize"
)

// EventBuffer collects progress events until the UI picks them up. Pass
// Record as the Organizer's progress callback.
type EventBuffer struct {
	mu     sync.Mutex
	events []organize.ProgressEvent
}

// NewEventBuffer returns an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Record appends e.
func (b *EventBuffer) Record(e organize.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

// Drain returns and clears the collected events.
func (b *EventBuffer) Drain() []organize.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}
