// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Tag is the stable identifier for an event target, such as
// a window. For a target t, the tag is typically &t.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Queue is an ordered channel of events of a single type. Producers
// Send events and consumers Drain them once per tick. A Queue is safe
// for concurrent use; the zero value is an empty queue.
type Queue[T Event] struct {
	mu     sync.Mutex
	events []T
}

// Send appends e to the queue.
func (q *Queue[T]) Send(e T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// Drain returns the queued events in the order they were sent
// and empties the queue.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	evs := slices.Clone(q.events)
	q.events = q.events[:0]
	return evs
}

// Len returns the number of queued events.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
