// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"gioui.org/mousebridge/io/pointer"
)

// Accumulator holds pointer input received since the last drain.
// It is safe for concurrent use by any number of writers and a
// single draining reader.
type Accumulator struct {
	// pos is the last absolute position and delta the pending
	// movement, both packed by packPoint so that x and y always
	// change together.
	pos    atomic.Uint64
	delta  atomic.Uint64
	scroll atomic.Int32

	mu      sync.Mutex
	buttons pointer.Buttons
	pending []pointer.ButtonEvent
}

// NewAccumulator returns an empty Accumulator with every button
// released.
func NewAccumulator() *Accumulator {
	return new(Accumulator)
}

// Move records a movement to the absolute position pos, offset
// by delta from the previous position. Positions and accumulated
// deltas saturate at the int32 range.
func (a *Accumulator) Move(pos, delta image.Point) {
	a.pos.Store(packPoint(pos))
	for {
		old := a.delta.Load()
		sum := unpackPoint(old).Add(delta)
		if a.delta.CompareAndSwap(old, packPoint(sum)) {
			return
		}
	}
}

// Scroll adds d, clamped to the int32 range, to the pending
// scroll delta.
func (a *Accumulator) Scroll(d int) {
	a.scroll.Add(clamp32(d))
}

// SetButtons records b as the current set of pressed buttons and
// queues a transition for every button whose state changed. Changes
// are queued in pointer.Order.
func (a *Accumulator) SetButtons(b pointer.Buttons) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, btn := range pointer.Order {
		was, is := a.buttons.Contain(btn), b.Contain(btn)
		if was == is {
			continue
		}
		kind := pointer.Release
		if is {
			kind = pointer.Press
		}
		a.pending = append(a.pending, pointer.ButtonEvent{Button: btn, Kind: kind})
	}
	a.buttons = b
}

// TakeMovementDelta returns the movement accumulated since the
// previous call and resets it.
func (a *Accumulator) TakeMovementDelta() image.Point {
	return unpackPoint(a.delta.Swap(0))
}

// TakeScrollDelta returns the scroll accumulated since the
// previous call and resets it.
func (a *Accumulator) TakeScrollDelta() int {
	return int(a.scroll.Swap(0))
}

// TakeButtonEvents returns the queued button transitions in
// arrival order and empties the queue.
func (a *Accumulator) TakeButtonEvents() []pointer.ButtonEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pending) == 0 {
		return nil
	}
	evs := slices.Clone(a.pending)
	a.pending = a.pending[:0]
	return evs
}

// Position returns the most recent absolute position.
func (a *Accumulator) Position() image.Point {
	return unpackPoint(a.pos.Load())
}

// Buttons returns the currently pressed buttons.
func (a *Accumulator) Buttons() pointer.Buttons {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buttons
}

func packPoint(p image.Point) uint64 {
	return uint64(uint32(clamp32(p.X)))<<32 | uint64(uint32(clamp32(p.Y)))
}

func unpackPoint(v uint64) image.Point {
	return image.Point{
		X: int(int32(uint32(v >> 32))),
		Y: int(int32(uint32(v))),
	}
}

func clamp32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
