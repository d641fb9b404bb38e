// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gioui.org/mousebridge/io/input"
	"gioui.org/mousebridge/io/pointer"
)

// Host is an environment that delivers pointer events through
// callbacks, such as a browser document.
type Host interface {
	// Root returns the element listeners are attached to.
	Root() (Element, error)
	// Listen calls fn for every event named name fired at target.
	// The subscription lasts as long as the returned Listener is
	// kept and not removed.
	Listen(target Element, name string, opts ListenOptions, fn func(HostEvent)) (Listener, error)
}

// Element is a host specific event target.
type Element interface{}

// HostEvent is a host event payload. Mouse events carry a
// MouseEvent and wheel events a WheelEvent.
type HostEvent interface{}

// Listener is a live subscription.
type Listener interface {
	Remove()
}

// ListenOptions configure a subscription.
type ListenOptions struct {
	// PreventDefault allows the listener to suppress the host's
	// default handling of the event.
	PreventDefault bool
}

// MouseEvent is the payload of mouse move, down and up events.
type MouseEvent struct {
	// Client is the absolute pointer position.
	Client image.Point
	// Movement is the position change since the previous
	// move event.
	Movement image.Point
	// Buttons is the pressed buttons bitmask: bit 0 is left,
	// bit 1 right and bit 2 middle.
	Buttons int
}

// WheelEvent is the payload of wheel events.
type WheelEvent struct {
	DeltaY    float64
	DeltaMode DeltaMode
}

// DeltaMode is the unit of a WheelEvent delta.
type DeltaMode uint8

const (
	// DeltaPixel deltas are in pixels.
	DeltaPixel DeltaMode = iota
	// DeltaLine deltas are in lines of text.
	DeltaLine
	// DeltaPage deltas are in pages.
	DeltaPage
)

// Host event names.
const (
	EventMouseMove = "mousemove"
	EventMouseDown = "mousedown"
	EventMouseUp   = "mouseup"
	EventWheel     = "wheel"
)

var (
	// ErrNoWindow is returned when the host has no window.
	ErrNoWindow = errors.New("no global window exists")
	// ErrNoDocument is returned when the window has no document.
	ErrNoDocument = errors.New("window has no document")
	// ErrNoBody is returned when the document has no body.
	ErrNoBody = errors.New("document has no body")
)

// Pixels returns the vertical scroll amount in pixels, rounded to
// the nearest integer.
func (e WheelEvent) Pixels() int {
	dy := e.DeltaY
	switch e.DeltaMode {
	case DeltaLine:
		dy *= 10
	case DeltaPage:
		dy *= 120
	}
	return int(math.Round(dy))
}

// Attach subscribes acc to the mouse events of the root element of
// h. The returned listeners must be kept alive for as long as acc
// should receive input.
func Attach(h Host, acc *input.Accumulator, wheel ListenOptions) ([]Listener, error) {
	root, err := h.Root()
	if err != nil {
		return nil, fmt.Errorf("app: no root element: %w", err)
	}
	buttons := func(name string) func(HostEvent) {
		return func(e HostEvent) {
			acc.SetButtons(pointer.ButtonsFromMask(mouseEvent(name, e).Buttons))
		}
	}
	subs := []struct {
		name string
		opts ListenOptions
		fn   func(HostEvent)
	}{
		{EventMouseMove, ListenOptions{}, func(e HostEvent) {
			me := mouseEvent(EventMouseMove, e)
			acc.Move(me.Client, me.Movement)
		}},
		{EventWheel, wheel, func(e HostEvent) {
			we, ok := e.(WheelEvent)
			if !ok {
				panic(fmt.Errorf("app: %s event payload is %T, not WheelEvent", EventWheel, e))
			}
			acc.Scroll(we.Pixels())
		}},
		// Either event may change the pressed set.
		{EventMouseDown, ListenOptions{}, buttons(EventMouseDown)},
		{EventMouseUp, ListenOptions{}, buttons(EventMouseUp)},
	}
	var ls []Listener
	for _, s := range subs {
		l, err := h.Listen(root, s.name, s.opts, s.fn)
		if err != nil {
			for _, l := range ls {
				l.Remove()
			}
			return nil, fmt.Errorf("app: listen %s: %w", s.name, err)
		}
		ls = append(ls, l)
	}
	return ls, nil
}

func mouseEvent(name string, e HostEvent) MouseEvent {
	me, ok := e.(MouseEvent)
	if !ok {
		panic(fmt.Errorf("app: %s event payload is %T, not MouseEvent", name, e))
	}
	return me
}
