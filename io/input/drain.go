// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image"

	"gioui.org/mousebridge/io/event"
	"gioui.org/mousebridge/io/pointer"
)

// Writers are the output queues of Drain.
type Writers struct {
	Motion  *event.Queue[pointer.MotionEvent]
	Cursor  *event.Queue[pointer.CursorEvent]
	Buttons *event.Queue[pointer.ButtonEvent]
	// Scroll is optional. If nil, scroll is still accumulated but
	// never emitted.
	Scroll *event.Queue[pointer.ScrollEvent]
	// Target identifies the display surface for CursorEvents.
	Target event.Tag
}

// Drain moves the input accumulated in a since the previous call
// to the queues in w. It is meant to run exactly once per tick.
func Drain(a *Accumulator, w Writers) {
	if d := a.TakeMovementDelta(); d != (image.Point{}) {
		w.Motion.Send(pointer.MotionEvent{Delta: d})
		w.Cursor.Send(pointer.CursorEvent{
			Target:   w.Target,
			Position: a.Position(),
		})
	}
	for _, e := range a.TakeButtonEvents() {
		w.Buttons.Send(e)
	}
	if w.Scroll == nil {
		return
	}
	if d := a.TakeScrollDelta(); d != 0 {
		w.Scroll.Send(pointer.ScrollEvent{Delta: d})
	}
}
