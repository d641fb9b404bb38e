// SPDX-License-Identifier: Unlicense OR MIT

// Package terminal implements an app.Host from the mouse events of a
// tcell screen.
//
// Terminals report cell positions and the set of held buttons with
// every mouse event. The host derives relative movement from the
// previous position and synthesizes down and up events when the held
// set changes, matching what a browser delivers.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"gioui.org/mousebridge/app"
)

// ErrQuit is returned by Run when the user presses Esc or Ctrl-C.
var ErrQuit = errors.New("terminal: quit")

// Host delivers the mouse events of a tcell.Screen to listeners.
type Host struct {
	screen tcell.Screen

	mu        sync.Mutex
	listeners map[string][]*listener
	seen      bool
	last      image.Point
	buttons   int
}

type listener struct {
	h    *Host
	name string
	fn   func(app.HostEvent)
}

// NewHost returns a Host for s. Mouse reporting must be enabled on s
// for events to arrive.
func NewHost(s tcell.Screen) *Host {
	return &Host{
		screen:    s,
		listeners: make(map[string][]*listener),
	}
}

// Root returns the screen.
func (h *Host) Root() (app.Element, error) {
	if h.screen == nil {
		return nil, fmt.Errorf("terminal: no screen: %w", app.ErrNoWindow)
	}
	return h.screen, nil
}

// Listen implements app.Host. Terminals have no default handling
// to suppress, so opts is ignored.
func (h *Host) Listen(target app.Element, name string, opts app.ListenOptions, fn func(app.HostEvent)) (app.Listener, error) {
	if s, ok := target.(tcell.Screen); !ok || s != h.screen {
		return nil, fmt.Errorf("terminal: target %T is not the host screen", target)
	}
	l := &listener{h: h, name: name, fn: fn}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[name] = append(h.listeners[name], l)
	return l, nil
}

// Run delivers screen events until ctx is done, the screen is
// finalized, or a quit key is pressed.
func (h *Host) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !h.Handle(ev) {
			return ErrQuit
		}
	}
}

// Handle translates ev into host events. It returns false if ev is
// a quit key.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		}
	case *tcell.EventMouse:
		h.mouse(ev)
	}
	return true
}

func (h *Host) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := image.Pt(x, y)
	mask := ev.Buttons()

	h.mu.Lock()
	var move, down bool
	var delta image.Point
	if !h.seen || pos != h.last {
		move = true
		if h.seen {
			delta = pos.Sub(h.last)
		}
		h.seen = true
		h.last = pos
	}
	dy := wheelDelta(mask)
	// Wheel events don't reliably report held buttons.
	buttons := h.buttons
	if dy == 0 {
		buttons = buttonsFromMask(mask)
	}
	changed := buttons != h.buttons
	if changed {
		down = buttons&^h.buttons != 0
		h.buttons = buttons
	}
	h.mu.Unlock()

	if move {
		h.dispatch(app.EventMouseMove, app.MouseEvent{Client: pos, Movement: delta, Buttons: buttons})
	}
	if dy != 0 {
		h.dispatch(app.EventWheel, app.WheelEvent{DeltaY: float64(dy), DeltaMode: app.DeltaLine})
	}
	if changed {
		name := app.EventMouseUp
		if down {
			name = app.EventMouseDown
		}
		h.dispatch(name, app.MouseEvent{Client: pos, Buttons: buttons})
	}
}

func (h *Host) dispatch(name string, ev app.HostEvent) {
	h.mu.Lock()
	ls := append([]*listener(nil), h.listeners[name]...)
	h.mu.Unlock()
	for _, l := range ls {
		l.fn(ev)
	}
}

func (l *listener) Remove() {
	h := l.h
	h.mu.Lock()
	defer h.mu.Unlock()
	ls := h.listeners[l.name]
	for i, l2 := range ls {
		if l2 == l {
			h.listeners[l.name] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// buttonsFromMask converts tcell buttons to the browser bitmask.
func buttonsFromMask(m tcell.ButtonMask) int {
	var b int
	if m&tcell.ButtonPrimary != 0 {
		b |= 1 << 0
	}
	if m&tcell.ButtonSecondary != 0 {
		b |= 1 << 1
	}
	if m&tcell.ButtonMiddle != 0 {
		b |= 1 << 2
	}
	return b
}

func wheelDelta(m tcell.ButtonMask) int {
	var dy int
	if m&tcell.WheelUp != 0 {
		dy--
	}
	if m&tcell.WheelDown != 0 {
		dy++
	}
	return dy
}
