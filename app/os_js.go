// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"image"
	"syscall/js"
)

// BrowserHost is a Host backed by the page's document.
type BrowserHost struct{}

type browserListener struct {
	target js.Value
	name   string
	fn     js.Func
	opts   js.Value
}

// NewBrowserHost returns a Host for the current page.
func NewBrowserHost() *BrowserHost {
	return new(BrowserHost)
}

// Root returns the document body.
func (h *BrowserHost) Root() (Element, error) {
	win := js.Global().Get("window")
	if !win.Truthy() {
		return nil, ErrNoWindow
	}
	doc := win.Get("document")
	if !doc.Truthy() {
		return nil, ErrNoDocument
	}
	body := doc.Get("body")
	if !body.Truthy() {
		return nil, ErrNoBody
	}
	return body, nil
}

func (h *BrowserHost) Listen(target Element, name string, opts ListenOptions, fn func(HostEvent)) (Listener, error) {
	t, ok := target.(js.Value)
	if !ok {
		return nil, fmt.Errorf("app: target %T is not a js.Value", target)
	}
	decode := decodeMouse
	if name == EventWheel {
		decode = decodeWheel
	}
	l := &browserListener{
		target: t,
		name:   name,
		opts: js.ValueOf(map[string]interface{}{
			"passive": !opts.PreventDefault,
		}),
	}
	l.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := args[0]
		if opts.PreventDefault {
			e.Call("preventDefault")
		}
		fn(decode(e))
		return nil
	})
	t.Call("addEventListener", name, l.fn, l.opts)
	return l, nil
}

func (l *browserListener) Remove() {
	l.target.Call("removeEventListener", l.name, l.fn, l.opts)
	l.fn.Release()
}

// decodeMouse converts a DOM MouseEvent. Other values are passed
// through undecoded.
func decodeMouse(e js.Value) HostEvent {
	if !e.InstanceOf(js.Global().Get("MouseEvent")) {
		return e
	}
	return MouseEvent{
		Client: image.Point{
			X: e.Get("clientX").Int(),
			Y: e.Get("clientY").Int(),
		},
		Movement: image.Point{
			X: e.Get("movementX").Int(),
			Y: e.Get("movementY").Int(),
		},
		Buttons: e.Get("buttons").Int(),
	}
}

func decodeWheel(e js.Value) HostEvent {
	if !e.InstanceOf(js.Global().Get("WheelEvent")) {
		return e
	}
	return WheelEvent{
		DeltaY:    e.Get("deltaY").Float(),
		DeltaMode: DeltaMode(e.Get("deltaMode").Int()),
	}
}
