// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements an in-memory app.Host whose events
// are dispatched by the caller.
package headless

import (
	"errors"
	"sync"

	"gioui.org/mousebridge/app"
)

// Host is a scripted app.Host. Events passed to Dispatch reach the
// listeners registered for their name.
type Host struct {
	// Detached makes Root fail as if the host had no body.
	Detached bool

	mu        sync.Mutex
	root      *Element
	listeners map[string][]*listener
}

// Element is the root element of a Host.
type Element struct {
	name string
}

type listener struct {
	h    *Host
	name string
	opts app.ListenOptions
	fn   func(app.HostEvent)
}

// NewHost returns a Host with a root element and no listeners.
func NewHost() *Host {
	return &Host{
		root:      &Element{name: "body"},
		listeners: make(map[string][]*listener),
	}
}

func (h *Host) Root() (app.Element, error) {
	if h.Detached {
		return nil, app.ErrNoBody
	}
	return h.root, nil
}

func (h *Host) Listen(target app.Element, name string, opts app.ListenOptions, fn func(app.HostEvent)) (app.Listener, error) {
	if target != app.Element(h.root) {
		return nil, errors.New("headless: unknown target")
	}
	l := &listener{h: h, name: name, opts: opts, fn: fn}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[name] = append(h.listeners[name], l)
	return l, nil
}

// Dispatch calls the listeners for name with ev, in the order they
// were added.
func (h *Host) Dispatch(name string, ev app.HostEvent) {
	h.mu.Lock()
	ls := append([]*listener(nil), h.listeners[name]...)
	h.mu.Unlock()
	for _, l := range ls {
		l.fn(ev)
	}
}

// Listeners returns the number of listeners for name.
func (h *Host) Listeners(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[name])
}

// Options returns the options of the listeners for name.
func (h *Host) Options(name string) []app.ListenOptions {
	h.mu.Lock()
	defer h.mu.Unlock()
	var opts []app.ListenOptions
	for _, l := range h.listeners[name] {
		opts = append(opts, l.opts)
	}
	return opts
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
