// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"gioui.org/mousebridge/io/event"
)

// System is run once per tick.
type System func()

// Plugin installs resources and systems into a Registry.
type Plugin interface {
	Build(r Registry)
}

// Registry is the interface plugins see of an App.
type Registry interface {
	// InsertResource stores v, replacing any resource of the
	// same dynamic type.
	InsertResource(v interface{})
	// Resource returns the resource of type t, if any.
	Resource(t reflect.Type) (interface{}, bool)
	// LoadOrInsertResource returns the resource with the dynamic type
	// of v. If there is none, it stores v and returns it.
	LoadOrInsertResource(v interface{}) interface{}
	// AddSystem appends s to the systems run every tick.
	AddSystem(s System)
	// PrimaryWindow identifies the main display surface.
	PrimaryWindow() event.Tag
}

// App is a tick-driven collection of resources and systems.
type App struct {
	mu        sync.Mutex
	resources map[reflect.Type]interface{}
	systems   []System
	plugins   map[reflect.Type]bool
	window    *window
	ticks     uint64
}

// window is the tag of the primary display surface.
type window struct {
	name string
}

// NewApp returns an App with no plugins.
func NewApp() *App {
	return &App{
		resources: make(map[reflect.Type]interface{}),
		plugins:   make(map[reflect.Type]bool),
		window:    &window{name: "primary"},
	}
}

// AddPlugin builds p into a. Adding a second plugin of the same type
// panics.
func (a *App) AddPlugin(p Plugin) *App {
	t := reflect.TypeOf(p)
	a.mu.Lock()
	if a.plugins[t] {
		a.mu.Unlock()
		panic(fmt.Errorf("app: plugin %v already added", t))
	}
	a.plugins[t] = true
	a.mu.Unlock()
	p.Build(a)
	return a
}

func (a *App) InsertResource(v interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resources[reflect.TypeOf(v)] = v
}

func (a *App) Resource(t reflect.Type) (interface{}, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.resources[t]
	return v, ok
}

func (a *App) LoadOrInsertResource(v interface{}) interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := reflect.TypeOf(v)
	if old, ok := a.resources[t]; ok {
		return old
	}
	a.resources[t] = v
	return v
}

func (a *App) AddSystem(s System) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.systems = append(a.systems, s)
}

func (a *App) PrimaryWindow() event.Tag {
	return a.window
}

// Update runs one tick: every system once, in the order they were
// added.
func (a *App) Update() {
	a.mu.Lock()
	systems := a.systems
	a.mu.Unlock()
	for _, s := range systems {
		s()
	}
	a.mu.Lock()
	a.ticks++
	a.mu.Unlock()
}

// Ticks returns the number of completed calls to Update.
func (a *App) Ticks() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Run calls Update every interval until ctx is done. It returns the
// context error.
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			a.Update()
		}
	}
}

// ResourceOf returns the resource of type T stored in r.
func ResourceOf[T any](r Registry) (T, bool) {
	v, ok := r.Resource(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// EventsOf returns the event queue for events of type T, inserting
// an empty queue if r has none.
func EventsOf[T event.Event](r Registry) *event.Queue[T] {
	return r.LoadOrInsertResource(new(event.Queue[T])).(*event.Queue[T])
}
