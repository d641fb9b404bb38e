// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"log"

	"gioui.org/mousebridge/io/event"
	"gioui.org/mousebridge/io/input"
	"gioui.org/mousebridge/io/pointer"
)

// MousePlugin feeds mouse input from a Host into per-tick event
// queues. Build resolves the host root element, inserts the
// *input.Accumulator and the pointer event queues as resources and
// registers the drain system.
type MousePlugin struct {
	host Host
	cfg  config
	// listeners pin the host subscriptions for the lifetime of the
	// plugin.
	listeners []Listener
}

// Option configures a MousePlugin.
type Option func(cfg *config)

type config struct {
	target    event.Tag
	scroll    bool
	wheelOpts ListenOptions
	logger    *log.Logger
}

// NewMousePlugin returns a plugin reading input from h.
func NewMousePlugin(h Host, opts ...Option) *MousePlugin {
	cfg := config{
		scroll:    true,
		wheelOpts: ListenOptions{PreventDefault: true},
		logger:    log.Default(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &MousePlugin{host: h, cfg: cfg}
}

// Window sets the display surface tag of CursorEvents. The default
// is the primary window of the registry.
func Window(t event.Tag) Option {
	return func(cfg *config) {
		cfg.target = t
	}
}

// EmitScroll sets whether wheel input is emitted as ScrollEvents.
// When disabled, wheel input is still accumulated.
func EmitScroll(enable bool) Option {
	return func(cfg *config) {
		cfg.scroll = enable
	}
}

// SuppressWheelDefault sets whether the wheel listener may prevent
// the host from scrolling the page. It is enabled by default.
func SuppressWheelDefault(enable bool) Option {
	return func(cfg *config) {
		cfg.wheelOpts.PreventDefault = enable
	}
}

// Logger sets the logger for plugin messages.
func Logger(l *log.Logger) Option {
	if l == nil {
		panic("nil logger")
	}
	return func(cfg *config) {
		cfg.logger = l
	}
}

// Build implements Plugin. It panics if the host has no root
// element, since there is no input to bridge without one.
func (p *MousePlugin) Build(r Registry) {
	acc := input.NewAccumulator()
	ls, err := Attach(p.host, acc, p.cfg.wheelOpts)
	if err != nil {
		panic(fmt.Errorf("mousebridge: %w", err))
	}
	p.listeners = ls
	p.cfg.logger.Printf("mousebridge: attached %d listeners", len(ls))

	target := p.cfg.target
	if target == nil {
		target = r.PrimaryWindow()
	}
	w := input.Writers{
		Motion:  EventsOf[pointer.MotionEvent](r),
		Cursor:  EventsOf[pointer.CursorEvent](r),
		Buttons: EventsOf[pointer.ButtonEvent](r),
		Target:  target,
	}
	if p.cfg.scroll {
		w.Scroll = EventsOf[pointer.ScrollEvent](r)
	}
	r.InsertResource(acc)
	r.AddSystem(func() {
		input.Drain(acc, w)
	})
}
