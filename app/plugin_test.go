// SPDX-License-Identifier: Unlicense OR MIT

package app_test

import (
	"bytes"
	"errors"
	"image"
	"log"
	"reflect"
	"strings"
	"testing"

	"gioui.org/mousebridge/app"
	"gioui.org/mousebridge/app/headless"
	"gioui.org/mousebridge/io/event"
	"gioui.org/mousebridge/io/input"
	"gioui.org/mousebridge/io/pointer"
)

func newTestApp(t *testing.T, opts ...app.Option) (*app.App, *headless.Host) {
	t.Helper()
	h := headless.NewHost()
	opts = append([]app.Option{app.Logger(log.New(new(bytes.Buffer), "", 0))}, opts...)
	a := app.NewApp()
	a.AddPlugin(app.NewMousePlugin(h, opts...))
	return a, h
}

func TestPluginMotion(t *testing.T) {
	a, h := newTestApp(t)
	motion := app.EventsOf[pointer.MotionEvent](a)
	cursor := app.EventsOf[pointer.CursorEvent](a)

	h.Dispatch(app.EventMouseMove, app.MouseEvent{Client: image.Pt(100, 100), Movement: image.Pt(4, 0)})
	h.Dispatch(app.EventMouseMove, app.MouseEvent{Client: image.Pt(104, 98), Movement: image.Pt(4, -2)})
	a.Update()

	if got, want := motion.Drain(), []pointer.MotionEvent{{Delta: image.Pt(8, -2)}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
	wantCursor := []pointer.CursorEvent{{Target: a.PrimaryWindow(), Position: image.Pt(104, 98)}}
	if got := cursor.Drain(); !reflect.DeepEqual(got, wantCursor) {
		t.Errorf("got %v; want %v", got, wantCursor)
	}

	// Nothing happened since the previous tick.
	a.Update()
	if n := motion.Len() + cursor.Len(); n != 0 {
		t.Errorf("idle tick emitted %d events", n)
	}
}

func TestPluginButtons(t *testing.T) {
	a, h := newTestApp(t)
	buttons := app.EventsOf[pointer.ButtonEvent](a)

	h.Dispatch(app.EventMouseDown, app.MouseEvent{Buttons: 0b01})
	a.Update()
	h.Dispatch(app.EventMouseDown, app.MouseEvent{Buttons: 0b11})
	// A drag releasing both buttons in one event.
	h.Dispatch(app.EventMouseUp, app.MouseEvent{Buttons: 0})
	a.Update()

	want := []pointer.ButtonEvent{
		{Button: pointer.ButtonPrimary, Kind: pointer.Press},
		{Button: pointer.ButtonSecondary, Kind: pointer.Press},
		{Button: pointer.ButtonPrimary, Kind: pointer.Release},
		{Button: pointer.ButtonSecondary, Kind: pointer.Release},
	}
	if got := buttons.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestPluginScroll(t *testing.T) {
	a, h := newTestApp(t)
	scroll := app.EventsOf[pointer.ScrollEvent](a)
	h.Dispatch(app.EventWheel, app.WheelEvent{DeltaY: 120})
	h.Dispatch(app.EventWheel, app.WheelEvent{DeltaY: -40})
	a.Update()
	if got, want := scroll.Drain(), []pointer.ScrollEvent{{Delta: 80}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestPluginScrollDisabled(t *testing.T) {
	a, h := newTestApp(t, app.EmitScroll(false))
	h.Dispatch(app.EventWheel, app.WheelEvent{DeltaY: 3})
	a.Update()
	if _, ok := app.ResourceOf[*event.Queue[pointer.ScrollEvent]](a); ok {
		t.Error("unexpected scroll resource")
	}
	acc, ok := app.ResourceOf[*input.Accumulator](a)
	if !ok {
		t.Fatal("no accumulator resource")
	}
	if got, want := acc.TakeScrollDelta(), 3; got != want {
		t.Errorf("got accumulated scroll %d; want %d", got, want)
	}
}

func TestPluginOptions(t *testing.T) {
	target := new(int)
	a, h := newTestApp(t, app.Window(target), app.SuppressWheelDefault(false))
	if got, want := h.Options(app.EventWheel), []app.ListenOptions{{}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got wheel options %v; want %v", got, want)
	}
	h.Dispatch(app.EventMouseMove, app.MouseEvent{Client: image.Pt(1, 1), Movement: image.Pt(1, 1)})
	a.Update()
	evs := app.EventsOf[pointer.CursorEvent](a).Drain()
	if len(evs) != 1 || evs[0].Target != target {
		t.Errorf("got cursor events %v; want target %p", evs, target)
	}
}

func TestPluginLogs(t *testing.T) {
	var buf bytes.Buffer
	h := headless.NewHost()
	app.NewApp().AddPlugin(app.NewMousePlugin(h, app.Logger(log.New(&buf, "", 0))))
	if got := buf.String(); !strings.Contains(got, "attached 4 listeners") {
		t.Errorf("unexpected log output %q", got)
	}
}

func TestPluginNoRoot(t *testing.T) {
	h := headless.NewHost()
	h.Detached = true
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, app.ErrNoBody) {
			t.Errorf("got panic %v; want %v", err, app.ErrNoBody)
		}
	}()
	app.NewApp().AddPlugin(app.NewMousePlugin(h))
}
