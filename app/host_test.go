// SPDX-License-Identifier: Unlicense OR MIT

package app_test

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"gioui.org/mousebridge/app"
	"gioui.org/mousebridge/app/headless"
	"gioui.org/mousebridge/io/input"
	"gioui.org/mousebridge/io/pointer"
)

func TestWheelPixels(t *testing.T) {
	for _, tc := range []struct {
		e    app.WheelEvent
		want int
	}{
		{app.WheelEvent{DeltaY: 53.4}, 53},
		{app.WheelEvent{DeltaY: -53.6}, -54},
		{app.WheelEvent{DeltaY: 0.5}, 1},
		{app.WheelEvent{DeltaY: 3, DeltaMode: app.DeltaLine}, 30},
		{app.WheelEvent{DeltaY: -1, DeltaMode: app.DeltaPage}, -120},
	} {
		if got := tc.e.Pixels(); got != tc.want {
			t.Errorf("%+v.Pixels() = %d; want %d", tc.e, got, tc.want)
		}
	}
}

func TestAttach(t *testing.T) {
	h := headless.NewHost()
	acc := input.NewAccumulator()
	ls, err := app.Attach(h, acc, app.ListenOptions{PreventDefault: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(ls), 4; got != want {
		t.Fatalf("got %d listeners; want %d", got, want)
	}
	for _, name := range []string{app.EventMouseMove, app.EventMouseDown, app.EventMouseUp, app.EventWheel} {
		if n := h.Listeners(name); n != 1 {
			t.Errorf("%s has %d listeners; want 1", name, n)
		}
	}
	if got, want := h.Options(app.EventWheel), []app.ListenOptions{{PreventDefault: true}}; !reflect.DeepEqual(got, want) {
		t.Errorf("wheel options %v; want %v", got, want)
	}

	h.Dispatch(app.EventMouseMove, app.MouseEvent{Client: image.Pt(10, 20), Movement: image.Pt(2, 3)})
	h.Dispatch(app.EventMouseMove, app.MouseEvent{Client: image.Pt(11, 19), Movement: image.Pt(1, -1)})
	h.Dispatch(app.EventWheel, app.WheelEvent{DeltaY: 2, DeltaMode: app.DeltaLine})
	h.Dispatch(app.EventMouseDown, app.MouseEvent{Buttons: 0b101})
	h.Dispatch(app.EventMouseUp, app.MouseEvent{Buttons: 0b100})

	if got, want := acc.TakeMovementDelta(), image.Pt(3, 2); got != want {
		t.Errorf("got delta %v; want %v", got, want)
	}
	if got, want := acc.Position(), image.Pt(11, 19); got != want {
		t.Errorf("got position %v; want %v", got, want)
	}
	if got, want := acc.TakeScrollDelta(), 20; got != want {
		t.Errorf("got scroll %d; want %d", got, want)
	}
	want := []pointer.ButtonEvent{
		{Button: pointer.ButtonPrimary, Kind: pointer.Press},
		{Button: pointer.ButtonTertiary, Kind: pointer.Press},
		{Button: pointer.ButtonPrimary, Kind: pointer.Release},
	}
	if got := acc.TakeButtonEvents(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestAttachNoRoot(t *testing.T) {
	h := headless.NewHost()
	h.Detached = true
	if _, err := app.Attach(h, input.NewAccumulator(), app.ListenOptions{}); !errors.Is(err, app.ErrNoBody) {
		t.Errorf("got %v; want %v", err, app.ErrNoBody)
	}
}

func TestMalformedPayload(t *testing.T) {
	for _, tc := range []struct {
		name string
		ev   app.HostEvent
	}{
		{app.EventMouseMove, app.WheelEvent{}},
		{app.EventMouseDown, "click"},
		{app.EventMouseUp, nil},
		{app.EventWheel, app.MouseEvent{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := headless.NewHost()
			if _, err := app.Attach(h, input.NewAccumulator(), app.ListenOptions{}); err != nil {
				t.Fatal(err)
			}
			defer func() {
				if recover() == nil {
					t.Errorf("%s with %T payload did not panic", tc.name, tc.ev)
				}
			}()
			h.Dispatch(tc.name, tc.ev)
		})
	}
}
