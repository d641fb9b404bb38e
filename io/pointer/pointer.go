// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer defines the mouse button model and the
// per-tick events produced from raw pointer input.
package pointer

import (
	"fmt"
	"image"
	"strings"

	"gioui.org/mousebridge/io/event"
)

// MotionEvent is the accumulated relative movement of the
// pointer since the previous tick.
type MotionEvent struct {
	Delta image.Point
}

// CursorEvent reports the absolute pointer position within
// the display surface identified by Target.
type CursorEvent struct {
	Target   event.Tag
	Position image.Point
}

// ButtonEvent is a single button transition.
type ButtonEvent struct {
	Button Buttons
	Kind   Kind
}

// ScrollEvent is the accumulated vertical wheel scroll since the
// previous tick. Positive values scroll down.
type ScrollEvent struct {
	Delta int
}

// Kind of a ButtonEvent.
type Kind uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// Press of a button.
	Press Kind = iota + 1
	// Release of a button.
	Release
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Order is the fixed order in which buttons are compared when a
// single state change affects several of them.
var Order = [...]Buttons{ButtonPrimary, ButtonSecondary, ButtonTertiary}

// ButtonsFromMask decodes a host pressed-buttons bitmask, where bit 0
// is the left button, bit 1 the right and bit 2 the middle. Other
// bits are ignored.
func ButtonsFromMask(mask int) Buttons {
	return Buttons(mask) & (ButtonPrimary | ButtonSecondary | ButtonTertiary)
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unknown Kind")
	}
}

func (e ButtonEvent) String() string {
	return fmt.Sprintf("%v(%v)", e.Kind, e.Button)
}

func (MotionEvent) ImplementsEvent() {}
func (CursorEvent) ImplementsEvent() {}
func (ButtonEvent) ImplementsEvent() {}
func (ScrollEvent) ImplementsEvent() {}
