// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer, wheel and touch events.
//
// Positions are in points, relative to the top left corner of the
// window. Touch points are additionally delivered as mouse-like
// Moved and ButtonEvent events by the platform adapter.
package pointer

import (
	"fmt"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/key"
)

// Moved is generated when the pointer moves to Position.
type Moved struct {
	Position f32.Point
}

// ButtonEvent is generated when a pointer button is pressed
// or released.
type ButtonEvent struct {
	Position  f32.Point
	Button    Button
	Pressed   bool
	Modifiers key.Modifiers
}

// Gone is generated when the pointer leaves the window.
type Gone struct{}

// Motion carries raw, unfiltered and unaccelerated mouse
// movement, such as from a locked cursor. It is unrelated to
// the pointer position.
type Motion struct {
	Delta f32.Point
}

// Wheel is generated by a scroll wheel or a trackpad scroll
// gesture.
type Wheel struct {
	Unit WheelUnit
	// Delta is the scroll amount in Unit. Positive values scroll
	// content to the right and down.
	Delta     f32.Point
	Modifiers key.Modifiers
}

// Zoom is generated by platform zoom gestures such as a
// trackpad pinch. Factor is multiplicative; 1 is no zoom.
type Zoom struct {
	Factor float32
}

// Rotate is generated by platform rotation gestures.
type Rotate struct {
	// Radians is the clockwise rotation since the last event.
	Radians float32
}

// Touch is a raw touch event for a single finger.
type Touch struct {
	// Device identifies the touch surface.
	Device DeviceID
	// ID identifies the finger, unique per Device for the
	// duration of the touch.
	ID       TouchID
	Phase    Phase
	Position f32.Point
	// Force is the pressure of the touch in the range [0, 1],
	// or 0 if unavailable.
	Force float32
}

// Button identifies a pointer button. Values from NumButtons
// and up are valid but not tracked.
type Button uint16

// WheelUnit is the unit of a Wheel delta.
type WheelUnit uint8

// Phase of a Touch.
type Phase uint8

// DeviceID identifies a touch device.
type DeviceID uint64

// TouchID identifies a finger on a touch device.
type TouchID uint64

// NumButtons is the number of buttons whose state is tracked.
const NumButtons = 5

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Button = iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonMiddle is the middle button, often the scroll wheel.
	ButtonMiddle
	// ButtonExtra1 is the first extra button, usually "back".
	ButtonExtra1
	// ButtonExtra2 is the second extra button, usually "forward".
	ButtonExtra2
)

const (
	// UnitPoint deltas are in points, as reported by precise
	// devices such as trackpads.
	UnitPoint WheelUnit = iota
	// UnitLine deltas are in lines, as reported by notched wheels.
	UnitLine
	// UnitPage deltas are in pages.
	UnitPage
)

const (
	// TouchStart is the first event of a touch.
	TouchStart Phase = iota
	// TouchMove updates the position of a touch.
	TouchMove
	// TouchEnd is generated when the finger is lifted.
	TouchEnd
	// TouchCancel is generated when the system interrupts the touch.
	TouchCancel
)

// Tracked reports whether the state of b is tracked, that is
// whether b < NumButtons.
func (b Button) Tracked() bool {
	return b < NumButtons
}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "ButtonPrimary"
	case ButtonSecondary:
		return "ButtonSecondary"
	case ButtonMiddle:
		return "ButtonMiddle"
	case ButtonExtra1:
		return "ButtonExtra1"
	case ButtonExtra2:
		return "ButtonExtra2"
	default:
		return fmt.Sprintf("Button(%d)", uint16(b))
	}
}

func (u WheelUnit) String() string {
	switch u {
	case UnitPoint:
		return "Point"
	case UnitLine:
		return "Line"
	case UnitPage:
		return "Page"
	default:
		panic("unknown WheelUnit")
	}
}

func (p Phase) String() string {
	switch p {
	case TouchStart:
		return "Start"
	case TouchMove:
		return "Move"
	case TouchEnd:
		return "End"
	case TouchCancel:
		return "Cancel"
	default:
		panic("unknown Phase")
	}
}

func (Moved) ImplementsEvent()       {}
func (ButtonEvent) ImplementsEvent() {}
func (Gone) ImplementsEvent()        {}
func (Motion) ImplementsEvent()      {}
func (Wheel) ImplementsEvent()       {}
func (Zoom) ImplementsEvent()        {}
func (Rotate) ImplementsEvent()      {}
func (Touch) ImplementsEvent()       {}
