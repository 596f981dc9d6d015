// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
)

// RawInput is the input accumulated by a platform adapter since the
// previous frame.
type RawInput struct {
	// Events in the order they occurred.
	Events []event.Event
	// Modifiers held at the end of the frame.
	Modifiers key.Modifiers
	// Time of the frame relative to an arbitrary base. Zero means the
	// platform could not supply a time, in which case the previous frame
	// time plus PredictedDt is used.
	Time time.Duration
	// PredictedDt is the expected time until the next frame.
	PredictedDt time.Duration
	// Focused reports whether the window has keyboard focus.
	Focused bool
	// ScreenRect is the window area in points. An empty rectangle keeps
	// the previous frame's value.
	ScreenRect f32.Rectangle
}

// defaultPredictedDt is used when RawInput.PredictedDt is unset.
const defaultPredictedDt = time.Second / 60
