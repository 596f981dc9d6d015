// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

// A WindowFocusEvent is generated when the window gains or
// loses keyboard focus from the operating system.
type WindowFocusEvent struct {
	Focused bool
}

func (WindowFocusEvent) ImplementsEvent() {}
