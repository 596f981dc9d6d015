// SPDX-License-Identifier: Unlicense OR MIT

// Package semantic provides the events assistive technology such as
// screen readers use to act on user interface elements.
package semantic

import "gioui.org/inputengine/io/event"

// Action is an operation requested by assistive technology.
type Action uint8

// ActionEvent requests that Action be performed on the element
// identified by Target.
type ActionEvent struct {
	Action Action
	Target event.ID
}

const (
	// ActionFocus moves the keyboard focus to the target.
	ActionFocus Action = iota
	// ActionClick activates the target.
	ActionClick
	// ActionBlur removes the keyboard focus from the target.
	ActionBlur
)

func (a Action) String() string {
	switch a {
	case ActionFocus:
		return "Focus"
	case ActionClick:
		return "Click"
	case ActionBlur:
		return "Blur"
	default:
		panic("unknown Action")
	}
}

func (ActionEvent) ImplementsEvent() {}
