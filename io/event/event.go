// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// ID is the stable identifier of a user interface element
// across frames, such as a focusable widget.
//
// By convention, the zero value denotes the non-existent ID.
type ID uint64

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
