// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"golang.org/x/exp/slices"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/input"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/system"
)

// Inbox accumulates the input of a window between frames. It is safe
// for concurrent use.
type Inbox struct {
	mu      sync.Mutex
	events  []event.Event
	mods    key.Modifiers
	focused bool
	screen  f32.Rectangle
	// wakeups is notified when input arrives.
	wakeups chan struct{}
}

// NewInbox returns an empty Inbox for a focused window.
func NewInbox() *Inbox {
	return &Inbox{
		focused: true,
		wakeups: make(chan struct{}, 1),
	}
}

// Push appends events.
func (b *Inbox) Push(evs ...event.Event) {
	if len(evs) == 0 {
		return
	}
	b.mu.Lock()
	b.events = append(b.events, evs...)
	b.mu.Unlock()
	b.wakeup()
}

// SetModifiers sets the modifiers currently held.
func (b *Inbox) SetModifiers(m key.Modifiers) {
	b.mu.Lock()
	changed := b.mods != m
	b.mods = m
	b.mu.Unlock()
	if changed {
		b.wakeup()
	}
}

// SetFocused records whether the window has keyboard focus, and
// delivers a system.WindowFocusEvent if it changed.
func (b *Inbox) SetFocused(focused bool) {
	b.mu.Lock()
	changed := b.focused != focused
	b.focused = focused
	if changed {
		b.events = append(b.events, system.WindowFocusEvent{Focused: focused})
	}
	b.mu.Unlock()
	if changed {
		b.wakeup()
	}
}

// SetScreenRect sets the window area, in points.
func (b *Inbox) SetScreenRect(r f32.Rectangle) {
	b.mu.Lock()
	changed := b.screen != r
	b.screen = r
	b.mu.Unlock()
	if changed {
		b.wakeup()
	}
}

// Take drains the accumulated events. The returned RawInput has no
// time; the caller sets it.
func (b *Inbox) Take() input.RawInput {
	b.mu.Lock()
	defer b.mu.Unlock()
	raw := input.RawInput{
		Events:     slices.Clone(b.events),
		Modifiers:  b.mods,
		Focused:    b.focused,
		ScreenRect: b.screen,
	}
	b.events = b.events[:0]
	return raw
}

// Wakeups returns a channel that receives a value when input is
// pending. Notifications are coalesced.
func (b *Inbox) Wakeups() <-chan struct{} {
	return b.wakeups
}

func (b *Inbox) wakeup() {
	select {
	case b.wakeups <- struct{}{}:
	default:
	}
}
