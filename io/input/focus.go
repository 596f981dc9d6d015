// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/semantic"
)

// Focus tracks which element has keyboard focus.
//
// Elements that can take focus call InterestedInFocus every frame, in
// traversal order. Tab moves focus to the next interested element and
// Shift-Tab to the previous. An element that stops calling
// InterestedInFocus loses focus at the end of the frame.
type Focus struct {
	id              event.ID
	idPreviousFrame event.ID
	// idNextFrame is applied at the start of the next frame.
	idNextFrame event.ID
	// giveToNext is set when Tab moved focus away from its holder; the
	// next interested element takes it.
	giveToNext     bool
	lastInterested event.ID
	locked         bool

	pressedTab      bool
	pressedShiftTab bool
	// accessRequest is the element an assistive technology asked to
	// focus this frame.
	accessRequest event.ID

	focusable map[event.ID]struct{}
}

func newFocus() Focus {
	return Focus{focusable: make(map[event.ID]struct{})}
}

func (f *Focus) beginFrame(raw *RawInput) {
	f.idPreviousFrame = f.id
	if f.idNextFrame != 0 {
		f.id = f.idNextFrame
		f.idNextFrame = 0
	}
	f.pressedTab = false
	f.pressedShiftTab = false
	f.accessRequest = 0
	maps.Clear(f.focusable)

	for _, e := range raw.Events {
		switch e := e.(type) {
		case key.Event:
			if e.State != key.Press {
				continue
			}
			switch e.Name {
			case key.NameEscape:
				f.id = 0
				f.locked = false
				return
			case key.NameTab:
				if f.locked {
					break
				}
				if e.Modifiers.Contain(key.ModShift) {
					f.pressedShiftTab = true
				} else {
					f.pressedTab = true
				}
			}
		case semantic.ActionEvent:
			if e.Action == semantic.ActionFocus {
				f.accessRequest = e.Target
			}
		}
	}
}

// InterestedInFocus registers id as able to take keyboard focus this
// frame. Call it in traversal order, once per frame per element. The
// zero ID is ignored.
func (f *Focus) InterestedInFocus(id event.ID) {
	if id == 0 {
		return
	}
	if f.accessRequest == id {
		f.id = id
		f.accessRequest = 0
		f.giveToNext = false
		f.pressedTab = false
		f.pressedShiftTab = false
	}

	switch {
	case f.giveToNext && !f.HadFocusLastFrame(id):
		f.id = id
		f.giveToNext = false
	case f.id == id:
		if f.pressedTab && !f.locked {
			f.id = 0
			f.giveToNext = true
			f.pressedTab = false
		} else if f.pressedShiftTab && !f.locked {
			// Delayed a frame so the receiver reports GainedFocus.
			f.idNextFrame = f.lastInterested
			f.pressedShiftTab = false
		}
	case f.id == 0 && !f.giveToNext && f.pressedTab:
		f.id = id
		f.pressedTab = false
	case f.id == 0 && !f.giveToNext && f.idNextFrame == 0 && f.pressedShiftTab:
		f.id = id
		f.pressedShiftTab = false
	}

	f.focusable[id] = struct{}{}
	f.lastInterested = id
}

func (f *Focus) endFrame() {
	if f.id == 0 {
		return
	}
	// Focus requested this frame is kept until the holder had a chance
	// to register.
	recentlyGained := f.idPreviousFrame != f.id
	if _, ok := f.focusable[f.id]; !ok && !recentlyGained {
		f.id = 0
	}
}

// Focused returns the element with focus, if any.
func (f *Focus) Focused() (event.ID, bool) {
	return f.id, f.id != 0
}

// HasFocus reports whether id has focus.
func (f *Focus) HasFocus(id event.ID) bool {
	return id != 0 && f.id == id
}

// GainedFocus reports whether id has focus this frame but did not have
// it last frame.
func (f *Focus) GainedFocus(id event.ID) bool {
	return f.HasFocus(id) && f.idPreviousFrame != id
}

// LostFocus reports whether id had focus last frame but does not have
// it now.
func (f *Focus) LostFocus(id event.ID) bool {
	return f.HadFocusLastFrame(id) && f.id != id
}

// HadFocusLastFrame reports whether id had focus in the previous frame.
func (f *Focus) HadFocusLastFrame(id event.ID) bool {
	return id != 0 && f.idPreviousFrame == id
}

// RequestFocus gives focus to id immediately.
func (f *Focus) RequestFocus(id event.ID) {
	f.id = id
}

// SurrenderFocus removes focus from id if it has it.
func (f *Focus) SurrenderFocus(id event.ID) {
	if f.HasFocus(id) {
		f.id = 0
	}
}

// LockFocus prevents Tab and Shift-Tab from moving focus away from id,
// if id has focus. Escape always unlocks.
func (f *Focus) LockFocus(id event.ID, lock bool) {
	if f.HasFocus(id) {
		f.locked = lock
	}
}

// IsLocked reports whether focus is locked.
func (f *Focus) IsLocked() bool {
	return f.locked
}

// Focusable returns the elements that registered interest in focus this
// frame, ordered by ID.
func (f *Focus) Focusable() []event.ID {
	ids := maps.Keys(f.focusable)
	slices.Sort(ids)
	return ids
}
