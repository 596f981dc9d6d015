// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events.
package key

import (
	"runtime"
	"strings"
)

// An Event is generated when a key is pressed or released. For
// text input use EditEvent.
type Event struct {
	// Name of the logical key, taking the keyboard layout into account.
	Name Name
	// Physical is the name of the key at the same position on a US
	// keyboard, or the empty Name if the platform doesn't report it.
	Physical Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
	// Repeat reports whether the event was generated by key repeat.
	// It is recomputed by the input engine from the set of keys
	// already held down.
	Repeat bool
}

// An EditEvent carries text typed by the user, after any input
// method processing.
type EditEvent struct {
	Text string
}

// A CompositionEvent is generated by an input method while the
// user composes text. It is passed through unprocessed.
type CompositionEvent struct {
	Kind CompositionKind
	// Text is the preedit string for CompositionPreedit, and the
	// final text for CompositionCommit.
	Text string
}

// CompositionKind is the kind of a CompositionEvent.
type CompositionKind uint8

const (
	// CompositionEnabled is sent when the input method is activated.
	CompositionEnabled CompositionKind = iota
	// CompositionPreedit updates the uncommitted text.
	CompositionPreedit
	// CompositionCommit finishes the composition.
	CompositionCommit
	// CompositionDisabled is sent when the input method is deactivated.
	CompositionDisabled
)

// Shortcut is a key combined with a set of modifiers, such as
// Ctrl-S.
type Shortcut struct {
	Modifiers Modifiers
	Name      Name
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
	// ModShortcut is the logical shortcut modifier: set whenever
	// ModCommand is held on Apple platforms, or ModCtrl elsewhere.
	// Platform adapters set it through Modifiers.Logical.
	ModShortcut
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used, via unicode.ToUpper.
// The shift modifier is taken into account, all other
// modifiers are ignored. For example, the "shift-1" and "ctrl-shift-1"
// combinations both give the Name "!" with the US keyboard layout.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
	NameShortcut       Name = "Short"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
	NameBack           Name = "Back"
)

var isApple = runtime.GOOS == "darwin" || runtime.GOOS == "ios"

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool {
	return m == 0
}

// Logical returns m with ModShortcut set if the platform's shortcut
// modifier is held.
func (m Modifiers) Logical() Modifiers {
	return m.logical(isApple)
}

func (m Modifiers) logical(apple bool) Modifiers {
	short := ModCtrl
	if apple {
		short = ModCommand
	}
	if m.Contain(short) {
		m |= ModShortcut
	}
	return m
}

// MatchesLogically reports whether m, the modifiers of an event,
// satisfy pattern, the modifiers of a shortcut. Alt and Shift in
// pattern must be held, extra Alt and Shift are ignored. Ctrl and
// the shortcut modifier must match exactly unless pattern asks for
// ModCommand, in which case Ctrl must match and Command must be held.
func (m Modifiers) MatchesLogically(pattern Modifiers) bool {
	if pattern.Contain(ModAlt) && !m.Contain(ModAlt) {
		return false
	}
	if pattern.Contain(ModShift) && !m.Contain(ModShift) {
		return false
	}
	return m.cmdCtrlMatches(pattern)
}

func (m Modifiers) cmdCtrlMatches(pattern Modifiers) bool {
	if pattern.Contain(ModCommand) {
		return m.Contain(ModCommand) && pattern.Contain(ModCtrl) == m.Contain(ModCtrl)
	}
	if !pattern.Contain(ModCtrl) && !pattern.Contain(ModShortcut) {
		return !m.Contain(ModCtrl) && !m.Contain(ModShortcut)
	}
	if pattern.Contain(ModCtrl) && !m.Contain(ModCtrl) {
		return false
	}
	if pattern.Contain(ModShortcut) && !m.Contain(ModShortcut) {
		return false
	}
	return true
}

// Matches reports whether e is a press of the shortcut.
func (s Shortcut) Matches(e Event) bool {
	return e.State == Press && e.Name == s.Name && e.Modifiers.MatchesLogically(s.Modifiers)
}

func (s Shortcut) String() string {
	if s.Modifiers == 0 {
		return string(s.Name)
	}
	return s.Modifiers.String() + "-" + string(s.Name)
}

func (EditEvent) ImplementsEvent()        {}
func (Event) ImplementsEvent()            {}
func (CompositionEvent) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	if m.Contain(ModShortcut) && !m.Contain(ModCtrl) && !m.Contain(ModCommand) {
		strs = append(strs, string(NameShortcut))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (k CompositionKind) String() string {
	switch k {
	case CompositionEnabled:
		return "Enabled"
	case CompositionPreedit:
		return "Preedit"
	case CompositionCommit:
		return "Commit"
	case CompositionDisabled:
		return "Disabled"
	default:
		panic("invalid CompositionKind")
	}
}
