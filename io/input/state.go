// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/gesture"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
	"gioui.org/inputengine/io/system"
	"gioui.org/inputengine/unit"
)

// State is the interpreted input of a frame.
type State struct {
	opts    Options
	started bool

	pointer Pointer
	focus   Focus
	touch   map[pointer.DeviceID]*gesture.Touch
	scroll  scroll

	time        time.Duration
	unstableDt  time.Duration
	stableDt    time.Duration
	predictedDt time.Duration

	metric  unit.Metric
	screen  f32.Rectangle
	focused bool

	keysDown  map[key.Name]struct{}
	modifiers key.Modifiers
	events    []event.Event
}

// NewState returns the state before the first frame.
func NewState() *State {
	return &State{
		opts:        DefaultOptions(),
		pointer:     newPointer(),
		focus:       newFocus(),
		touch:       make(map[pointer.DeviceID]*gesture.Touch),
		scroll:      newScroll(),
		predictedDt: defaultPredictedDt,
		stableDt:    defaultPredictedDt,
		unstableDt:  defaultPredictedDt,
		focused:     true,
		keysDown:    make(map[key.Name]struct{}),
	}
}

// BeginPass interprets the raw input of a new frame and returns the
// state of the frame. The receiver is consumed and must not be used
// afterwards. repaintedImmediately reports whether the previous frame
// was drawn because it asked for an immediate repaint, in which case
// the measured frame time is trusted for smoothing.
func (s *State) BeginPass(raw RawInput, repaintedImmediately bool, pixelsPerPoint float32, opts Options) *State {
	predicted := raw.PredictedDt
	if predicted <= 0 {
		predicted = defaultPredictedDt
	}
	now := raw.Time
	if now == 0 {
		now = s.time + predicted
	}
	unstable := max(now-s.time, 0)
	stable := predicted
	if repaintedImmediately {
		stable = unstable
	}
	screen := raw.ScreenRect
	if screen.Empty() {
		screen = s.screen
	}

	n := &State{
		opts:        opts,
		started:     true,
		pointer:     s.pointer,
		focus:       s.focus,
		touch:       s.touch,
		time:        now,
		unstableDt:  unstable,
		stableDt:    stable,
		predictedDt: predicted,
		metric:      unit.Metric{PxPerPt: pixelsPerPoint},
		screen:      screen,
		focused:     raw.Focused,
		keysDown:    maps.Clone(s.keysDown),
		modifiers:   raw.Modifiers,
		events:      slices.Clone(raw.Events),
	}
	if !s.started {
		// The zero State is valid before the first frame.
		n.pointer = newPointer()
		n.focus = newFocus()
		n.touch = make(map[pointer.DeviceID]*gesture.Touch)
		n.keysDown = make(map[key.Name]struct{})
	}
	raw.Events = n.events

	n.pointer.beginPass(now, &raw, opts)
	for _, e := range n.events {
		if te, ok := e.(pointer.Touch); ok {
			if _, exists := n.touch[te.Device]; !exists {
				n.touch[te.Device] = gesture.NewTouch(te.Device)
			}
		}
	}
	ptr, hasPtr := n.pointer.InteractPos()
	for _, t := range n.touch {
		t.Frame(now, n.events, ptr, hasPtr)
	}
	n.focus.beginFrame(&raw)

	// Releases are lost while the window is unfocused, so a focus change
	// forgets the keys down. Key events after the change carry the
	// modifiers held since.
	refocused := s.started && s.focused != n.focused
	if refocused {
		maps.Clear(n.keysDown)
		n.modifiers = 0
	}
	for i, e := range n.events {
		switch e := e.(type) {
		case key.Event:
			if e.State == key.Press {
				_, down := n.keysDown[e.Name]
				e.Repeat = down
				n.events[i] = e
				n.keysDown[e.Name] = struct{}{}
			} else {
				delete(n.keysDown, e.Name)
			}
			if refocused {
				n.modifiers = e.Modifiers
			}
		case system.WindowFocusEvent:
			refocused = true
			maps.Clear(n.keysDown)
			n.modifiers = 0
		}
	}

	prevScroll := s.scroll
	if !s.started {
		prevScroll = newScroll()
	}
	n.scroll = prevScroll.beginPass(now, stable, &raw, screen, opts)

	*s = State{}
	return n
}

// EndFrame finishes the frame. It must be called after all elements
// registered their interest in focus.
func (s *State) EndFrame() {
	s.focus.endFrame()
}

// Events returns the unconsumed events of the frame.
func (s *State) Events() []event.Event {
	return s.events
}

// Pointer returns the pointer state.
func (s *State) Pointer() *Pointer {
	return &s.pointer
}

// Focus returns the keyboard focus state.
func (s *State) Focus() *Focus {
	return &s.focus
}

// RequestFocus gives keyboard focus to id.
func (s *State) RequestFocus(id event.ID) {
	s.focus.RequestFocus(id)
}

// SurrenderFocus removes keyboard focus from id if it has it.
func (s *State) SurrenderFocus(id event.ID) {
	s.focus.SurrenderFocus(id)
}

// Time returns the time of the frame.
func (s *State) Time() time.Duration {
	return s.time
}

// UnstableDt returns the measured time since the previous frame.
func (s *State) UnstableDt() time.Duration {
	return s.unstableDt
}

// StableDt returns the time step to use for animations. It is the
// measured frame time when frames are drawn back to back, and the
// predicted frame time otherwise.
func (s *State) StableDt() time.Duration {
	return s.stableDt
}

// PredictedDt returns the expected time until the next frame.
func (s *State) PredictedDt() time.Duration {
	return s.predictedDt
}

// Metric returns the pixel density of the frame.
func (s *State) Metric() unit.Metric {
	return s.metric
}

// ScreenRect returns the window area in points.
func (s *State) ScreenRect() f32.Rectangle {
	return s.screen
}

// WindowFocused reports whether the window has keyboard focus.
func (s *State) WindowFocused() bool {
	return s.focused
}

// Modifiers returns the modifiers held at the end of the frame.
func (s *State) Modifiers() key.Modifiers {
	return s.modifiers
}

// KeyPressed reports whether name was pressed this frame, including
// repeats.
func (s *State) KeyPressed(name key.Name) bool {
	return s.NumPresses(name) > 0
}

// KeyDown reports whether name is held.
func (s *State) KeyDown(name key.Name) bool {
	_, ok := s.keysDown[name]
	return ok
}

// KeyReleased reports whether name was released this frame.
func (s *State) KeyReleased(name key.Name) bool {
	for _, e := range s.events {
		if e, ok := e.(key.Event); ok && e.Name == name && e.State == key.Release {
			return true
		}
	}
	return false
}

// NumPresses returns the number of presses of name this frame,
// including repeats.
func (s *State) NumPresses(name key.Name) int {
	n := 0
	for _, e := range s.events {
		if e, ok := e.(key.Event); ok && e.Name == name && e.State == key.Press {
			n++
		}
	}
	return n
}

// ConsumeKey removes the presses of name with modifiers from the
// events and reports whether there were any.
func (s *State) ConsumeKey(mods key.Modifiers, name key.Name) bool {
	return s.CountAndConsumeKey(mods, name) > 0
}

// CountAndConsumeKey removes the presses of name with modifiers from
// the events and returns how many there were. Modifiers match
// logically: ModShortcut matches Ctrl or Command depending on the
// platform.
func (s *State) CountAndConsumeKey(mods key.Modifiers, name key.Name) int {
	return s.consume(func(e key.Event) bool {
		return e.Name == name && e.State == key.Press && e.Modifiers.MatchesLogically(mods)
	})
}

// ConsumeShortcut removes the presses matching sc from the events and
// reports whether there were any.
func (s *State) ConsumeShortcut(sc key.Shortcut) bool {
	return s.consume(sc.Matches) > 0
}

func (s *State) consume(match func(e key.Event) bool) int {
	n := 0
	kept := s.events[:0]
	for _, e := range s.events {
		if ke, ok := e.(key.Event); ok && match(ke) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	clear(s.events[len(kept):])
	s.events = kept
	return n
}

// RawScrollDelta returns the unsmoothed scroll delta of the frame, in
// points.
func (s *State) RawScrollDelta() f32.Point {
	return s.scroll.raw
}

// SmoothScrollDelta returns the scroll delta to apply this frame. Wheel
// notches are spread over several frames.
func (s *State) SmoothScrollDelta() f32.Point {
	return s.scroll.smooth
}

// TimeSinceLastScroll returns the time since the last scroll.
func (s *State) TimeSinceLastScroll() time.Duration {
	return s.time - s.scroll.last
}

// IsScrolling reports whether there was scrolling this frame.
func (s *State) IsScrolling() bool {
	return s.scroll.scrolling()
}

// ZoomDelta returns the zoom factor of the frame, from a pinch gesture
// if one is active, otherwise from zoom events and scroll-to-zoom.
// 1 means no change.
func (s *State) ZoomDelta() float32 {
	if mt, ok := s.MultiTouch(); ok {
		return mt.ZoomDelta
	}
	return s.scroll.zoom
}

// ZoomDelta2D is like ZoomDelta but per axis.
func (s *State) ZoomDelta2D() f32.Point {
	if mt, ok := s.MultiTouch(); ok {
		return mt.ZoomDelta2D
	}
	return f32.Pt(s.scroll.zoom, s.scroll.zoom)
}

// RotationDelta returns the rotation of the frame, in radians.
func (s *State) RotationDelta() float32 {
	if mt, ok := s.MultiTouch(); ok {
		return mt.RotationDelta
	}
	return s.scroll.rotation
}

// TranslationDelta returns the movement of a multi-touch gesture this
// frame.
func (s *State) TranslationDelta() f32.Point {
	if mt, ok := s.MultiTouch(); ok {
		return mt.TranslationDelta
	}
	return f32.Point{}
}

// MultiTouch returns the gesture of the touch device with the lowest
// ID that has one.
func (s *State) MultiTouch() (gesture.MultiTouchInfo, bool) {
	devs := maps.Keys(s.touch)
	slices.Sort(devs)
	for _, d := range devs {
		if info, ok := s.touch[d].Info(); ok {
			return info, true
		}
	}
	return gesture.MultiTouchInfo{}, false
}

// AnyTouches reports whether any finger touches a touch device.
func (s *State) AnyTouches() bool {
	for _, t := range s.touch {
		if t.NumTouches() > 0 {
			return true
		}
	}
	return false
}

// WantsRepaint reports whether the next frame should be drawn
// immediately, because input is being processed over several frames.
func (s *State) WantsRepaint() bool {
	return s.pointer.WantsRepaint() ||
		s.scroll.pending != (f32.Point{}) ||
		s.scroll.pendingZoom != 0 ||
		len(s.events) > 0
}
