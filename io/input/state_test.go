// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"math"
	"testing"
	"time"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
	"gioui.org/inputengine/io/system"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.LineScrollSpeed = 40
	return opts
}

func pass(s *State, raw RawInput) *State {
	raw.Focused = true
	return s.BeginPass(raw, false, 1, testOptions())
}

func TestTime(t *testing.T) {
	s := NewState()
	s = s.BeginPass(RawInput{PredictedDt: 10 * time.Millisecond}, false, 2, testOptions())
	if got := s.Time(); got != 10*time.Millisecond {
		t.Errorf("got time %v, want 10ms", got)
	}
	s = s.BeginPass(RawInput{PredictedDt: 10 * time.Millisecond}, false, 2, testOptions())
	if got := s.Time(); got != 20*time.Millisecond {
		t.Errorf("got time %v, want 20ms", got)
	}
	s = s.BeginPass(RawInput{Time: 50 * time.Millisecond, PredictedDt: 10 * time.Millisecond}, true, 2, testOptions())
	if got := s.StableDt(); got != 30*time.Millisecond {
		t.Errorf("got stable dt %v after an immediate repaint, want 30ms", got)
	}
	s = s.BeginPass(RawInput{Time: 2 * time.Second, PredictedDt: 10 * time.Millisecond}, false, 2, testOptions())
	if got := s.StableDt(); got != 10*time.Millisecond {
		t.Errorf("got stable dt %v after idling, want 10ms", got)
	}
	if got := s.UnstableDt(); got != 1950*time.Millisecond {
		t.Errorf("got unstable dt %v", got)
	}
	if got := s.Metric().Px(3); got != 6 {
		t.Errorf("got %v px for 3 points at 2 px/pt", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := f32.Rectangle{Max: f32.Pt(800, 600)}
	s := NewState()
	s = pass(s, RawInput{ScreenRect: r})
	s = pass(s, RawInput{})
	if got := s.ScreenRect(); got != r {
		t.Errorf("screen rect %v not kept", got)
	}
}

func TestSmoothScroll(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		pointer.Wheel{Unit: pointer.UnitPoint, Delta: f32.Pt(3, 0)},
	}})
	if got := s.SmoothScrollDelta(); got != f32.Pt(3, 0) {
		t.Errorf("got smooth scroll %v, want (3,0)", got)
	}
	if !s.IsScrolling() || s.TimeSinceLastScroll() != 0 {
		t.Error("not scrolling")
	}
	s = pass(s, RawInput{})
	if s.WantsRepaint() || s.SmoothScrollDelta() != (f32.Point{}) {
		t.Error("precise scroll left scrolling for later frames")
	}
	if got := s.TimeSinceLastScroll(); got != defaultPredictedDt {
		t.Errorf("got time since scroll %v", got)
	}
}

func TestWheelNotch(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		pointer.Wheel{Unit: pointer.UnitLine, Delta: f32.Pt(0, 1)},
	}})
	if got := s.RawScrollDelta(); got != f32.Pt(0, 40) {
		t.Errorf("got raw scroll %v, want (0,40)", got)
	}
	total := s.SmoothScrollDelta().Y
	if total <= 0 || total >= 40 {
		t.Fatalf("got smooth scroll %v, want a part of 40", total)
	}
	frames := 1
	for s.WantsRepaint() {
		if frames > 100 {
			t.Fatal("scrolling did not settle")
		}
		s = pass(s, RawInput{})
		total += s.SmoothScrollDelta().Y
		frames++
	}
	if frames < 3 {
		t.Errorf("notch applied in %d frames", frames)
	}
	if !near(total, 40, 1e-3) {
		t.Errorf("scrolled %v in total, want 40", total)
	}
	s = pass(s, RawInput{})
	if s.IsScrolling() {
		t.Error("still scrolling")
	}
}

func TestShiftScroll(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		pointer.Wheel{Unit: pointer.UnitPoint, Delta: f32.Pt(0, 3), Modifiers: key.ModShift},
	}})
	if got := s.SmoothScrollDelta(); got != f32.Pt(3, 0) {
		t.Errorf("got smooth scroll %v, want (3,0)", got)
	}
}

func TestPageScroll(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{
		ScreenRect: f32.Rectangle{Max: f32.Pt(100, 50)},
		Events: []event.Event{
			pointer.Wheel{Unit: pointer.UnitPage, Delta: f32.Pt(0, 2)},
		},
	})
	if got := s.RawScrollDelta(); got != f32.Pt(0, 100) {
		t.Errorf("got raw scroll %v, want (0,100)", got)
	}
}

func TestScrollZoom(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		pointer.Wheel{Unit: pointer.UnitPoint, Delta: f32.Pt(0, 4), Modifiers: key.ModCtrl},
	}})
	if got := s.SmoothScrollDelta(); got != (f32.Point{}) {
		t.Errorf("zoom scrolled %v", got)
	}
	want := float32(math.Exp(4.0 / 200))
	if got := s.ZoomDelta(); !near(got, want, 1e-5) {
		t.Errorf("got zoom %v, want %v", got, want)
	}
	if got := s.ZoomDelta2D(); !near(got.X, want, 1e-5) || got.X != got.Y {
		t.Errorf("got 2D zoom %v", got)
	}

	s = pass(s, RawInput{Events: []event.Event{
		pointer.Zoom{Factor: 2},
		pointer.Zoom{Factor: 1.5},
		pointer.Rotate{Radians: 0.25},
	}})
	if got := s.ZoomDelta(); got != 3 {
		t.Errorf("got zoom %v, want 3", got)
	}
	if got := s.RotationDelta(); got != 0.25 {
		t.Errorf("got rotation %v, want 0.25", got)
	}
	s = pass(s, RawInput{})
	if got := s.ZoomDelta(); got != 1 {
		t.Errorf("zoom %v repeated", got)
	}
}

func TestPinchOverridesZoom(t *testing.T) {
	tp := func(id pointer.TouchID, ph pointer.Phase, x float32) pointer.Touch {
		return pointer.Touch{Device: 1, ID: id, Phase: ph, Position: f32.Pt(x, 0)}
	}
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		pointer.Moved{Position: f32.Pt(0, 0)},
		tp(1, pointer.TouchStart, -10),
		tp(2, pointer.TouchStart, 10),
	}})
	if !s.AnyTouches() {
		t.Fatal("no touches")
	}
	s = pass(s, RawInput{Events: []event.Event{
		tp(1, pointer.TouchMove, -20),
		tp(2, pointer.TouchMove, 20),
		pointer.Zoom{Factor: 5},
	}})
	if got := s.ZoomDelta(); got != 2 {
		t.Errorf("got zoom %v, want the pinch zoom 2", got)
	}
	if got := s.TranslationDelta(); got != (f32.Point{}) {
		t.Errorf("got translation %v", got)
	}
	s = pass(s, RawInput{Events: []event.Event{
		tp(1, pointer.TouchEnd, -20),
		tp(2, pointer.TouchEnd, 20),
	}})
	if s.AnyTouches() {
		t.Error("touches left after lifting all fingers")
	}
	if _, ok := s.MultiTouch(); ok {
		t.Error("gesture left after lifting all fingers")
	}
}

func TestKeyRepeat(t *testing.T) {
	a := key.Event{Name: "A", State: key.Press}
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{a}})
	if e := s.Events()[0].(key.Event); e.Repeat {
		t.Error("first press is a repeat")
	}
	if !s.KeyDown("A") || !s.KeyPressed("A") {
		t.Error("key not down")
	}
	s = pass(s, RawInput{Events: []event.Event{a, a}})
	for i, e := range s.Events() {
		if !e.(key.Event).Repeat {
			t.Errorf("press %d is not a repeat", i)
		}
	}
	if got := s.NumPresses("A"); got != 2 {
		t.Errorf("got %d presses, want 2", got)
	}
	s = pass(s, RawInput{Events: []event.Event{key.Event{Name: "A", State: key.Release}}})
	if s.KeyDown("A") || !s.KeyReleased("A") {
		t.Error("key not released")
	}
}

func TestFocusLossClearsKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInput
	}{
		{"flag", RawInput{Focused: false, Modifiers: key.ModAlt}},
		{"event", RawInput{
			Focused:   true,
			Modifiers: key.ModAlt,
			Events:    []event.Event{system.WindowFocusEvent{Focused: true}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s = pass(s, RawInput{
				Modifiers: key.ModAlt,
				Events:    []event.Event{key.Event{Name: key.NameAlt, Modifiers: key.ModAlt, State: key.Press}},
			})
			if !s.KeyDown(key.NameAlt) || s.Modifiers() != key.ModAlt {
				t.Fatal("Alt not held")
			}
			s = s.BeginPass(tt.raw, false, 1, testOptions())
			if s.KeyDown(key.NameAlt) {
				t.Error("key stuck after focus change")
			}
			if got := s.Modifiers(); got != 0 {
				t.Errorf("modifiers %v stuck after focus change", got)
			}
		})
	}
}

func TestRefocusThenPress(t *testing.T) {
	pressA := key.Event{Name: "A", Modifiers: key.ModShift, State: key.Press}
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{pressA}})
	s = pass(s, RawInput{
		Modifiers: key.ModShift,
		Events:    []event.Event{system.WindowFocusEvent{Focused: true}, pressA},
	})
	if !s.KeyDown("A") {
		t.Error("key pressed after the focus change not down")
	}
	if got := s.Modifiers(); got != key.ModShift {
		t.Errorf("got modifiers %v, want %v", got, key.ModShift)
	}
	if e := s.Events()[1].(key.Event); e.Repeat {
		t.Error("first press after the focus change marked as repeat")
	}
	s = pass(s, RawInput{Modifiers: key.ModShift, Events: []event.Event{pressA}})
	if e := s.Events()[0].(key.Event); !e.Repeat {
		t.Error("press of a held key not marked as repeat")
	}
}

func TestConsumeShortcut(t *testing.T) {
	save := key.Event{Name: "S", Modifiers: key.ModCtrl | key.ModShortcut, State: key.Press}
	raw := []event.Event{save, key.Event{Name: "S", State: key.Release}}
	s := NewState()
	s = pass(s, RawInput{Events: raw})
	if s.ConsumeShortcut(key.Shortcut{Modifiers: key.ModShortcut | key.ModShift, Name: "S"}) {
		t.Error("shortcut with Shift matched")
	}
	if !s.ConsumeShortcut(key.Shortcut{Modifiers: key.ModShortcut, Name: "S"}) {
		t.Fatal("shortcut not consumed")
	}
	if s.ConsumeShortcut(key.Shortcut{Modifiers: key.ModShortcut, Name: "S"}) {
		t.Error("shortcut consumed twice")
	}
	if s.KeyPressed("S") {
		t.Error("consumed press still visible")
	}
	if !s.KeyReleased("S") {
		t.Error("release consumed")
	}
	if len(raw) != 2 || raw[0] != save {
		t.Error("consumption modified the raw events")
	}
}

func TestCountAndConsumeKey(t *testing.T) {
	down := key.Event{Name: key.NameDownArrow, State: key.Press}
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{
		down,
		key.Event{Name: key.NameDownArrow, Modifiers: key.ModCtrl, State: key.Press},
		down,
	}})
	if got := s.CountAndConsumeKey(0, key.NameDownArrow); got != 2 {
		t.Errorf("consumed %d presses, want 2", got)
	}
	if !s.ConsumeKey(key.ModCtrl, key.NameDownArrow) {
		t.Error("Ctrl press not consumed")
	}
	if len(s.Events()) != 0 {
		t.Errorf("events left: %v", s.Events())
	}
}

func TestBeginPassConsumesState(t *testing.T) {
	s := NewState()
	s = pass(s, RawInput{Events: []event.Event{pointer.Moved{Position: f32.Pt(1, 1)}}})
	old := s
	s = pass(s, RawInput{})
	if old.pointer.HasPointer() || old.keysDown != nil || old.started {
		t.Error("previous state not consumed")
	}
	if !s.Pointer().HasPointer() {
		t.Error("pointer lost")
	}
}
