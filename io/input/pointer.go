// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"math"
	"time"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/internal/fling"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
)

// Pointer is the state of the mouse or the primary touch point,
// interpreted into clicks, drags and velocity.
type Pointer struct {
	opts Options
	time time.Duration

	latestPos   f32.Point
	hasLatest   bool
	interactPos f32.Point
	hasInteract bool
	// delta is the movement of latestPos since last frame.
	delta f32.Point
	// motion is the accumulated raw mouse movement, if the platform
	// reports any.
	motion    f32.Point
	hasMotion bool
	velocity  f32.Point
	direction f32.Point
	history   fling.History

	down           [pointer.NumButtons]bool
	pressOrigin    f32.Point
	hasPressOrigin bool
	pressStart     time.Duration
	hasPressStart  bool
	// movedTooMuch is set once the pointer moves further than
	// MaxClickDist from the press origin, and cleared on the next press.
	movedTooMuch    bool
	startedDragging bool

	lastClick     time.Duration
	lastLastClick time.Duration
	lastMove      time.Duration

	hoverConsumed bool
	events        []PointerEvent
}

// Click is a press and release within the distance and duration
// limits of Options.
type Click struct {
	Position f32.Point
	// Count is 1 for single clicks, 2 for double clicks and 3 for
	// triple clicks.
	Count     int
	Modifiers key.Modifiers
}

// PointerEvent is an entry in the per frame log of pointer activity.
type PointerEvent struct {
	Kind     PointerEventKind
	Position f32.Point
	// Button is set for PointerPressed and PointerReleased.
	Button pointer.Button
	// Click is set for a PointerReleased that completes a click.
	Click *Click
}

// PointerEventKind is the kind of a PointerEvent.
type PointerEventKind uint8

const (
	PointerMoved PointerEventKind = iota
	PointerPressed
	PointerReleased
)

// never is the time of events that never happened. It is far in the
// past, but not so far that time arithmetic overflows.
const never = time.Duration(math.MinInt64 / 4)

func newPointer() Pointer {
	return Pointer{
		opts:          DefaultOptions(),
		history:       fling.NewHistory(2, 1000, 100*time.Millisecond),
		lastClick:     never,
		lastLastClick: never,
		lastMove:      never,
	}
}

// IsDouble reports whether c is the second click of a double click.
func (c Click) IsDouble() bool {
	return c.Count == 2
}

// IsTriple reports whether c is the third click of a triple click.
func (c Click) IsTriple() bool {
	return c.Count == 3
}

func (p *Pointer) beginPass(now time.Duration, raw *RawInput, opts Options) {
	wasDragging := p.IsDecidedlyDragging()
	p.time = now
	p.opts = opts
	p.events = p.events[:0]
	p.hoverConsumed = false

	oldPos, hadPos := p.latestPos, p.hasLatest
	p.interactPos, p.hasInteract = p.latestPos, p.hasLatest
	if p.hasMotion {
		p.motion = f32.Point{}
	}
	clearHistory := false

	for _, e := range raw.Events {
		switch e := e.(type) {
		case pointer.Moved:
			p.setPos(e.Position)
			if p.hasPressOrigin && p.pressOrigin.Dist(e.Position) > opts.MaxClickDist {
				p.movedTooMuch = true
			}
			p.lastMove = now
			p.events = append(p.events, PointerEvent{Kind: PointerMoved, Position: e.Position})
		case pointer.ButtonEvent:
			p.setPos(e.Position)
			if e.Pressed {
				// Track the velocity of the drag only.
				p.history.Clear()
				p.pressOrigin, p.hasPressOrigin = e.Position, true
				p.pressStart, p.hasPressStart = now, true
				p.movedTooMuch = false
				p.events = append(p.events, PointerEvent{Kind: PointerPressed, Position: e.Position, Button: e.Button})
			} else {
				var click *Click
				if p.CouldAnyButtonBeClick() {
					double := now-p.lastClick < opts.MaxDoubleClickDelay
					triple := now-p.lastLastClick < 2*opts.MaxDoubleClickDelay
					count := 1
					switch {
					case triple:
						count = 3
					case double:
						count = 2
					}
					p.lastLastClick = p.lastClick
					p.lastClick = now
					click = &Click{Position: e.Position, Count: count, Modifiers: e.Modifiers}
				}
				p.events = append(p.events, PointerEvent{Kind: PointerReleased, Position: e.Position, Button: e.Button, Click: click})
				p.hasPressOrigin = false
				p.hasPressStart = false
			}
			// Updated after CouldAnyButtonBeClick, which depends on the
			// button being down.
			if e.Button.Tracked() {
				p.down[e.Button] = e.Pressed
			}
		case pointer.Gone:
			// A drag continues when the pointer leaves the window, so
			// this is not a release. interactPos is kept until next frame,
			// and the history until the final velocity is known.
			p.hasLatest = false
			clearHistory = true
		case pointer.Motion:
			p.motion = p.motion.Add(e.Delta)
			p.hasMotion = true
		}
	}

	p.delta = f32.Point{}
	if hadPos && p.hasLatest {
		p.delta = p.latestPos.Sub(oldPos)
	}
	// When the pointer is gone the history is kept, so that a finger
	// lifted from a touch screen gets a throw velocity.
	if p.hasLatest {
		p.history.Add(now, p.latestPos)
	}
	p.history.Flush(now)

	p.velocity = f32.Point{}
	if p.history.Len() >= 3 && p.history.Duration() > 10*time.Millisecond {
		if v, ok := p.history.Velocity(); ok {
			p.velocity = v
		}
	}
	if p.velocity != (f32.Point{}) {
		p.lastMove = now
	}
	if clearHistory {
		p.history.Clear()
	}
	p.direction = f32.Point{}
	if v, ok := fling.Estimate(p.history.Samples()); ok {
		p.direction = v.Normalize()
	} else if v, ok := p.history.Velocity(); ok {
		p.direction = v.Normalize()
	}
	p.startedDragging = p.IsDecidedlyDragging() && !wasDragging
}

func (p *Pointer) setPos(pos f32.Point) {
	p.latestPos, p.hasLatest = pos, true
	p.interactPos, p.hasInteract = pos, true
}

// Events returns the pointer events of the frame.
func (p *Pointer) Events() []PointerEvent {
	return p.events
}

// WantsRepaint reports whether the pointer did anything this frame.
func (p *Pointer) WantsRepaint() bool {
	return len(p.events) > 0 || p.delta != (f32.Point{})
}

// Delta returns the movement of the pointer since last frame.
func (p *Pointer) Delta() f32.Point {
	return p.delta
}

// Motion returns the raw mouse movement of the frame, if the platform
// reports it.
func (p *Pointer) Motion() (f32.Point, bool) {
	return p.motion, p.hasMotion
}

// Velocity returns the velocity of the pointer in points per second,
// averaged over the last 100 milliseconds. It is zero for fewer than
// three samples.
func (p *Pointer) Velocity() f32.Point {
	return p.velocity
}

// Direction returns the normalized direction of recent pointer movement,
// or the zero vector.
func (p *Pointer) Direction() f32.Point {
	return p.direction
}

// IsStill reports whether the pointer has zero velocity.
func (p *Pointer) IsStill() bool {
	return p.velocity == (f32.Point{})
}

// IsMoving reports whether the pointer has non-zero velocity.
func (p *Pointer) IsMoving() bool {
	return !p.IsStill()
}

// TimeSinceLastMovement returns the time since the pointer last moved.
func (p *Pointer) TimeSinceLastMovement() time.Duration {
	return p.time - p.lastMove
}

// TimeSinceLastClick returns the time since the last click.
func (p *Pointer) TimeSinceLastClick() time.Duration {
	return p.time - p.lastClick
}

// LatestPos returns the latest known position of the pointer, if the
// pointer is in the window.
func (p *Pointer) LatestPos() (f32.Point, bool) {
	return p.latestPos, p.hasLatest
}

// HoverPos returns the position of a hovering pointer, if any.
func (p *Pointer) HoverPos() (f32.Point, bool) {
	if p.hoverConsumed {
		return f32.Point{}, false
	}
	return p.latestPos, p.hasLatest
}

// ConsumeHover returns the hover position and hides it from callers of
// HoverPos and ConsumeHover for the rest of the frame.
func (p *Pointer) ConsumeHover() (f32.Point, bool) {
	pos, ok := p.HoverPos()
	p.hoverConsumed = true
	return pos, ok
}

// InteractPos returns the position to use for interaction. Unlike
// LatestPos, it is still set the frame the pointer leaves the window,
// so a release can be matched to the last position.
func (p *Pointer) InteractPos() (f32.Point, bool) {
	return p.interactPos, p.hasInteract
}

// HasPointer reports whether the pointer is in the window.
func (p *Pointer) HasPointer() bool {
	return p.hasLatest
}

// PressOrigin returns where the current press started.
func (p *Pointer) PressOrigin() (f32.Point, bool) {
	return p.pressOrigin, p.hasPressOrigin
}

// PressStartTime returns when the current press started.
func (p *Pointer) PressStartTime() (time.Duration, bool) {
	return p.pressStart, p.hasPressStart
}

// AnyPressed reports whether a button was pressed this frame.
func (p *Pointer) AnyPressed() bool {
	return p.any(func(e PointerEvent) bool { return e.Kind == PointerPressed })
}

// AnyReleased reports whether a button was released this frame.
func (p *Pointer) AnyReleased() bool {
	return p.any(func(e PointerEvent) bool { return e.Kind == PointerReleased })
}

// AnyClick reports whether a click completed this frame.
func (p *Pointer) AnyClick() bool {
	return p.any(func(e PointerEvent) bool { return e.Kind == PointerReleased && e.Click != nil })
}

// AnyDown reports whether any tracked button is held.
func (p *Pointer) AnyDown() bool {
	for _, d := range p.down {
		if d {
			return true
		}
	}
	return false
}

// ButtonPressed reports whether b was pressed this frame.
func (p *Pointer) ButtonPressed(b pointer.Button) bool {
	return p.any(func(e PointerEvent) bool { return e.Kind == PointerPressed && e.Button == b })
}

// ButtonReleased reports whether b was released this frame.
func (p *Pointer) ButtonReleased(b pointer.Button) bool {
	return p.any(func(e PointerEvent) bool { return e.Kind == PointerReleased && e.Button == b })
}

// ButtonClicked reports whether b completed a click this frame.
func (p *Pointer) ButtonClicked(b pointer.Button) bool {
	return p.clicked(b, 0)
}

// ButtonDoubleClicked reports whether b completed a double click
// this frame.
func (p *Pointer) ButtonDoubleClicked(b pointer.Button) bool {
	return p.clicked(b, 2)
}

// ButtonTripleClicked reports whether b completed a triple click
// this frame.
func (p *Pointer) ButtonTripleClicked(b pointer.Button) bool {
	return p.clicked(b, 3)
}

// clicked reports whether b clicked with count clicks, or any count
// if count is 0.
func (p *Pointer) clicked(b pointer.Button, count int) bool {
	return p.any(func(e PointerEvent) bool {
		return e.Kind == PointerReleased && e.Button == b && e.Click != nil &&
			(count == 0 || e.Click.Count == count)
	})
}

// ButtonDown reports whether b is held. Untracked buttons are never
// reported held.
func (p *Pointer) ButtonDown(b pointer.Button) bool {
	return b.Tracked() && p.down[b]
}

func (p *Pointer) PrimaryDown() bool      { return p.ButtonDown(pointer.ButtonPrimary) }
func (p *Pointer) SecondaryDown() bool    { return p.ButtonDown(pointer.ButtonSecondary) }
func (p *Pointer) MiddleDown() bool       { return p.ButtonDown(pointer.ButtonMiddle) }
func (p *Pointer) PrimaryPressed() bool   { return p.ButtonPressed(pointer.ButtonPrimary) }
func (p *Pointer) PrimaryReleased() bool  { return p.ButtonReleased(pointer.ButtonPrimary) }
func (p *Pointer) PrimaryClicked() bool   { return p.ButtonClicked(pointer.ButtonPrimary) }
func (p *Pointer) SecondaryClicked() bool { return p.ButtonClicked(pointer.ButtonSecondary) }

// CouldAnyButtonBeClick reports whether a button is held or was just
// released, and the gesture is still within the click limits.
func (p *Pointer) CouldAnyButtonBeClick() bool {
	if !p.AnyDown() && !p.AnyReleased() {
		return false
	}
	if p.movedTooMuch {
		return false
	}
	if p.hasPressStart && p.time-p.pressStart > p.opts.MaxClickDuration {
		return false
	}
	return true
}

// IsDecidedlyDragging reports whether a button is held or released and
// the gesture can no longer be a click. It is never true the frame of
// a press.
func (p *Pointer) IsDecidedlyDragging() bool {
	return (p.AnyDown() || p.AnyReleased()) &&
		!p.AnyPressed() &&
		!p.CouldAnyButtonBeClick() &&
		!p.AnyClick()
}

// StartedDecidedlyDragging reports whether IsDecidedlyDragging became
// true this frame.
func (p *Pointer) StartedDecidedlyDragging() bool {
	return p.startedDragging
}

// IsLongPress reports whether the primary button has been held still
// for longer than a click this frame. Touch interfaces use it in place
// of a secondary click.
func (p *Pointer) IsLongPress() bool {
	return p.startedDragging &&
		!p.movedTooMuch &&
		p.PrimaryDown() &&
		p.hasPressStart && p.time-p.pressStart > p.opts.MaxClickDuration
}

func (p *Pointer) any(f func(e PointerEvent) bool) bool {
	for _, e := range p.events {
		if f(e) {
			return true
		}
	}
	return false
}

func (k PointerEventKind) String() string {
	switch k {
	case PointerMoved:
		return "Moved"
	case PointerPressed:
		return "Pressed"
	case PointerReleased:
		return "Released"
	default:
		panic("unknown PointerEventKind")
	}
}
