// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements multi-touch gestures.

A Touch tracks the fingers of one touch device and reduces them to
pinch zoom, rotation and translation deltas once per frame.
*/
package gesture

import (
	"math"
	"time"

	"golang.org/x/exp/slices"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/pointer"
)

// Touch tracks the active touches of a single device.
type Touch struct {
	device pointer.DeviceID
	// active is sorted by touch ID.
	active  []activeTouch
	gesture *gestureState
}

// MultiTouchInfo describes an ongoing gesture of two or more fingers.
type MultiTouchInfo struct {
	// StartTime is when the gesture started.
	StartTime time.Duration
	// StartPos is the pointer position when the gesture started.
	StartPos f32.Point
	// CenterPos is the average position of the touches.
	CenterPos f32.Point
	// NumTouches is the number of fingers on the device.
	NumTouches int
	// ZoomDelta is the proportional zoom since last frame. 1 is no change.
	ZoomDelta float32
	// ZoomDelta2D is the per axis zoom since last frame. Fingers that
	// are mostly horizontal to each other only zoom the X axis, and
	// vice versa.
	ZoomDelta2D f32.Point
	// RotationDelta is the rotation since last frame, in radians within
	// [-π, π].
	RotationDelta float32
	// TranslationDelta is the movement of CenterPos since last frame.
	TranslationDelta f32.Point
	// Force is the average pressure of the touches, or 0 if unknown.
	Force float32
}

// PinchType classifies the relative positions of two fingers.
type PinchType uint8

const (
	// PinchProportional zooms both axes equally.
	PinchProportional PinchType = iota
	// PinchHorizontal only zooms the X axis.
	PinchHorizontal
	// PinchVertical only zooms the Y axis.
	PinchVertical
)

type activeTouch struct {
	id    pointer.TouchID
	pos   f32.Point
	force float32
}

type gestureState struct {
	startTime time.Duration
	startPos  f32.Point
	pinch     PinchType
	// previous is nil when the number of touches just changed.
	previous *dynamicState
	current  dynamicState
}

// dynamicState is the state of the touches in one frame.
type dynamicState struct {
	avgDistance     float32
	avgAbsDistance2 f32.Point
	avgPos          f32.Point
	heading         float32
	force           float32
}

// NewTouch returns a tracker for the touch device.
func NewTouch(device pointer.DeviceID) *Touch {
	return &Touch{device: device}
}

// Device returns the device tracked by t.
func (t *Touch) Device() pointer.DeviceID {
	return t.device
}

// Frame processes the touch events of a frame. It must be called every
// frame, even without touch events, so deltas are not repeated. ptr is
// the pointer position, if known, which becomes the gesture start
// position.
func (t *Touch) Frame(now time.Duration, events []event.Event, ptr f32.Point, hasPtr bool) {
	changed := false
	for _, e := range events {
		te, ok := e.(pointer.Touch)
		if !ok || te.Device != t.device {
			continue
		}
		idx := t.index(te.ID)
		switch te.Phase {
		case pointer.TouchStart:
			if idx < len(t.active) && t.active[idx].id == te.ID {
				t.active[idx] = activeTouch{id: te.ID, pos: te.Position, force: te.Force}
			} else {
				t.active = slices.Insert(t.active, idx, activeTouch{id: te.ID, pos: te.Position, force: te.Force})
			}
			changed = true
		case pointer.TouchMove:
			if idx < len(t.active) && t.active[idx].id == te.ID {
				t.active[idx].pos = te.Position
				t.active[idx].force = te.Force
			}
		case pointer.TouchEnd, pointer.TouchCancel:
			if idx < len(t.active) && t.active[idx].id == te.ID {
				t.active = slices.Delete(t.active, idx, idx+1)
				changed = true
			}
		}
	}
	t.update(now, ptr, hasPtr)
	if changed && t.gesture != nil {
		// Averages jump when fingers are added or removed; don't report
		// a delta for this frame.
		t.gesture.previous = nil
	}
}

// index returns the position of id in the sorted list of active
// touches, or where it would be inserted.
func (t *Touch) index(id pointer.TouchID) int {
	for i, a := range t.active {
		if a.id >= id {
			return i
		}
	}
	return len(t.active)
}

// Active reports whether a multi-touch gesture is in progress.
func (t *Touch) Active() bool {
	return t.gesture != nil
}

// NumTouches returns the number of fingers on the device.
func (t *Touch) NumTouches() int {
	return len(t.active)
}

// Info returns the state of the ongoing gesture, if any.
func (t *Touch) Info() (MultiTouchInfo, bool) {
	g := t.gesture
	if g == nil {
		return MultiTouchInfo{}, false
	}
	prev := g.current
	if g.previous != nil {
		prev = *g.previous
	}
	zoom := ratio(g.current.avgDistance, prev.avgDistance)
	var zoom2D f32.Point
	switch g.pinch {
	case PinchHorizontal:
		zoom2D = f32.Pt(ratio(g.current.avgAbsDistance2.X, prev.avgAbsDistance2.X), 1)
	case PinchVertical:
		zoom2D = f32.Pt(1, ratio(g.current.avgAbsDistance2.Y, prev.avgAbsDistance2.Y))
	default:
		zoom2D = f32.Pt(zoom, zoom)
	}
	return MultiTouchInfo{
		StartTime:        g.startTime,
		StartPos:         g.startPos,
		CenterPos:        g.current.avgPos,
		NumTouches:       len(t.active),
		ZoomDelta:        zoom,
		ZoomDelta2D:      zoom2D,
		RotationDelta:    normalizedAngle(g.current.heading - prev.heading),
		TranslationDelta: g.current.avgPos.Sub(prev.avgPos),
		Force:            g.current.force,
	}, true
}

func (t *Touch) update(now time.Duration, ptr f32.Point, hasPtr bool) {
	dyn, ok := t.dynamicState()
	switch {
	case !ok:
		t.gesture = nil
	case t.gesture != nil:
		prev := t.gesture.current
		t.gesture.previous = &prev
		t.gesture.current = dyn
	case hasPtr:
		t.gesture = &gestureState{
			startTime: now,
			startPos:  ptr,
			pinch:     classify(t.active),
			current:   dyn,
		}
	}
}

// dynamicState computes the averages of the active touches. It
// reports false for fewer than two touches.
func (t *Touch) dynamicState() (dynamicState, bool) {
	n := len(t.active)
	if n < 2 {
		return dynamicState{}, false
	}
	var s dynamicState
	recip := 1 / float32(n)
	for _, a := range t.active {
		s.avgPos = s.avgPos.Add(a.pos)
		s.force += a.force
	}
	s.avgPos = s.avgPos.Mul(recip)
	s.force *= recip
	for _, a := range t.active {
		s.avgDistance += s.avgPos.Dist(a.pos)
		d := s.avgPos.Sub(a.pos)
		s.avgAbsDistance2 = s.avgAbsDistance2.Add(f32.Pt(abs(d.X), abs(d.Y)))
	}
	s.avgDistance *= recip
	s.avgAbsDistance2 = s.avgAbsDistance2.Mul(recip)
	// The heading from the first touch to the center works well as long
	// as all fingers rotate at roughly the same angular velocity.
	s.heading = s.avgPos.Sub(t.active[0].pos).Angle()
	return s, true
}

func classify(touches []activeTouch) PinchType {
	if len(touches) != 2 {
		return PinchProportional
	}
	d := touches[0].pos.Sub(touches[1].pos)
	dx, dy := abs(d.X), abs(d.Y)
	switch {
	case dx > 3*dy:
		return PinchHorizontal
	case dy > 3*dx:
		return PinchVertical
	default:
		return PinchProportional
	}
}

func ratio(a, b float32) float32 {
	if b == 0 {
		return 1
	}
	return a / b
}

func normalizedAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (p PinchType) String() string {
	switch p {
	case PinchProportional:
		return "Proportional"
	case PinchHorizontal:
		return "Horizontal"
	case PinchVertical:
		return "Vertical"
	default:
		panic("invalid PinchType")
	}
}
