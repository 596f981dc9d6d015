// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
)

// scroll smooths wheel scrolling and scroll-to-zoom over frames.
type scroll struct {
	// raw is the frame's scroll delta, unsmoothed.
	raw f32.Point
	// smooth is the part of the scroll delta applied this frame.
	smooth f32.Point
	// pending is scrolling not yet applied.
	pending f32.Point

	smoothZoom  float32
	pendingZoom float32
	// zoom is the frame's zoom factor from zoom events and
	// scroll-to-zoom.
	zoom     float32
	rotation float32

	last time.Duration
}

const (
	// smoothThreshold is the largest point-unit wheel delta applied
	// immediately. Larger deltas are mouse wheel notches, spread
	// over frames.
	smoothThreshold = 8
	// The smoothing reaches smoothFraction of the remaining scroll in
	// smoothPeriod.
	smoothFraction = 0.90
	smoothPeriod   = 100 * time.Millisecond
)

func newScroll() scroll {
	return scroll{zoom: 1, last: never}
}

// beginPass computes the scroll state of a new frame from the previous.
func (s scroll) beginPass(now, stableDt time.Duration, raw *RawInput, screen f32.Rectangle, opts Options) scroll {
	n := scroll{
		zoom:        1,
		pending:     s.pending,
		pendingZoom: s.pendingZoom,
		last:        s.last,
	}
	for _, e := range raw.Events {
		switch e := e.(type) {
		case pointer.Wheel:
			n.wheel(e, screen, opts)
		case pointer.Zoom:
			n.zoom *= e.Factor
		case pointer.Rotate:
			n.rotation += e.Radians
		}
	}

	dt := min(stableDt, smoothPeriod)
	t := float32(1 - math.Pow(1-smoothFraction, dt.Seconds()/smoothPeriod.Seconds()))
	n.smooth.X += drain(&n.pending.X, t)
	n.smooth.Y += drain(&n.pending.Y, t)
	n.smoothZoom += drain(&n.pendingZoom, t)
	n.zoom *= float32(math.Exp(float64(opts.ScrollZoomSpeed * n.smoothZoom)))

	if n.scrolling() {
		n.last = now
	}
	return n
}

func (s *scroll) wheel(e pointer.Wheel, screen f32.Rectangle, opts Options) {
	d := e.Delta
	switch e.Unit {
	case pointer.UnitLine:
		d = d.Mul(opts.LineScrollSpeed)
	case pointer.UnitPage:
		d = d.Mul(screen.Dy())
	}
	if e.Modifiers.Contain(key.ModShift) {
		// Vertical wheels scroll horizontally while Shift is held.
		d = f32.Pt(d.X+d.Y, 0)
	}
	s.raw = s.raw.Add(d)
	smooth := e.Unit == pointer.UnitPoint && d.Len() < smoothThreshold
	if e.Modifiers&(key.ModCtrl|key.ModCommand|key.ModShortcut) != 0 {
		if smooth {
			s.smoothZoom += d.Y
		} else {
			s.pendingZoom += d.Y
		}
		return
	}
	if smooth {
		s.smooth = s.smooth.Add(d)
	} else {
		s.pending = s.pending.Add(d)
	}
}

func (s *scroll) scrolling() bool {
	return s.raw != (f32.Point{}) || s.smooth != (f32.Point{})
}

// drain removes the fraction t of *pending and returns it. Remainders
// smaller than a unit are drained entirely.
func drain[T constraints.Float](pending *T, t T) T {
	v := *pending
	if abs(v) < 1 {
		*pending = 0
		return v
	}
	v *= t
	*pending -= v
	return v
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
