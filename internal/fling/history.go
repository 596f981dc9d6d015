// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"time"

	"golang.org/x/exp/slices"

	"gioui.org/inputengine/f32"
)

// History is a bounded, time windowed list of position samples.
type History struct {
	minLen int
	maxLen int
	maxAge time.Duration
	// samples is sorted by ascending time.
	samples []Sample
}

// Sample is a position at a point in time.
type Sample struct {
	Time time.Duration
	Pos  f32.Point
}

// NewHistory returns a History that keeps at most maxLen samples, and
// drops samples older than maxAge as long as more than minLen samples
// remain.
func NewHistory(minLen, maxLen int, maxAge time.Duration) History {
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return History{minLen: minLen, maxLen: maxLen, maxAge: maxAge}
}

// Add a sample at time now. Samples older than the newest
// sample are ignored.
func (h *History) Add(now time.Duration, pos f32.Point) {
	if n := len(h.samples); n > 0 && now < h.samples[n-1].Time {
		return
	}
	h.samples = append(h.samples, Sample{Time: now, Pos: pos})
	h.Flush(now)
}

// Flush drops samples that exceed the length or age limits.
func (h *History) Flush(now time.Duration) {
	drop := 0
	if n := len(h.samples); n > h.maxLen {
		drop = n - h.maxLen
	}
	for len(h.samples)-drop > h.minLen && h.samples[drop].Time < now-h.maxAge {
		drop++
	}
	if drop > 0 {
		h.samples = slices.Delete(h.samples, 0, drop)
	}
}

// Clear removes all samples.
func (h *History) Clear() {
	h.samples = h.samples[:0]
}

// Len returns the number of samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Duration returns the time between the oldest and the newest sample.
func (h *History) Duration() time.Duration {
	n := len(h.samples)
	if n < 2 {
		return 0
	}
	return h.samples[n-1].Time - h.samples[0].Time
}

// Samples returns the samples in ascending time order. The
// slice is only valid until the next modification of h.
func (h *History) Samples() []Sample {
	return h.samples
}

// Velocity returns the average velocity in points per second between
// the oldest and the newest sample. It reports false if the samples
// span no time.
func (h *History) Velocity() (f32.Point, bool) {
	dt := h.Duration()
	if dt <= 0 {
		return f32.Point{}, false
	}
	first, last := h.samples[0], h.samples[len(h.samples)-1]
	return last.Pos.Sub(first.Pos).Div(float32(dt.Seconds())), true
}
