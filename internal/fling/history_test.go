// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"

	"gioui.org/inputengine/f32"
)

const ms = time.Millisecond

func TestHistoryAge(t *testing.T) {
	h := NewHistory(2, 1000, 100*ms)
	for i := 0; i < 5; i++ {
		h.Add(time.Duration(i)*10*ms, f32.Pt(float32(i), 0))
	}
	if h.Len() != 5 {
		t.Fatalf("got %d samples, want 5", h.Len())
	}
	h.Flush(1000 * ms)
	if h.Len() != 2 {
		t.Errorf("old samples should be flushed down to the minimum, got %d", h.Len())
	}
	v, ok := h.Velocity()
	if !ok || v.X < 99.99 || v.X > 100.01 {
		t.Errorf("got velocity %v (%v), want 100 points/s", v, ok)
	}
}

func TestHistoryMaxLen(t *testing.T) {
	h := NewHistory(0, 3, time.Second)
	for i := 0; i < 10; i++ {
		h.Add(time.Duration(i)*ms, f32.Point{})
	}
	if h.Len() != 3 {
		t.Errorf("got %d samples, want 3", h.Len())
	}
	if got := h.Samples()[0].Time; got != 7*ms {
		t.Errorf("oldest sample at %v, want 7ms", got)
	}
}

func TestHistoryBackwards(t *testing.T) {
	h := NewHistory(0, 10, time.Second)
	h.Add(10*ms, f32.Point{})
	h.Add(5*ms, f32.Point{})
	if h.Len() != 1 {
		t.Errorf("sample older than the newest should be dropped, got %d samples", h.Len())
	}
	h.Clear()
	if _, ok := h.Velocity(); ok {
		t.Error("empty history reported a velocity")
	}
}
