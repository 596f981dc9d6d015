// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want Point
	}{
		{Pt(3, 4), Pt(0.6, 0.8)},
		{Pt(0, -2), Pt(0, -1)},
		{Point{}, Point{}},
		{Pt(float32(math.Inf(1)), 0), Point{}},
	} {
		got := tc.in.Normalize()
		if !approx(got, tc.want) {
			t.Errorf("%v.Normalize() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDist(t *testing.T) {
	if d := Pt(10, 10).Dist(Pt(13, 14)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestRectangleContains(t *testing.T) {
	r := Rectangle{Max: Pt(10, 20)}
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(9.5, 19)) {
		t.Error("rectangle should contain inner points")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("rectangle should exclude its max edge")
	}
	if got := (Rectangle{Min: Pt(5, 5), Max: Pt(1, 1)}).Canon(); got.Empty() {
		t.Errorf("canonical rectangle %v should be non-empty", got)
	}
}

func approx(p1, p2 Point) bool {
	const eps = 1e-5
	return math.Abs(float64(p1.X-p2.X)) < eps && math.Abs(float64(p1.Y-p2.Y)) < eps
}
