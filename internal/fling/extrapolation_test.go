// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"testing"
	"time"

	"gioui.org/inputengine/f32"
)

func TestDecomposeQR(t *testing.T) {
	A := &matrix{
		rows: 3, cols: 3,
		data: []float32{
			12, 6, -4,
			-51, 167, 24,
			4, -68, -41,
		},
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		t.Fatal("decomposeQR failed")
	}
	// Rebuild A column by column: a_j = sum_i R[i][j] q_i.
	QR := newMatrix(A.rows, A.cols)
	for j := 0; j < A.rows; j++ {
		for k := 0; k < A.cols; k++ {
			var v float32
			for i := 0; i < Q.rows; i++ {
				v += Rt.get(i, j) * Q.get(i, k)
			}
			QR.set(j, k, v)
		}
	}
	if !approxMatrix(A, QR, 0.001) {
		t.Log("A\n", A)
		t.Log("Q\n", Q)
		t.Log("Rt\n", Rt)
		t.Log("QR\n", QR)
		t.Fatal("Q*R not approximately equal to A")
	}
}

func TestFit(t *testing.T) {
	X := []float32{-1, 0, 1}
	Y := []float32{2, 0, 2}

	got, ok := polyFit(X, Y)
	if !ok {
		t.Fatal("polyFit failed")
	}
	want := coefficients{0, 0, 2}
	if !got.approxEqual(want) {
		t.Fatalf("polyFit: got %v want %v", got, want)
	}
}

func TestEstimateLinear(t *testing.T) {
	var samples []Sample
	for i := 0; i < 5; i++ {
		tm := time.Duration(i) * 10 * time.Millisecond
		samples = append(samples, Sample{Time: tm, Pos: f32.Pt(float32(i)*2, -float32(i))})
	}
	v, ok := Estimate(samples)
	if !ok {
		t.Fatal("Estimate failed")
	}
	if math.Abs(float64(v.X-200)) > 1 || math.Abs(float64(v.Y+100)) > 1 {
		t.Errorf("got velocity %v, want (200,-100)", v)
	}
}

func TestEstimateDegenerate(t *testing.T) {
	samples := []Sample{{Time: 0}, {Time: 0}, {Time: 0}}
	if _, ok := Estimate(samples); ok {
		t.Error("Estimate succeeded on samples without time spread")
	}
	if _, ok := Estimate(samples[:2]); ok {
		t.Error("Estimate succeeded with too few samples")
	}
}

func approxMatrix(m, m2 *matrix, eps float64) bool {
	for i, v := range m.data {
		if math.Abs(float64(m2.data[i]-v)) > eps {
			return false
		}
	}
	return true
}
