// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates pointer velocities from position samples.
package fling

import (
	"math"
	"strconv"
	"strings"

	"gioui.org/inputengine/f32"
)

// degree is the degree of the fitted polynomial.
const degree = 2

type coefficients [degree + 1]float32

type matrix struct {
	rows, cols int
	data       []float32
}

// Estimate fits a polynomial to each axis of samples by least
// squares, with time relative to the newest sample, and returns
// the slope at the newest sample in points per second.
//
// Estimate reports false when there are too few samples or the
// samples are degenerate.
func Estimate(samples []Sample) (f32.Point, bool) {
	if len(samples) <= degree {
		return f32.Point{}, false
	}
	newest := samples[len(samples)-1].Time
	T := make([]float32, len(samples))
	X := make([]float32, len(samples))
	Y := make([]float32, len(samples))
	for i, s := range samples {
		T[i] = float32((s.Time - newest).Seconds())
		X[i] = s.Pos.X
		Y[i] = s.Pos.Y
	}
	cx, ok := polyFit(T, X)
	if !ok {
		return f32.Point{}, false
	}
	cy, ok := polyFit(T, Y)
	if !ok {
		return f32.Point{}, false
	}
	return f32.Point{X: cx[1], Y: cy[1]}, true
}

// polyFit finds the polynomial coefficients B such that
// sum(B[j]*X[i]^j) approximates Y[i] in the least squares sense.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) || len(X) <= degree {
		return coefficients{}, false
	}
	// Expand X into the matrix A, stored column by column.
	A := newMatrix(degree+1, len(X))
	for i, x := range X {
		A.set(0, i, 1)
		for j := 1; j < A.rows; j++ {
			A.set(j, i, A.get(j-1, i)*x)
		}
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*B = Qt*Y for B. R is upper triangular, so back
	// substitute from the bottom row.
	var B coefficients
	for i := Q.rows - 1; i >= 0; i-- {
		B[i] = dot(Q.col(i), Y)
		for j := Q.rows - 1; j > i; j-- {
			B[i] -= Rt.get(i, j) * B[j]
		}
		B[i] /= Rt.get(i, i)
	}
	return B, true
}

// decomposeQR computes Q and R where Q*R = A using Gram-Schmidt.
// A and Q are stored column by column; Rt holds R with Rt.get(i, j)
// being row i, column j of R.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.rows, A.rows)
	for i := 0; i < Q.rows; i++ {
		for j := 0; j < Q.cols; j++ {
			Q.set(i, j, A.get(i, j))
		}
		// Subtract projections onto the previous, normalized, columns.
		for j := 0; j < i; j++ {
			d := dot(Q.col(j), Q.col(i))
			for k := 0; k < Q.cols; k++ {
				Q.set(i, k, Q.get(i, k)-d*Q.get(j, k))
			}
		}
		n := norm(Q.col(i))
		if n < 0.000001 {
			// Degenerate data, no solution.
			return nil, nil, false
		}
		invNorm := 1 / n
		for j := 0; j < Q.cols; j++ {
			Q.set(i, j, Q.get(i, j)*invNorm)
		}
		for j := i; j < Rt.cols; j++ {
			Rt.set(i, j, dot(Q.col(i), A.col(j)))
		}
	}
	return Q, Rt, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) set(row, col int, v float32) {
	m.data[row*m.cols+col] = v
}

func (m *matrix) get(row, col int) float32 {
	return m.data[row*m.cols+col]
}

// col returns the stored column c, which is the row c of the
// backing storage.
func (m *matrix) col(c int) []float32 {
	return m.data[c*m.cols : (c+1)*m.cols]
}

func (m *matrix) String() string {
	var b strings.Builder
	for c := 0; c < m.rows; c++ {
		for r := 0; r < m.cols; r++ {
			b.WriteString(strconv.FormatFloat(float64(m.get(c, r)), 'g', -1, 32))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	const threshold = 0.1
	for i, v := range c {
		if math.Abs(float64(c2[i]-v)) > threshold {
			return false
		}
	}
	return true
}

func norm(V []float32) float32 {
	var n float32
	for _, v := range V {
		n += v * v
	}
	return float32(math.Sqrt(float64(n)))
}

func dot(V1, V2 []float32) float32 {
	var d float32
	for i, v1 := range V1 {
		d += v1 * V2[i]
	}
	return d
}
