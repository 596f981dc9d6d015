// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements conversion between logical points and
physical pixels.

A point is the unit for positions and sizes independent of the
underlying display device. Pixels are the unit for display
dependent pixels; their size vary between platforms and displays.

All positions delivered to the input engine are in points.
Platform adapters that receive pixel coordinates convert them
with a Metric.
*/
package unit

import "fmt"

// Metric converts between points and pixels.
type Metric struct {
	// PxPerPt is the number of physical pixels per point.
	// The zero value is treated as 1.
	PxPerPt float32
}

// Px returns the number of pixels for v points.
func (m Metric) Px(v float32) float32 {
	return v * m.scale()
}

// Pt returns the number of points for v pixels.
func (m Metric) Pt(v float32) float32 {
	return v / m.scale()
}

// PhysicalPixelSize returns the size of a physical pixel in points.
func (m Metric) PhysicalPixelSize() float32 {
	return 1 / m.scale()
}

func (m Metric) scale() float32 {
	if m.PxPerPt <= 0 {
		return 1
	}
	return m.PxPerPt
}

func (m Metric) String() string {
	return fmt.Sprintf("%gpx/pt", m.scale())
}
