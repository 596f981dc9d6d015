// SPDX-License-Identifier: Unlicense OR MIT

package input

import "time"

// Options tunes the interpretation of input.
type Options struct {
	// MaxClickDist is the maximum distance in points the pointer may move
	// between press and release for the gesture to count as a click.
	MaxClickDist float32
	// MaxClickDuration is the maximum time between press and release of
	// a click.
	MaxClickDuration time.Duration
	// MaxDoubleClickDelay is the maximum time between two clicks of a
	// double click. A triple click must happen within twice the delay.
	MaxDoubleClickDelay time.Duration
	// LineScrollSpeed is the number of points scrolled per wheel line.
	LineScrollSpeed float32
	// ScrollZoomSpeed converts scroll-to-zoom points to the exponent of
	// the zoom factor.
	ScrollZoomSpeed float32
}

// DefaultOptions returns the default Options for the platform.
func DefaultOptions() Options {
	return Options{
		MaxClickDist:        6,
		MaxClickDuration:    800 * time.Millisecond,
		MaxDoubleClickDelay: 300 * time.Millisecond,
		LineScrollSpeed:     defaultLineScrollSpeed,
		ScrollZoomSpeed:     1.0 / 200,
	}
}
