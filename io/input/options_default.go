// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package input

const defaultLineScrollSpeed = 40
