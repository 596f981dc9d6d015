// SPDX-License-Identifier: Unlicense OR MIT

package input

// Browsers already scale wheel lines.
const defaultLineScrollSpeed = 8
