// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The inputdemo command runs the input engine on the terminal.

Usage:

	inputdemo [flags]

The screen lists a few focusable rows together with the pointer,
scroll, zoom and focus state of the engine. Tab and Shift-Tab move
the focus between rows, Escape clears it, Return or Space or a click
activates a row. Ctrl-Q or Ctrl-C quits.

Input may also be sent over a websocket when -remote is set:

	inputdemo -remote localhost:8080

Each websocket message is a JSON encoded input event, such as

	{"kind": "key", "key": "Tab"}
	{"kind": "touch", "device": 1, "touch": 1, "phase": "start", "x": 10, "y": 10}

The flags are:

	-remote address
		listen for websocket input on address.
	-origin origin
		accept websocket input from browser pages of origin, such
		as https://example.com. Pages served by the -remote address
		itself are always accepted.
	-ppp density
		pixels per point of the terminal. The default is 1.
	-fps rate
		frames per second while input is being smoothed. The
		default is 60.
	-log file
		write diagnostics to file. The diagnostics are discarded
		by default, since the screen occupies the terminal.
	-v
		log debug diagnostics, such as focus changes.
`
