// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects platform input to the input engine.

Platform adapters, such as package app/terminal or app/remote, deliver
events to an [Inbox] from their own goroutines. A [Window] drains the
Inbox once per frame into an [input.RawInput], advances the
[input.State] and runs the user interface function.

For example:

	inbox := app.NewInbox()
	w := app.NewWindow(inbox, app.PixelsPerPoint(2))
	go adapter.Run(ctx, inbox)
	err := w.Run(ctx, func(s *input.State) {
		if s.Pointer().PrimaryClicked() {
			...
		}
	})

Run draws a frame whenever the Inbox receives input, and keeps drawing
frames while the State asks for a repaint, for example while a wheel
scroll is being smoothed.
*/
package app
