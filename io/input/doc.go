// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input interprets the raw input of a window once per frame.

A platform adapter accumulates events into a [RawInput]. At the start
of every frame, [State.BeginPass] consumes the previous [State] and the
RawInput and returns the state for the new frame: pointer clicks,
drags and velocity in [Pointer], smoothed scrolling and zooming, held
keys, and keyboard focus in [Focus].

During the frame, user interface elements query the State, consume
the key events they handle so lower priority elements don't react to
them, and register their interest in keyboard focus by calling
[Focus.InterestedInFocus] in traversal order. [State.EndFrame] finishes
the focus bookkeeping.

State is not safe for concurrent use.
*/
package input
