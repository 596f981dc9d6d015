// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"strconv"
	"time"

	"github.com/kataras/golog"

	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/input"
)

// Option configures a window.
type Option func(*Config)

// Config describes a Window configuration.
type Config struct {
	// Options tunes the input interpretation.
	Options input.Options
	// PixelsPerPoint is the pixel density of the window.
	PixelsPerPoint float32
	// PredictedDt is the expected time between frames.
	PredictedDt time.Duration
	// Logger receives diagnostics such as focus changes.
	Logger *golog.Logger
	// Clock returns the current time.
	Clock func() time.Time
}

// Window runs the frames of a user interface.
type Window struct {
	cnf   Config
	inbox *Inbox
	state *input.State
	start time.Time
	// repaint is set when the last frame asked to be followed
	// immediately by another.
	repaint bool
	frames  int
}

var logger = golog.Child("[app]")

// NewWindow returns a window reading input from inbox.
func NewWindow(inbox *Inbox, options ...Option) *Window {
	cnf := Config{
		Options:        input.DefaultOptions(),
		PixelsPerPoint: 1,
		PredictedDt:    time.Second / 60,
		Logger:         logger,
		Clock:          time.Now,
	}
	cnf.apply(options)
	return &Window{
		cnf:   cnf,
		inbox: inbox,
		state: input.NewState(),
		start: cnf.Clock(),
	}
}

func (c *Config) apply(options []Option) {
	for _, o := range options {
		o(c)
	}
}

// WithOptions sets the input options.
func WithOptions(opts input.Options) Option {
	return func(cnf *Config) {
		cnf.Options = opts
	}
}

// PixelsPerPoint sets the pixel density of the window.
func PixelsPerPoint(ppp float32) Option {
	if ppp <= 0 {
		panic("pixels per point must be positive")
	}
	return func(cnf *Config) {
		cnf.PixelsPerPoint = ppp
	}
}

// PredictedDt sets the expected time between frames, which is also
// the delay between frames drawn while input is being smoothed.
func PredictedDt(dt time.Duration) Option {
	if dt <= 0 {
		panic("frame time must be positive")
	}
	return func(cnf *Config) {
		cnf.PredictedDt = dt
	}
}

// Logger sets the logger of the window.
func Logger(l *golog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

// Clock sets the source of frame times.
func Clock(now func() time.Time) Option {
	return func(cnf *Config) {
		cnf.Clock = now
	}
}

// Inbox returns the inbox of the window.
func (w *Window) Inbox() *Inbox {
	return w.inbox
}

// State returns the state of the most recent frame.
func (w *Window) State() *input.State {
	return w.state
}

// Frame drains the inbox and runs a frame. ui may be nil.
func (w *Window) Frame(ui func(s *input.State)) *input.State {
	raw := w.inbox.Take()
	raw.Time = w.cnf.Clock().Sub(w.start)
	raw.PredictedDt = w.cnf.PredictedDt
	before, _ := w.state.Focus().Focused()

	w.state = w.state.BeginPass(raw, w.repaint, w.cnf.PixelsPerPoint, w.cnf.Options)
	if ui != nil {
		ui(w.state)
	}
	w.state.EndFrame()
	w.repaint = w.state.WantsRepaint()
	w.frames++

	after, _ := w.state.Focus().Focused()
	if after != before {
		w.cnf.Logger.Debugf("frame %d: focus %s -> %s", w.frames, focusName(before), focusName(after))
	}
	return w.state
}

// Run runs frames until ctx is done. A frame is run when input
// arrives, after PredictedDt while the previous frame wants a repaint,
// and when a held press outlasts a click.
func (w *Window) Run(ctx context.Context, ui func(s *input.State)) error {
	timer := time.NewTimer(w.cnf.PredictedDt)
	defer timer.Stop()
	for {
		w.Frame(ui)
		var tick <-chan time.Time
		if d, ok := w.nextFrame(); ok {
			timer.Reset(d)
			tick = timer.C
		}
		select {
		case <-ctx.Done():
			w.cnf.Logger.Debugf("stopped after %d frames", w.frames)
			return ctx.Err()
		case <-w.inbox.Wakeups():
		case <-tick:
		}
	}
}

// nextFrame returns the delay until a frame is due without new input.
func (w *Window) nextFrame() (time.Duration, bool) {
	if w.repaint {
		return w.cnf.PredictedDt, true
	}
	p := w.state.Pointer()
	start, ok := p.PressStartTime()
	if !ok || !p.AnyDown() || !p.CouldAnyButtonBeClick() {
		return 0, false
	}
	// Just past the click duration, when a still press becomes a long
	// press.
	d := start + w.cnf.Options.MaxClickDuration + time.Millisecond - w.state.Time()
	return max(d, 0), true
}

func focusName(id event.ID) string {
	if id == 0 {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}
