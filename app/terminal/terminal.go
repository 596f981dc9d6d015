// SPDX-License-Identifier: Unlicense OR MIT

/*
Package terminal delivers the input of a terminal to an app.Inbox.

Terminals report the state of the mouse buttons with every mouse
event, and report key presses without releases. An Adapter turns both
into the press and release events of the input engine. Cell
coordinates are converted to points with the configured cell size.
*/
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"
	"golang.org/x/term"

	"gioui.org/inputengine/app"
	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
)

// ErrNotTerminal is returned by Open when standard input is not a
// terminal.
var ErrNotTerminal = errors.New("terminal: standard input is not a terminal")

// DefaultCellSize is the size of a terminal cell in points.
var DefaultCellSize = f32.Pt(8, 16)

// Adapter translates the events of a tcell screen.
type Adapter struct {
	screen tcell.Screen
	inbox  *app.Inbox
	cell   f32.Point
	log    *golog.Logger

	buttons tcell.ButtonMask
	pos     f32.Point
	hasPos  bool
}

var logger = golog.Child("[terminal]")

// buttons maps tcell buttons to pointer buttons.
var buttons = []struct {
	mask tcell.ButtonMask
	btn  pointer.Button
}{
	{tcell.Button1, pointer.ButtonPrimary},
	{tcell.Button2, pointer.ButtonSecondary},
	{tcell.Button3, pointer.ButtonMiddle},
	{tcell.Button4, pointer.ButtonExtra1},
	{tcell.Button5, pointer.ButtonExtra2},
}

// Open initializes a screen on the terminal of the process, with mouse
// and focus reporting enabled. The caller must call Fini on the screen
// when done.
func Open() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	s.EnableMouse()
	s.EnableFocus()
	return s, nil
}

// New returns an adapter delivering the events of screen to inbox.
// A zero cellSize selects DefaultCellSize.
func New(screen tcell.Screen, inbox *app.Inbox, cellSize f32.Point) *Adapter {
	if cellSize.X <= 0 || cellSize.Y <= 0 {
		cellSize = DefaultCellSize
	}
	return &Adapter{
		screen: screen,
		inbox:  inbox,
		cell:   cellSize,
		log:    logger,
	}
}

// CellAt returns the cell at position p.
func (a *Adapter) CellAt(p f32.Point) (x, y int) {
	return int(p.X / a.cell.X), int(p.Y / a.cell.Y)
}

// Run delivers screen events until ctx is done or the screen is
// finalized.
func (a *Adapter) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		// Wake up PollEvent.
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	if w, h := a.screen.Size(); w > 0 && h > 0 {
		a.inbox.SetScreenRect(a.screenRect(w, h))
	}
	for {
		ev := a.screen.PollEvent()
		if err := ctx.Err(); err != nil {
			return err
		}
		if ev == nil {
			a.log.Debugf("screen finalized")
			return nil
		}
		a.Handle(ev)
	}
}

// Handle delivers a single screen event.
func (a *Adapter) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventFocus:
		a.inbox.SetFocused(ev.Focused)
		return
	case *tcell.EventResize:
		w, h := ev.Size()
		a.inbox.SetScreenRect(a.screenRect(w, h))
		return
	case *tcell.EventKey:
		a.inbox.SetModifiers(convertMods(ev.Modifiers()))
	case *tcell.EventMouse:
		a.inbox.SetModifiers(convertMods(ev.Modifiers()))
	}
	if evs := a.Translate(ev); len(evs) > 0 {
		a.inbox.Push(evs...)
	}
}

// Translate converts a key or mouse event into engine events.
func (a *Adapter) Translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return a.mouse(ev)
	case *tcell.EventKey:
		return translateKey(ev)
	}
	return nil
}

func (a *Adapter) mouse(ev *tcell.EventMouse) []event.Event {
	x, y := ev.Position()
	pos := f32.Pt(float32(x)*a.cell.X, float32(y)*a.cell.Y)
	mods := convertMods(ev.Modifiers())
	mask := ev.Buttons()

	var evs []event.Event
	if !a.hasPos || pos != a.pos {
		evs = append(evs, pointer.Moved{Position: pos})
		a.pos, a.hasPos = pos, true
	}
	for _, b := range buttons {
		was, is := a.buttons&b.mask != 0, mask&b.mask != 0
		if was != is {
			evs = append(evs, pointer.ButtonEvent{
				Position:  pos,
				Button:    b.btn,
				Pressed:   is,
				Modifiers: mods,
			})
		}
	}
	a.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 | tcell.Button5)

	var wheel f32.Point
	if mask&tcell.WheelUp != 0 {
		wheel.Y--
	}
	if mask&tcell.WheelDown != 0 {
		wheel.Y++
	}
	if mask&tcell.WheelLeft != 0 {
		wheel.X--
	}
	if mask&tcell.WheelRight != 0 {
		wheel.X++
	}
	if wheel != (f32.Point{}) {
		evs = append(evs, pointer.Wheel{Unit: pointer.UnitLine, Delta: wheel, Modifiers: mods})
	}
	return evs
}

func (a *Adapter) screenRect(w, h int) f32.Rectangle {
	return f32.Rectangle{Max: f32.Pt(float32(w)*a.cell.X, float32(h)*a.cell.Y)}
}

func convertMods(m tcell.ModMask) key.Modifiers {
	var mods key.Modifiers
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModSuper
	}
	return mods.Logical()
}
