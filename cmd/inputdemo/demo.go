// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/input"
	"gioui.org/inputengine/io/key"
)

// firstRow is the screen line of the first focusable row.
const firstRow = 9

type demo struct {
	screen tcell.Screen
	cell   f32.Point
	quit   func()

	rows     []row
	clicks   int
	scroll   f32.Point
	zoom     float32
	rotation float32
}

type row struct {
	id          event.ID
	label       string
	activations int
}

var quitShortcuts = []key.Shortcut{
	{Modifiers: key.ModCtrl, Name: "Q"},
	{Modifiers: key.ModCtrl, Name: "C"},
}

func newDemo(screen tcell.Screen, cell f32.Point, quit func()) *demo {
	d := &demo{
		screen: screen,
		cell:   cell,
		quit:   quit,
		zoom:   1,
	}
	for i, label := range []string{"Open", "Save", "Close"} {
		d.rows = append(d.rows, row{id: event.ID(i + 1), label: label})
	}
	return d
}

// frame updates the demo from s and draws it.
func (d *demo) frame(s *input.State) {
	for _, sc := range quitShortcuts {
		if s.ConsumeShortcut(sc) {
			d.quit()
			return
		}
	}
	p := s.Pointer()
	if p.PrimaryClicked() {
		d.clicks++
	}
	f := s.Focus()
	for i := range d.rows {
		r := &d.rows[i]
		f.InterestedInFocus(r.id)
		if p.PrimaryClicked() {
			if pos, ok := p.InteractPos(); ok && d.rowAt(pos) == i {
				s.RequestFocus(r.id)
				r.activations++
			}
		}
		if f.HasFocus(r.id) {
			r.activations += s.CountAndConsumeKey(0, key.NameReturn)
			r.activations += s.CountAndConsumeKey(0, key.NameSpace)
		}
	}
	d.scroll = d.scroll.Add(s.SmoothScrollDelta())
	d.zoom *= s.ZoomDelta()
	d.rotation += s.RotationDelta()
	d.draw(s)
}

// rowAt returns the index of the row at pos, or -1.
func (d *demo) rowAt(pos f32.Point) int {
	line := int(pos.Y/d.cell.Y) - firstRow
	if line < 0 || line%2 != 0 || line/2 >= len(d.rows) {
		return -1
	}
	return line / 2
}

func (d *demo) draw(s *input.State) {
	if d.screen == nil {
		return
	}
	d.screen.Clear()
	p := s.Pointer()
	pos, _ := p.LatestPos()
	vel := p.Velocity()
	id, _ := s.Focus().Focused()
	lines := []string{
		"inputdemo: Tab moves focus, Ctrl-Q quits",
		fmt.Sprintf("pointer  (%.0f, %.0f) velocity (%.0f, %.0f) down %v", pos.X, pos.Y, vel.X, vel.Y, p.AnyDown()),
		fmt.Sprintf("gesture  clicks %d dragging %v long press %v", d.clicks, p.IsDecidedlyDragging(), p.IsLongPress()),
		fmt.Sprintf("scroll   (%.0f, %.0f) scrolling %v", d.scroll.X, d.scroll.Y, s.IsScrolling()),
		fmt.Sprintf("zoom     %.2f rotation %.2f touches %v", d.zoom, d.rotation, s.AnyTouches()),
		fmt.Sprintf("focus    %d locked %v window %v", id, s.Focus().IsLocked(), s.WindowFocused()),
		fmt.Sprintf("time     %v frame %v", s.Time().Round(1e6), s.UnstableDt().Round(1e5)),
	}
	for y, l := range lines {
		d.text(0, y, l, tcell.StyleDefault)
	}
	for i, r := range d.rows {
		st := tcell.StyleDefault
		marker := "  "
		if s.Focus().HasFocus(r.id) {
			st = st.Reverse(true)
			marker = "> "
		}
		d.text(0, firstRow+2*i, fmt.Sprintf("%s%-8s %d", marker, r.label, r.activations), st)
	}
	d.screen.Show()
}

func (d *demo) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
