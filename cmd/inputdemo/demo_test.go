// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gioui.org/inputengine/app"
	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
	"gioui.org/inputengine/io/system"
)

type testDemo struct {
	d     *demo
	w     *app.Window
	now   time.Time
	quits int
}

func newTestDemo(screen tcell.Screen) *testDemo {
	td := &testDemo{now: time.Unix(0, 0)}
	td.d = newDemo(screen, f32.Pt(8, 16), func() { td.quits++ })
	td.w = app.NewWindow(app.NewInbox(), app.Clock(func() time.Time { return td.now }))
	return td
}

func (td *testDemo) frame(evs ...event.Event) {
	td.now = td.now.Add(16 * time.Millisecond)
	for _, e := range evs {
		td.w.Inbox().Push(e)
	}
	td.w.Frame(td.d.frame)
}

func (td *testDemo) focused() event.ID {
	id, _ := td.w.State().Focus().Focused()
	return id
}

func keyPress(name key.Name, mods key.Modifiers) []event.Event {
	return []event.Event{
		key.Event{Name: name, Modifiers: mods, State: key.Press},
		key.Event{Name: name, Modifiers: mods, State: key.Release},
	}
}

func TestDemoKeyboard(t *testing.T) {
	td := newTestDemo(nil)
	td.frame()
	td.frame(keyPress(key.NameTab, 0)...)
	td.frame()
	if got := td.focused(); got != 1 {
		t.Fatalf("focused %d after Tab, want 1", got)
	}
	td.frame(keyPress(key.NameReturn, 0)...)
	td.frame(keyPress(key.NameSpace, 0)...)
	if got := td.d.rows[0].activations; got != 2 {
		t.Errorf("got %d activations, want 2", got)
	}
	td.frame(keyPress(key.NameEscape, 0)...)
	if got := td.focused(); got != 0 {
		t.Errorf("focused %d after Escape, want none", got)
	}
	td.frame(keyPress("Q", key.ModCtrl)...)
	if td.quits != 1 {
		t.Errorf("got %d quits, want 1", td.quits)
	}
}

func TestDemoClick(t *testing.T) {
	td := newTestDemo(nil)
	// The second row is on line firstRow+2.
	pos := f32.Pt(4, (firstRow+2)*16+8)
	td.frame(pointer.Moved{Position: pos})
	td.frame(pointer.ButtonEvent{Position: pos, Pressed: true})
	td.frame(pointer.ButtonEvent{Position: pos})
	td.frame()
	if got := td.focused(); got != 2 {
		t.Errorf("focused %d after click, want 2", got)
	}
	if td.d.clicks != 1 || td.d.rows[1].activations != 1 {
		t.Errorf("got %d clicks and %d activations", td.d.clicks, td.d.rows[1].activations)
	}
}

func TestRowAt(t *testing.T) {
	d := newDemo(nil, f32.Pt(8, 16), func() {})
	tests := []struct {
		y    float32
		want int
	}{
		{0, -1},
		{firstRow * 16, 0},
		{(firstRow+1)*16 + 1, -1},
		{(firstRow + 4) * 16, 2},
		{(firstRow + 6) * 16, -1},
	}
	for _, tt := range tests {
		if got := d.rowAt(f32.Pt(0, tt.y)); got != tt.want {
			t.Errorf("rowAt(%v) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestDemoDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	td := newTestDemo(screen)
	td.frame(system.WindowFocusEvent{Focused: true})
	td.frame(keyPress(key.NameTab, 0)...)
	td.frame()
	var line strings.Builder
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, firstRow)
		line.WriteRune(r)
	}
	if got := line.String(); !strings.HasPrefix(got, "> Open") {
		t.Errorf("got first row %q", got)
	}
}
