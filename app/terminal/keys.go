// SPDX-License-Identifier: Unlicense OR MIT

package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
)

var keyNames = map[tcell.Key]key.Name{
	tcell.KeyTab:        key.NameTab,
	tcell.KeyBacktab:    key.NameTab,
	tcell.KeyEscape:     key.NameEscape,
	tcell.KeyEnter:      key.NameReturn,
	tcell.KeyLeft:       key.NameLeftArrow,
	tcell.KeyRight:      key.NameRightArrow,
	tcell.KeyUp:         key.NameUpArrow,
	tcell.KeyDown:       key.NameDownArrow,
	tcell.KeyHome:       key.NameHome,
	tcell.KeyEnd:        key.NameEnd,
	tcell.KeyPgUp:       key.NamePageUp,
	tcell.KeyPgDn:       key.NamePageDown,
	tcell.KeyBackspace:  key.NameDeleteBackward,
	tcell.KeyBackspace2: key.NameDeleteBackward,
	tcell.KeyDelete:     key.NameDeleteForward,
	tcell.KeyF1:         key.NameF1,
	tcell.KeyF2:         key.NameF2,
	tcell.KeyF3:         key.NameF3,
	tcell.KeyF4:         key.NameF4,
	tcell.KeyF5:         key.NameF5,
	tcell.KeyF6:         key.NameF6,
	tcell.KeyF7:         key.NameF7,
	tcell.KeyF8:         key.NameF8,
	tcell.KeyF9:         key.NameF9,
	tcell.KeyF10:        key.NameF10,
	tcell.KeyF11:        key.NameF11,
	tcell.KeyF12:        key.NameF12,
}

// translateKey converts a key press into a press and release, since
// terminals don't report releases. Printable runes are also delivered
// as text.
func translateKey(ev *tcell.EventKey) []event.Event {
	mods := convertMods(ev.Modifiers())
	var (
		name key.Name
		text string
	)
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			name = key.NameSpace
		} else {
			name = key.Name(string(unicode.ToUpper(r)))
		}
		if !mods.Contain(key.ModCtrl) && !mods.Contain(key.ModAlt) {
			text = string(r)
		}
	case k == tcell.KeyBacktab:
		name = key.NameTab
		mods |= key.ModShift
	case keyNames[k] != "":
		name = keyNames[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		name = key.Name(string(rune('A' + k - tcell.KeyCtrlA)))
		mods = (mods | key.ModCtrl).Logical()
	case k >= tcell.KeySOH && k <= tcell.KeySUB:
		// Raw control codes.
		name = key.Name(string(rune('A' + k - tcell.KeySOH)))
		mods = (mods | key.ModCtrl).Logical()
	default:
		return nil
	}
	evs := []event.Event{
		key.Event{Name: name, Modifiers: mods, State: key.Press},
		key.Event{Name: name, Modifiers: mods, State: key.Release},
	}
	if text != "" {
		evs = append(evs, key.EditEvent{Text: text})
	}
	return evs
}
