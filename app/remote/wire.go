// SPDX-License-Identifier: Unlicense OR MIT

package remote

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/key"
	"gioui.org/inputengine/io/pointer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownKind is returned for messages of an unknown kind.
var ErrUnknownKind = errors.New("remote: unknown message kind")

// Message is the wire form of input. Each websocket text message
// carries one Message; Kind selects the fields in use.
type Message struct {
	// Kind is one of move, button, gone, motion, wheel, zoom, rotate,
	// key, text, touch, focus and modifiers.
	Kind string `json:"kind"`

	X float32 `json:"x,omitempty"`
	Y float32 `json:"y,omitempty"`
	// DX and DY are the deltas of motion and wheel messages.
	DX float32 `json:"dx,omitempty"`
	DY float32 `json:"dy,omitempty"`

	Button  int    `json:"button,omitempty"`
	Pressed bool   `json:"pressed,omitempty"`
	Unit    string `json:"unit,omitempty"`

	Factor  float32 `json:"factor,omitempty"`
	Radians float32 `json:"radians,omitempty"`

	Key    string `json:"key,omitempty"`
	State  string `json:"state,omitempty"`
	Repeat bool   `json:"repeat,omitempty"`
	Text   string `json:"text,omitempty"`

	Device uint64  `json:"device,omitempty"`
	Touch  uint64  `json:"touch,omitempty"`
	Phase  string  `json:"phase,omitempty"`
	Force  float32 `json:"force,omitempty"`

	Focused bool `json:"focused,omitempty"`
	// Modifiers held, by name: ctrl, command, shift, alt, super and
	// shortcut.
	Modifiers []string `json:"modifiers,omitempty"`
}

// Reply is sent back for messages that could not be delivered.
type Reply struct {
	Error string `json:"error"`
}

var (
	modNames = map[string]key.Modifiers{
		"ctrl":     key.ModCtrl,
		"command":  key.ModCommand,
		"shift":    key.ModShift,
		"alt":      key.ModAlt,
		"super":    key.ModSuper,
		"shortcut": key.ModShortcut,
	}
	units = map[string]pointer.WheelUnit{
		"":      pointer.UnitPoint,
		"point": pointer.UnitPoint,
		"line":  pointer.UnitLine,
		"page":  pointer.UnitPage,
	}
	phases = map[string]pointer.Phase{
		"start":  pointer.TouchStart,
		"move":   pointer.TouchMove,
		"end":    pointer.TouchEnd,
		"cancel": pointer.TouchCancel,
	}
	states = map[string]key.State{
		"":        key.Press,
		"press":   key.Press,
		"release": key.Release,
	}
)

// Decode parses a message.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("remote: decode: %w", err)
	}
	if m.Kind == "" {
		return Message{}, errors.New("remote: decode: missing kind")
	}
	return m, nil
}

// Encode formats a message.
func Encode(m Message) ([]byte, error) {
	return json.Marshal(m)
}

// Mods returns the modifiers of m, with the logical shortcut modifier
// set for the platform.
func (m Message) Mods() (key.Modifiers, error) {
	var mods key.Modifiers
	for _, n := range m.Modifiers {
		mod, ok := modNames[n]
		if !ok {
			return 0, fmt.Errorf("remote: unknown modifier %q", n)
		}
		mods |= mod
	}
	return mods.Logical(), nil
}

// Event converts m to an input event. The focus and modifiers kinds
// have no event and are rejected.
func (m Message) Event() (event.Event, error) {
	mods, err := m.Mods()
	if err != nil {
		return nil, err
	}
	pos := f32.Pt(m.X, m.Y)
	switch m.Kind {
	case "move":
		return pointer.Moved{Position: pos}, nil
	case "button":
		if m.Button < 0 || m.Button > 0xffff {
			return nil, fmt.Errorf("remote: invalid button %d", m.Button)
		}
		return pointer.ButtonEvent{
			Position:  pos,
			Button:    pointer.Button(m.Button),
			Pressed:   m.Pressed,
			Modifiers: mods,
		}, nil
	case "gone":
		return pointer.Gone{}, nil
	case "motion":
		return pointer.Motion{Delta: f32.Pt(m.DX, m.DY)}, nil
	case "wheel":
		u, ok := units[m.Unit]
		if !ok {
			return nil, fmt.Errorf("remote: invalid wheel unit %q", m.Unit)
		}
		return pointer.Wheel{Unit: u, Delta: f32.Pt(m.DX, m.DY), Modifiers: mods}, nil
	case "zoom":
		if m.Factor <= 0 {
			return nil, fmt.Errorf("remote: invalid zoom factor %v", m.Factor)
		}
		return pointer.Zoom{Factor: m.Factor}, nil
	case "rotate":
		return pointer.Rotate{Radians: m.Radians}, nil
	case "key":
		st, ok := states[m.State]
		if !ok {
			return nil, fmt.Errorf("remote: invalid key state %q", m.State)
		}
		if m.Key == "" {
			return nil, errors.New("remote: key without name")
		}
		return key.Event{Name: key.Name(m.Key), Modifiers: mods, State: st, Repeat: m.Repeat}, nil
	case "text":
		return key.EditEvent{Text: m.Text}, nil
	case "touch":
		ph, ok := phases[m.Phase]
		if !ok {
			return nil, fmt.Errorf("remote: invalid touch phase %q", m.Phase)
		}
		return pointer.Touch{
			Device:   pointer.DeviceID(m.Device),
			ID:       pointer.TouchID(m.Touch),
			Phase:    ph,
			Position: pos,
			Force:    m.Force,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}
}
