// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"math"
	"testing"
	"time"

	"gioui.org/inputengine/f32"
	"gioui.org/inputengine/io/event"
	"gioui.org/inputengine/io/pointer"
)

func TestPinchZoom(t *testing.T) {
	tr := NewTouch(1)
	ptr := f32.Pt(50, 50)

	tr.Frame(0, []event.Event{
		touch(1, 1, pointer.TouchStart, 40, 50),
		touch(1, 2, pointer.TouchStart, 60, 50),
	}, ptr, true)
	info, ok := tr.Info()
	if !ok {
		t.Fatal("no gesture with two fingers down")
	}
	if info.ZoomDelta != 1 {
		t.Errorf("first frame of a gesture should not zoom, got %v", info.ZoomDelta)
	}
	if info.NumTouches != 2 || info.StartPos != ptr {
		t.Errorf("unexpected gesture start %+v", info)
	}

	// Spread the fingers to twice the distance.
	tr.Frame(16*time.Millisecond, []event.Event{
		touch(1, 1, pointer.TouchMove, 30, 50),
		touch(1, 2, pointer.TouchMove, 70, 50),
	}, ptr, true)
	info, _ = tr.Info()
	if info.ZoomDelta != 2 {
		t.Errorf("got zoom %v, want 2", info.ZoomDelta)
	}
	if info.ZoomDelta2D != f32.Pt(2, 1) {
		t.Errorf("horizontal pinch should only zoom X, got %v", info.ZoomDelta2D)
	}

	// No events: deltas must not repeat.
	tr.Frame(32*time.Millisecond, nil, ptr, true)
	info, _ = tr.Info()
	if info.ZoomDelta != 1 {
		t.Errorf("zoom repeated without movement: %v", info.ZoomDelta)
	}

	tr.Frame(48*time.Millisecond, []event.Event{touch(1, 2, pointer.TouchEnd, 70, 50)}, ptr, true)
	if tr.Active() {
		t.Error("gesture still active with one finger")
	}
}

func TestRotate(t *testing.T) {
	tr := NewTouch(1)
	tr.Frame(0, []event.Event{
		touch(1, 1, pointer.TouchStart, -10, 0),
		touch(1, 2, pointer.TouchStart, 10, 0),
	}, f32.Point{}, true)
	tr.Frame(time.Millisecond, []event.Event{
		touch(1, 1, pointer.TouchMove, 0, -10),
		touch(1, 2, pointer.TouchMove, 0, 10),
	}, f32.Point{}, true)
	info, _ := tr.Info()
	if math.Abs(float64(info.RotationDelta-math.Pi/2)) > 1e-5 {
		t.Errorf("got rotation %v, want π/2", info.RotationDelta)
	}
}

func TestTouchOtherDevice(t *testing.T) {
	tr := NewTouch(1)
	tr.Frame(0, []event.Event{
		touch(2, 1, pointer.TouchStart, 0, 0),
		touch(2, 2, pointer.TouchStart, 10, 0),
	}, f32.Point{}, true)
	if tr.NumTouches() != 0 {
		t.Errorf("touches of another device were tracked")
	}
}

func TestAddFingerResetsDelta(t *testing.T) {
	tr := NewTouch(1)
	tr.Frame(0, []event.Event{
		touch(1, 1, pointer.TouchStart, 0, 0),
		touch(1, 3, pointer.TouchStart, 10, 0),
	}, f32.Point{}, true)
	tr.Frame(time.Millisecond, []event.Event{
		touch(1, 2, pointer.TouchStart, 100, 100),
	}, f32.Point{}, true)
	info, _ := tr.Info()
	if info.ZoomDelta != 1 || info.TranslationDelta != (f32.Point{}) {
		t.Errorf("adding a finger produced a delta: %+v", info)
	}
	if tr.active[1].id != 2 {
		t.Errorf("touches not ordered by id: %+v", tr.active)
	}
}

func touch(dev pointer.DeviceID, id pointer.TouchID, ph pointer.Phase, x, y float32) pointer.Touch {
	return pointer.Touch{Device: dev, ID: id, Phase: ph, Position: f32.Pt(x, y)}
}
