package mouse

import (
	"testing"
	"time"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonWheelDown, "wheel-down"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
	if !ButtonWheelUp.IsWheel() || ButtonLeft.IsWheel() {
		t.Error("IsWheel mismatch")
	}
}

func TestActionWheelDirection(t *testing.T) {
	if ActionWheelUp.WheelDirection() != -1 {
		t.Error("wheel up should be -1")
	}
	if ActionWheelDown.WheelDirection() != 1 {
		t.Error("wheel down should be 1")
	}
	if ActionPress.WheelDirection() != 0 {
		t.Error("press should be 0")
	}
	if ActionDrag.String() != "drag" {
		t.Errorf("expected drag, got %s", ActionDrag.String())
	}
}

func TestTrackerTranslate(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	steps := []struct {
		buttons Button
		action  Action
		button  Button
	}{
		{ButtonNone, ActionMove, ButtonNone},
		{ButtonLeft, ActionPress, ButtonLeft},
		{ButtonLeft, ActionDrag, ButtonLeft},
		{ButtonLeft, ActionDrag, ButtonLeft},
		{ButtonNone, ActionRelease, ButtonLeft},
		{ButtonNone, ActionMove, ButtonNone},
		{ButtonWheelDown, ActionWheelDown, ButtonWheelDown},
		{ButtonRight, ActionPress, ButtonRight},
		{ButtonLeft, ActionPress, ButtonLeft},
		{ButtonNone, ActionRelease, ButtonLeft},
	}

	for i, s := range steps {
		ev := tr.Translate(i, i+1, s.buttons, key.ModShift, now)
		if ev.Action != s.action {
			t.Errorf("step %d: expected action %s, got %s", i, s.action, ev.Action)
		}
		if ev.Button != s.button {
			t.Errorf("step %d: expected button %s, got %s", i, s.button, ev.Button)
		}
		if ev.Pos() != buffer.Pt(i, i+1) {
			t.Errorf("step %d: expected position (%d:%d), got %v", i, i+1, i, ev.Pos())
		}
		if !ev.Modifiers.HasShift() {
			t.Errorf("step %d: modifiers lost", i)
		}
	}
}

func TestTrackerWheelKeepsHeldButton(t *testing.T) {
	tr := NewTracker()
	tr.Translate(0, 0, ButtonLeft, key.ModNone, time.Time{})
	tr.Translate(0, 0, ButtonWheelUp, key.ModNone, time.Time{})

	if tr.Held() != ButtonLeft {
		t.Errorf("wheel should not change the held button, got %s", tr.Held())
	}
}
