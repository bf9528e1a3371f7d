package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("constructor actions should be set")
	}
	if f.Has(ActionJump) {
		t.Error("unset action should not be reported")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"left", ActionLeft, true},
		{"fire", ActionFire, true},
		{"crouch", ActionCrouch, true},
		{"quit", ActionQuit, true},
		{"Left", ActionNone, false},
		{"fly", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAction(tc.name)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestHeldInputContinuous(t *testing.T) {
	h := NewHeldInput(100 * time.Millisecond)
	h.Press(ActionRight, 0)

	if !h.Frame(50 * time.Millisecond).Has(ActionRight) {
		t.Error("action should be held inside the window")
	}
	if !h.Frame(100 * time.Millisecond).Has(ActionRight) {
		t.Error("action should be held at the window edge")
	}
	if h.Frame(101 * time.Millisecond).Has(ActionRight) {
		t.Error("action should expire after the window")
	}

	h.Press(ActionRight, 200*time.Millisecond)
	h.Release(ActionRight)
	if h.Frame(210 * time.Millisecond).Has(ActionRight) {
		t.Error("Release should drop the action immediately")
	}
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput(100 * time.Millisecond)
	h.Press(ActionPause, 0)

	if !h.Frame(0).Has(ActionPause) {
		t.Error("one-shot action should be delivered on the next frame")
	}
	if h.Frame(time.Millisecond).Has(ActionPause) {
		t.Error("one-shot action should be delivered exactly once")
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(5 * time.Second)
	if c.Now() != 5*time.Second {
		t.Errorf("Now() = %v, expected 5s", c.Now())
	}
}
