package core

import "testing"

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionUp) // duplicate press is recorded once

	seq := f.Sequence()
	if len(seq) != 2 {
		t.Fatalf("Expected 2 actions in sequence, got %d", len(seq))
	}
	if seq[0] != ActionUp || seq[1] != ActionLeft {
		t.Errorf("Sequence() = %v, expected [Up Left]", seq)
	}
	if !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() does not match pressed actions")
	}

	f.Clear()
	if len(f.Sequence()) != 0 || f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("Clone should keep actions after original is cleared")
	}
	if seq := clone.Sequence(); len(seq) != 1 || seq[0] != ActionRight {
		t.Errorf("Clone sequence = %v, expected [Right]", seq)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionFullscreen, "Fullscreen"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if got := cfg.FrameDuration(); got.Milliseconds() != 20 {
		t.Errorf("FrameDuration() = %v, expected 20ms", got)
	}

	cfg.TickRate = 0
	if got := cfg.FrameDuration(); got != DefaultConfig().FrameDuration() {
		t.Errorf("Zero tick rate should fall back to 60fps, got %v", got)
	}
}
