package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotateCW)
	if !f.Has(ActionLeft) || !f.Has(ActionRotateCW) {
		t.Errorf("Has() after Set() = false, actions = %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionHardDrop, "HardDrop"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		ok       bool
	}{
		{"cyan", ColorCyan, true},
		{" Orange ", ColorOrange, true},
		{"bright-red", ColorBrightRed, true},
		{"purple", ColorMagenta, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.input)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tc.input, got, ok, tc.expected, tc.ok)
		}
	}
}
