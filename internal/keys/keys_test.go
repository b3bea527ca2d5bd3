package keys

import "testing"

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},

		// Actions
		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"AltEnter", AltEnter, "alt+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},
		{"F1", F1, "f1"},

		// Ctrl combos
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlA", CtrlA, "ctrl+a"},
		{"CtrlG", CtrlG, "ctrl+g"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlN", CtrlN, "ctrl+n"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlY", CtrlY, "ctrl+y"},

		// Quick replies
		{"Alt1", QuickReply[0], "alt+1"},
		{"Alt5", QuickReply[4], "alt+5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestQuickReplyCount(t *testing.T) {
	if len(QuickReply) != 5 {
		t.Errorf("len(QuickReply) = %d, want 5", len(QuickReply))
	}
}
