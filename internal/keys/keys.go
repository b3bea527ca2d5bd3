// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "y" and "n" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	AltEnter   = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String()   // "alt+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
	F1         = tea.KeyPressMsg{Code: tea.KeyF1}.String()                         // "f1"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlA = (tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}).String() // "ctrl+a"
	CtrlG = (tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}).String() // "ctrl+g"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
	CtrlN = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String() // "ctrl+n"
	CtrlR = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String() // "ctrl+r"
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
)

// QuickReply holds the Alt+digit shortcuts for the quick-reply row, in order.
var QuickReply = []string{
	(tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}).String(), // "alt+1"
	(tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt}).String(), // "alt+2"
	(tea.KeyPressMsg{Code: '3', Mod: tea.ModAlt}).String(), // "alt+3"
	(tea.KeyPressMsg{Code: '4', Mod: tea.ModAlt}).String(), // "alt+4"
	(tea.KeyPressMsg{Code: '5', Mod: tea.ModAlt}).String(), // "alt+5"
}
