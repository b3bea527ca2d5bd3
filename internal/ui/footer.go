package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which bindings the footer shows
type FooterMode int

const (
	FooterWelcome FooterMode = iota
	FooterChat
	FooterOverlay
	FooterConfirm
)

// Footer represents the bottom bar: contextual key bindings on the first
// line and the live region (latest announcement) on the second.
type Footer struct {
	width        int
	mode         FooterMode
	bindings     map[FooterMode][]KeyBinding
	announcement string
	flash        bool
}

// NewFooter creates a new footer with English bindings
func NewFooter() *Footer {
	f := &Footer{}
	f.SetBindings(DefaultBindings())
	return f
}

// DefaultBindings returns the bindings for every footer mode
func DefaultBindings() map[FooterMode][]KeyBinding {
	return map[FooterMode][]KeyBinding{
		FooterWelcome: {
			{Key: "↑/↓", Desc: "choose"},
			{Key: "ctrl+a", Desc: "apply"},
			{Key: "enter", Desc: "start"},
			{Key: "f1", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
		FooterChat: {
			{Key: "enter", Desc: "send"},
			{Key: "shift+enter", Desc: "newline"},
			{Key: "alt+1-5", Desc: "quick reply"},
			{Key: "ctrl+r", Desc: "voice"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "ctrl+c", Desc: "quit"},
		},
		FooterOverlay: {
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "close"},
		},
		FooterConfirm: {
			{Key: "←/→", Desc: "choose"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		},
	}
}

// SetMode updates the footer's context for conditional bindings
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// Mode returns the footer's current context
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the bindings of every mode
func (f *Footer) SetBindings(bindings map[FooterMode][]KeyBinding) {
	f.bindings = bindings
}

// SetAnnouncement sets the live region text. flash renders it as a success.
func (f *Footer) SetAnnouncement(text string, flash bool) {
	f.announcement = text
	f.flash = flash
}

// Announcement returns the live region text
func (f *Footer) Announcement() string {
	return f.announcement
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.bindings[f.mode] {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	style := LiveRegionStyle
	if f.flash {
		style = StatusSuccessStyle
	}
	live := style.Render(f.announcement)

	// Each line is cut to fit so the footer stays FooterHeight rows tall
	if inner := f.width - FooterStyle.GetHorizontalFrameSize(); f.width > 0 && inner > 0 {
		content = ansi.Truncate(content, inner, "…")
		live = ansi.Truncate(live, inner, "…")
	}
	return FooterStyle.Width(f.width).Render(content + "\n" + live)
}
