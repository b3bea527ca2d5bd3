package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	for _, mode := range []FooterMode{FooterWelcome, FooterChat, FooterOverlay, FooterConfirm} {
		if len(footer.bindings[mode]) == 0 {
			t.Errorf("mode %d should have default bindings", mode)
		}
	}
	if footer.Mode() != FooterWelcome {
		t.Errorf("initial mode = %d, want FooterWelcome", footer.Mode())
	}
}

func TestFooter_ModeBindings(t *testing.T) {
	tests := []struct {
		mode    FooterMode
		want    string
		notWant string
	}{
		{FooterWelcome, "apply", "quick reply"},
		{FooterChat, "quick reply", "apply"},
		{FooterOverlay, "close", "send"},
		{FooterConfirm, "confirm", "send"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(200)
		footer.SetMode(tt.mode)

		view := ansi.Strip(footer.View())
		if !strings.Contains(view, tt.want) {
			t.Errorf("mode %d: footer should contain %q, got %q", tt.mode, tt.want, view)
		}
		if strings.Contains(view, tt.notWant) {
			t.Errorf("mode %d: footer should not contain %q", tt.mode, tt.notWant)
		}
	}
}

func TestFooter_LiveRegion(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetAnnouncement("Español selected", false)
	footer.SetAnnouncement("New message received", false)

	view := ansi.Strip(footer.View())
	if !strings.Contains(view, "New message received") {
		t.Errorf("live region should show the latest announcement, got %q", view)
	}
	if strings.Contains(view, "Español selected") {
		t.Error("live region should keep only the latest announcement")
	}
	if footer.Announcement() != "New message received" {
		t.Errorf("Announcement() = %q", footer.Announcement())
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)
	footer.SetBindings(map[FooterMode][]KeyBinding{FooterWelcome: {{Key: "x", Desc: "custom"}}})

	view := ansi.Strip(footer.View())
	if !strings.Contains(view, "x: custom") {
		t.Errorf("custom bindings should render, got %q", view)
	}
}

func TestFooter_FitsHeightWhenNarrow(t *testing.T) {
	for _, width := range []int{40, 80, 100} {
		for _, mode := range []FooterMode{FooterWelcome, FooterChat, FooterOverlay, FooterConfirm} {
			footer := NewFooter()
			footer.SetWidth(width)
			footer.SetMode(mode)
			footer.SetAnnouncement(strings.Repeat("New message received ", 10), false)

			view := footer.View()
			if got := len(strings.Split(view, "\n")); got != FooterHeight {
				t.Errorf("width %d mode %d: footer is %d lines, want %d", width, mode, got, FooterHeight)
			}
			for _, line := range strings.Split(view, "\n") {
				if w := ansi.StringWidth(line); w > width {
					t.Errorf("width %d mode %d: line is %d wide", width, mode, w)
				}
			}
		}
	}
}
