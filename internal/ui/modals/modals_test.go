package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/healthchat/internal/locale"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func typeText(p *LanguagePicker, s string) {
	for _, r := range s {
		p.Update(press(r))
	}
}

func english(t *testing.T) locale.Language {
	t.Helper()
	l, ok := locale.DefaultCatalog().Lookup("en")
	if !ok {
		t.Fatal("english missing from catalog")
	}
	return l
}

func TestLanguagePicker_CommonSection(t *testing.T) {
	catalog := locale.DefaultCatalog()
	p := NewLanguagePicker(catalog, english(t), locale.StringsFor("en"), true)

	want := len(catalog.Common()) + catalog.Len()
	if p.Len() != want {
		t.Errorf("Len() = %d, want %d", p.Len(), want)
	}

	view := ansi.Strip(p.View())
	if !strings.Contains(view, "Common languages") {
		t.Error("view should contain the common section header")
	}
}

func TestLanguagePicker_FlatList(t *testing.T) {
	catalog := locale.DefaultCatalog()
	p := NewLanguagePicker(catalog, english(t), locale.StringsFor("en"), false)

	if p.Len() != catalog.Len() {
		t.Errorf("Len() = %d, want %d", p.Len(), catalog.Len())
	}
}

func TestLanguagePicker_Filter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"span", []string{"es"}},
		{"ESP", []string{"es"}},
		{"中", []string{"zh"}},
		{"klingon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := NewLanguagePicker(locale.DefaultCatalog(), english(t), locale.StringsFor("en"), true)
			p.SetQuery(tt.query)

			if p.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", p.Len(), len(tt.want))
			}
			sel, ok := p.Selected()
			if len(tt.want) == 0 {
				if ok {
					t.Errorf("Selected() = %q, want none", sel.Code)
				}
				if !strings.Contains(p.View(), "—") {
					t.Error("empty result should render a placeholder")
				}
				return
			}
			if sel.Code != tt.want[0] {
				t.Errorf("Selected() = %q, want %q", sel.Code, tt.want[0])
			}
		})
	}
}

func TestLanguagePicker_TypingResetsCursor(t *testing.T) {
	catalog := locale.DefaultCatalog()
	fr, _ := catalog.Lookup("fr")
	p := NewLanguagePicker(catalog, fr, locale.StringsFor("fr"), false)

	if sel, _ := p.Selected(); sel.Code != "fr" {
		t.Fatalf("cursor should start on the active language, got %q", sel.Code)
	}

	typeText(p, "r")
	if p.cursor != 0 {
		t.Errorf("cursor = %d after typing, want 0", p.cursor)
	}
}

func TestLanguagePicker_CursorBounds(t *testing.T) {
	catalog := locale.DefaultCatalog()
	p := NewLanguagePicker(catalog, english(t), locale.StringsFor("en"), false)

	p.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if p.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", p.cursor)
	}

	for i := 0; i < catalog.Len()+3; i++ {
		p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if p.cursor != catalog.Len()-1 {
		t.Errorf("cursor = %d, want %d at bottom", p.cursor, catalog.Len()-1)
	}
	if p.Query() != "" {
		t.Errorf("arrow keys should not reach the search input, got %q", p.Query())
	}
}

func TestLanguagePicker_MarksActive(t *testing.T) {
	catalog := locale.DefaultCatalog()
	ar, _ := catalog.Lookup("ar")
	p := NewLanguagePicker(catalog, ar, locale.StringsFor("ar"), false)

	view := ansi.Strip(p.View())
	if !strings.Contains(view, "العربية (Arabic) ✓") {
		t.Errorf("active language should be marked, got %q", view)
	}
}

func TestLanguageState(t *testing.T) {
	s := NewLanguageState(locale.DefaultCatalog(), english(t), locale.StringsFor("es"))

	if s.Title() != "Idioma" {
		t.Errorf("Title() = %q, want Idioma", s.Title())
	}

	state, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel, ok := state.(*LanguageState).Selected()
	if !ok || sel.Code != "es" {
		t.Errorf("Selected() = %q, want es", sel.Code)
	}
}

func TestHelpState_CyclesTopics(t *testing.T) {
	strs := locale.StringsFor("en")
	s := NewHelpState(strs, []HelpShortcut{{Key: "ctrl+l", Desc: "Language"}})

	if s.Topic() != strs.About {
		t.Fatalf("first topic = %q, want %q", s.Topic(), strs.About)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Topic() != strs.Privacy {
		t.Errorf("topic = %q, want %q", s.Topic(), strs.Privacy)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Topic() != strs.EmergencyInfo {
		t.Errorf("topic should wrap to %q, got %q", strs.EmergencyInfo, s.Topic())
	}

	view := ansi.Strip(s.Render())
	if !strings.Contains(view, "ctrl+l") {
		t.Error("shortcuts should be listed")
	}
	if s.PreferredWidth() != ModalWidthWide {
		t.Errorf("PreferredWidth() = %d", s.PreferredWidth())
	}
}

func TestHelpTopics(t *testing.T) {
	topics := HelpTopics(locale.StringsFor("en"))
	if len(topics) != 4 {
		t.Fatalf("len = %d, want 4", len(topics))
	}
	for _, topic := range topics {
		if topic.Title == "" || topic.Body == "" {
			t.Errorf("topic %+v should have a title and a body", topic)
		}
	}
}

func TestConfirmState(t *testing.T) {
	strs := locale.StringsFor("en")

	tests := []struct {
		name     string
		key      tea.KeyPressMsg
		answered bool
		value    bool
	}{
		{"y answers yes", press('y'), true, true},
		{"n answers no", press('n'), true, false},
		{"enter is left to the app", tea.KeyPressMsg{Code: tea.KeyEnter}, false, false},
		{"escape is left to the app", tea.KeyPressMsg{Code: tea.KeyEscape}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewConfirmState(strs.ConfirmClear, strs, nil)
			s.Update(tt.key)
			if s.Answered() != tt.answered {
				t.Errorf("Answered() = %v, want %v", s.Answered(), tt.answered)
			}
			if s.Confirmed() != tt.value {
				t.Errorf("Confirmed() = %v, want %v", s.Confirmed(), tt.value)
			}
		})
	}
}

func TestConfirmState_Render(t *testing.T) {
	strs := locale.StringsFor("fr")
	s := NewConfirmState(strs.ConfirmClear, strs, nil)

	view := ansi.Strip(s.Render())
	if !strings.Contains(view, strs.StartOver) {
		t.Errorf("title should be %q, got %q", strs.StartOver, view)
	}
	if !strings.Contains(view, strs.Yes) || !strings.Contains(view, strs.No) {
		t.Error("buttons should be localized")
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"English (English)", 40, "English (English)"},
		{"English (English)", 8, "English…"},
		{"中文 (Chinese)", 5, "中文…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateLabel(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateLabel(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, cursor, size int
		start, end      int
	}{
		{5, 0, 8, 0, 5},
		{16, 0, 8, 0, 8},
		{16, 10, 8, 6, 14},
		{16, 15, 8, 8, 16},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.cursor, tt.size)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d) = %d,%d; want %d,%d", tt.n, tt.cursor, tt.size, start, end, tt.start, tt.end)
		}
	}
}
