package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/locale"
)

// =============================================================================
// LanguageState - State for the language modal
// =============================================================================

// LanguageState lets the user search for and apply a language while chatting.
type LanguageState struct {
	Picker  *LanguagePicker
	strings locale.Strings
}

func (*LanguageState) modalState() {}

func (s *LanguageState) Title() string { return s.strings.Language }

func (s *LanguageState) Help() string {
	return fmt.Sprintf("↑/↓  Enter: %s  Esc: %s", s.strings.Apply, s.strings.Close)
}

func (s *LanguageState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.Picker.View(), help)
}

func (s *LanguageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, s.Picker.Update(msg)
}

// Selected returns the highlighted language.
func (s *LanguageState) Selected() (locale.Language, bool) {
	return s.Picker.Selected()
}

// NewLanguageState creates the language modal with the cursor on active.
func NewLanguageState(catalog *locale.Catalog, active locale.Language, s locale.Strings) *LanguageState {
	p := NewLanguagePicker(catalog, active, s, false)
	p.SetWidth(ModalWidth - 6)
	return &LanguageState{Picker: p, strings: s}
}
