package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/locale"
)

// =============================================================================
// ConfirmState - State for the yes/no confirmation modal
// =============================================================================

// ConfirmState asks a localized yes/no question. Enter submits the focused
// button; y and n answer directly. The app delivers the answer to Reply.
type ConfirmState struct {
	Prompt string
	Reply  func(bool)

	form      *huh.Form
	confirmed bool
	answered  bool
	strings   locale.Strings
}

func (*ConfirmState) modalState() {}

func (s *ConfirmState) Title() string { return s.strings.StartOver }

func (s *ConfirmState) Help() string {
	return "←/→  Enter  Esc: " + s.strings.No
}

func (s *ConfirmState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ConfirmState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			s.confirmed, s.answered = true, true
			return s, nil
		case "n", "N":
			s.confirmed, s.answered = false, true
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Confirmed returns the value of the focused button.
func (s *ConfirmState) Confirmed() bool {
	return s.confirmed
}

// Answered reports whether y or n was pressed.
func (s *ConfirmState) Answered() bool {
	return s.answered
}

// NewConfirmState creates a confirmation modal defaulting to No.
func NewConfirmState(prompt string, s locale.Strings, reply func(bool)) *ConfirmState {
	state := &ConfirmState{Prompt: prompt, Reply: reply, strings: s}
	state.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative(s.Yes).
			Negative(s.No).
			Value(&state.confirmed),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(state.form)
	return state
}
