package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/ui/modals"
)

// Welcome is the first screen: a language picker with the common languages
// first, an emergency banner, and start/apply actions.
type Welcome struct {
	picker  *modals.LanguagePicker
	strings locale.Strings
	width   int
	height  int
	rtl     bool
}

// NewWelcome creates the welcome screen with the cursor on active
func NewWelcome(catalog *locale.Catalog, active locale.Language, s locale.Strings) *Welcome {
	return &Welcome{
		picker:  modals.NewLanguagePicker(catalog, active, s, true),
		strings: s,
	}
}

// SetSize sets the screen dimensions
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.picker.SetWidth(min(width-BorderSize-4, ModalWidth))
}

// SetLanguage relabels the screen after a language is applied
func (w *Welcome) SetLanguage(active locale.Language, s locale.Strings) {
	w.strings = s
	w.picker.SetActive(active.Code)
	w.picker.SetStrings(s)
}

// SetRTL mirrors the screen layout
func (w *Welcome) SetRTL(rtl bool) {
	w.rtl = rtl
}

// Selected returns the highlighted language
func (w *Welcome) Selected() (locale.Language, bool) {
	return w.picker.Selected()
}

// Picker exposes the language picker
func (w *Welcome) Picker() *modals.LanguagePicker {
	return w.picker
}

// Focus focuses the search input
func (w *Welcome) Focus() tea.Cmd {
	return w.picker.Focus()
}

// Blur blurs the search input
func (w *Welcome) Blur() {
	w.picker.Blur()
}

// Update sends the message to the picker
func (w *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	return w, w.picker.Update(msg)
}

// View renders the welcome screen
func (w *Welcome) View() string {
	align := lipgloss.Left
	if w.rtl {
		align = lipgloss.Right
	}
	inner := max(w.width-BorderSize-2, 10)

	title := PanelTitleStyle.Width(inner).Align(align).Render(w.strings.WelcomeTitle)
	banner := BannerStyle.Width(inner).Render(w.strings.Emergency)

	actions := FooterKeyStyle.Render(keys.Enter) + FooterDescStyle.Render(" "+w.strings.Start) +
		"   " + FooterKeyStyle.Render(keys.CtrlA) + FooterDescStyle.Render(" "+w.strings.Apply)
	actions = lipgloss.NewStyle().Width(inner).Align(align).Render(actions)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		banner,
		"",
		w.picker.View(),
		"",
		actions,
	)

	return PanelFocusedStyle.
		Width(w.width).
		Height(w.height).
		Padding(0, 1).
		Render(body)
}
