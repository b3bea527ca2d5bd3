package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
)

// =============================================================================
// HelpState - State for the Help & Info modal
// =============================================================================

// HelpState shows the about, privacy, sources and emergency pages, followed
// by the keyboard shortcuts.
type HelpState struct {
	topics    []HelpTopic
	shortcuts []HelpShortcut
	selected  int
	strings   locale.Strings
}

func (*HelpState) modalState() {}

func (s *HelpState) PreferredWidth() int { return ModalWidthWide }

func (s *HelpState) Title() string { return s.strings.Help }

func (s *HelpState) Help() string {
	return fmt.Sprintf("←/→  Esc: %s", s.strings.Close)
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var tabs []string
	for i, t := range s.topics {
		style := ListItemStyle
		if i == s.selected {
			style = ListSelectedStyle
		}
		tabs = append(tabs, style.Render(t.Title))
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	bodyWidth := ModalWidthWide - 6
	body := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(bodyWidth).
		MarginTop(1).
		Render(s.topics[s.selected].Body)

	var shortcuts strings.Builder
	for _, sc := range s.shortcuts {
		key := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(14).Render(sc.Key)
		desc := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(sc.Desc)
		shortcuts.WriteString(key + desc + "\n")
	}
	shortcutBlock := lipgloss.NewStyle().MarginTop(1).Render(strings.TrimRight(shortcuts.String(), "\n"))

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, body, shortcutBlock, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Left, keys.Up, keys.ShiftTab:
		s.selected = (s.selected - 1 + len(s.topics)) % len(s.topics)
	case keys.Right, keys.Down, keys.Tab:
		s.selected = (s.selected + 1) % len(s.topics)
	}
	return s, nil
}

// Topic returns the title of the visible page.
func (s *HelpState) Topic() string {
	return s.topics[s.selected].Title
}

// HelpTopics returns the help pages in display order.
func HelpTopics(s locale.Strings) []HelpTopic {
	return []HelpTopic{
		{Title: s.About, Body: s.NotDiagnosis},
		{Title: s.Privacy, Body: s.PrivacyBody},
		{Title: s.Sources, Body: s.SourcesBody},
		{Title: s.EmergencyInfo, Body: s.Emergency},
	}
}

// NewHelpState creates the help modal
func NewHelpState(s locale.Strings, shortcuts []HelpShortcut) *HelpState {
	return &HelpState{
		topics:    HelpTopics(s),
		shortcuts: shortcuts,
		strings:   s,
	}
}
