package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/healthchat/internal/announce"
	"github.com/zhubert/healthchat/internal/clipboard"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/overlay"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/ui"
	"github.com/zhubert/healthchat/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for global shortcuts: the help modal,
// the header menu and the footer are all built from it.
type Shortcut struct {
	Key          string                              // The key binding (e.g., "ctrl+l")
	Aliases      []string                            // Other keys that trigger the same handler
	Description  func(s locale.Strings) string       // Localized description
	InMenu       bool                                // Listed in the header menu
	RequiresChat bool                                // Only on the chat screen
	Handler      func(m *Model) (tea.Model, tea.Cmd) // Action to perform
}

// ShortcutRegistry is the central registry of global keyboard shortcuts.
var ShortcutRegistry = []Shortcut{
	{
		Key:          keys.CtrlN,
		Description:  func(s locale.Strings) string { return s.StartOver },
		InMenu:       true,
		RequiresChat: true,
		Handler:      shortcutStartOver,
	},
	{
		Key:         keys.CtrlL,
		Description: func(s locale.Strings) string { return s.Language },
		InMenu:      true,
		Handler:     shortcutLanguage,
	},
	{
		Key:         keys.F1,
		Aliases:     []string{keys.CtrlG},
		Description: func(s locale.Strings) string { return s.Help },
		InMenu:      true,
		Handler:     shortcutHelp,
	},
	{
		Key:          keys.CtrlR,
		Description:  func(s locale.Strings) string { return s.VoiceStart },
		RequiresChat: true,
		Handler:      shortcutVoice,
	},
	{
		Key:          keys.CtrlY,
		Description:  func(s locale.Strings) string { return s.CopyTranscript },
		RequiresChat: true,
		Handler:      shortcutCopy,
	},
}

func (s Shortcut) matches(key string) bool {
	if s.Key == key {
		return true
	}
	for _, alias := range s.Aliases {
		if alias == key {
			return true
		}
	}
	return false
}

// ExecuteShortcut runs the shortcut bound to key. The bool reports whether
// one ran; a guard that fails lets the key fall through.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if i := quickReplyIndex(key); i >= 0 {
		if m.session.Screen() != session.ScreenChat || m.modal.IsVisible() {
			return m, nil, false
		}
		result, cmd := m.sendQuickReply(i)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if !s.matches(key) {
			continue
		}
		if s.RequiresChat && m.session.Screen() != session.ScreenChat {
			m.log.Debug("Shortcut guard failed", "key", key, "reason", "not on chat screen")
			return m, nil, false
		}
		if s.RequiresChat && m.modal.IsVisible() {
			m.log.Debug("Shortcut guard failed", "key", key, "reason", "overlay open")
			return m, nil, false
		}
		m.log.Debug("Executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func quickReplyIndex(key string) int {
	for i, k := range keys.QuickReply {
		if k == key {
			return i
		}
	}
	return -1
}

// menuItems lists the header menu in registry order
func (m *Model) menuItems(s locale.Strings) []ui.MenuItem {
	var items []ui.MenuItem
	for _, sc := range ShortcutRegistry {
		if sc.InMenu {
			items = append(items, ui.MenuItem{Key: sc.Key, Label: sc.Description(s)})
		}
	}
	return items
}

// helpShortcuts lists every shortcut shown in the help modal
func helpShortcuts(s locale.Strings) []modals.HelpShortcut {
	out := []modals.HelpShortcut{
		{Key: keys.Enter, Desc: s.Send},
		{Key: keys.ShiftEnter, Desc: "↵"},
		{Key: "alt+1…5", Desc: s.Options},
	}
	for _, sc := range ShortcutRegistry {
		key := sc.Key
		for _, alias := range sc.Aliases {
			key += " / " + alias
		}
		out = append(out, modals.HelpShortcut{Key: key, Desc: sc.Description(s)})
	}
	return append(out,
		modals.HelpShortcut{Key: keys.Escape, Desc: s.Close},
		modals.HelpShortcut{Key: keys.CtrlC, Desc: s.Quit},
	)
}

// footerBindings localizes the footer for every mode
func footerBindings(s locale.Strings) map[ui.FooterMode][]ui.KeyBinding {
	return map[ui.FooterMode][]ui.KeyBinding{
		ui.FooterWelcome: {
			{Key: "↑/↓", Desc: s.SearchLang},
			{Key: keys.CtrlA, Desc: s.Apply},
			{Key: keys.Enter, Desc: s.Start},
			{Key: keys.F1, Desc: s.Help},
			{Key: keys.CtrlC, Desc: s.Quit},
		},
		ui.FooterChat: {
			{Key: keys.Enter, Desc: s.Send},
			{Key: "alt+1-5", Desc: s.Options},
			{Key: keys.CtrlR, Desc: s.VoiceStart},
			{Key: keys.CtrlY, Desc: s.CopyTranscript},
			{Key: keys.F1, Desc: s.Help},
			{Key: keys.CtrlC, Desc: s.Quit},
		},
		ui.FooterOverlay: {
			{Key: "↑/↓", Desc: s.SearchLang},
			{Key: keys.Enter, Desc: s.Apply},
			{Key: keys.Escape, Desc: s.Close},
		},
		ui.FooterConfirm: {
			{Key: "y", Desc: s.Yes},
			{Key: "n", Desc: s.No},
			{Key: keys.Escape, Desc: s.Close},
		},
	}
}

func shortcutStartOver(m *Model) (tea.Model, tea.Cmd) {
	m.session.CloseOverlay()
	m.session.StartOver(func(confirmed bool) {
		m.log.Info("Start over answered", "confirmed", confirmed)
	})
	return m, nil
}

func shortcutLanguage(m *Model) (tea.Model, tea.Cmd) {
	if m.session.Overlay() == overlay.Language {
		m.session.CloseOverlay()
		return m, nil
	}
	m.session.OpenOverlay(overlay.Language)
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	if m.session.Overlay() == overlay.Help {
		m.session.CloseOverlay()
		return m, nil
	}
	m.session.OpenOverlay(overlay.Help)
	return m, nil
}

func shortcutVoice(m *Model) (tea.Model, tea.Cmd) {
	on := m.session.ToggleVoice()
	m.chat.SetVoice(on)
	m.log.Debug("Voice input toggled", "on", on)
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteText(m.session.ExportTranscript()); err != nil {
		m.log.Warn("Failed to copy conversation", "error", err)
		m.live.Announce(announce.Announcement{
			Event:      announce.EventCopied,
			Politeness: announce.Assertive,
			Text:       err.Error(),
		})
		return m, nil
	}
	m.session.Announce(announce.EventCopied, m.session.Strings().Copied)
	return m, nil
}

// sendQuickReply submits the i-th quick-reply label as a user message
func (m *Model) sendQuickReply(i int) (tea.Model, tea.Cmd) {
	replies := m.session.Strings().QuickReplies()
	if i >= len(replies) {
		return m, nil
	}
	m.session.Send(replies[i])
	return m, nil
}
