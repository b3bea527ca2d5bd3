package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.chat.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.welcome.SetSize(ctx.ContentWidth, ctx.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.WindowTitle = m.windowTitle()

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// windowTitle carries the localized title and the active language tag.
func (m *Model) windowTitle() string {
	return fmt.Sprintf("%s (%s)", m.session.Strings().Title, m.meta.Lang)
}

func (m *Model) render() string {
	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	body := m.chat.View()
	if m.session.Screen() == session.ScreenWelcome {
		body = m.welcome.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}
