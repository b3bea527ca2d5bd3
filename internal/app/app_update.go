package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/overlay"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/ui"
	"github.com/zhubert/healthchat/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("Window focused")

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("Window blurred")

	case TaskMsg:
		if msg.Run != nil {
			msg.Run()
		}
		cmds = append(cmds, m.listenForTasks())

	case ReducedMotionMsg:
		m.log.Debug("Reduced motion changed", "on", msg.On)
		cmds = append(cmds, m.listenForMotion())

	case AnnouncementExpiredMsg:
		if msg.Seq == m.live.Seq() {
			m.live.Clear()
		}

	case ui.TypingTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)

	case tea.KeyPressMsg:
		_, cmd := m.handleKeyPress(msg)
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.routeToFocused(msg))
	}

	m.sync()
	cmds = append(cmds, m.takePending()...)
	return m, tea.Batch(cmds...)
}

// routeToFocused forwards messages such as cursor blinks to whichever
// component is showing.
func (m *Model) routeToFocused(msg tea.Msg) tea.Cmd {
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return cmd
	}
	if m.session.Screen() == session.ScreenWelcome {
		welcome, cmd := m.welcome.Update(msg)
		m.welcome = welcome
		return cmd
	}
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return cmd
}

// handleKeyPress handles every key press.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("KeyPressMsg received", "key", key, "screen", m.session.Screen(),
		"overlay", m.session.Overlay(), "focus", m.focus.Focused())

	// ctrl+c always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// A pending confirmation captures every other key
	if state, ok := m.modal.State.(*modals.ConfirmState); ok {
		return m.handleConfirmKey(state, msg)
	}

	// The overlay controller gets first refusal (Escape closes)
	if m.session.HandleKey(key) {
		return m, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.session.Screen() == session.ScreenWelcome {
		return m.handleWelcomeKey(msg)
	}
	return m.handleChatKey(msg)
}

// handleModalKey handles keys for the language and help overlays
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if state, ok := m.modal.State.(*modals.LanguageState); ok && msg.String() == keys.Enter {
		if lang, ok := state.Selected(); ok {
			m.applyLanguage(lang.Code)
		}
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleWelcomeKey handles keys on the welcome screen
func (m *Model) handleWelcomeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		var sel *locale.Language
		if lang, ok := m.welcome.Selected(); ok {
			sel = &lang
		}
		if err := m.session.Start(sel); err != nil {
			m.log.Warn("Start not persisted", "error", err)
		}
		return m, nil

	case keys.CtrlA:
		if lang, ok := m.welcome.Selected(); ok {
			m.applyLanguage(lang.Code)
		}
		return m, nil
	}

	welcome, cmd := m.welcome.Update(msg)
	m.welcome = welcome

	if lang, ok := m.welcome.Selected(); ok && lang.Code != m.selected {
		m.selected = lang.Code
		m.session.SelectLanguage(lang)
	}
	return m, cmd
}

// handleChatKey handles keys on the chat screen
func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.Enter && m.chat.IsFocused() {
		if m.session.Send(m.chat.GetInput()) {
			m.chat.ClearInput()
		}
		return m, nil
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return m, cmd
}

// applyLanguage applies code through the session, which also closes any
// overlay and announces the change.
func (m *Model) applyLanguage(code string) {
	lang, ok := m.session.Catalog().Lookup(code)
	if !ok {
		return
	}
	if err := m.session.ChangeLanguage(lang); err != nil {
		m.log.Warn("Language applied but not persisted", "lang", code, "error", err)
	}
}

// confirm is the session's confirmation boundary: it shows the prompt in a
// modal and answers once the user chooses.
func (m *Model) confirm(prompt string, reply func(bool)) {
	m.session.CloseOverlay()
	m.modal.Show(modals.NewConfirmState(prompt, m.session.Strings(), reply))
	m.log.Debug("Confirmation requested", "prompt", prompt)
}

// handleConfirmKey answers on Enter (focused button), y/n, or Escape (no).
func (m *Model) handleConfirmKey(state *modals.ConfirmState, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		m.answerConfirm(state, state.Confirmed())
		return m, nil
	case keys.Escape:
		m.answerConfirm(state, false)
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	if state.Answered() {
		m.answerConfirm(state, state.Confirmed())
	}
	return m, cmd
}

func (m *Model) answerConfirm(state *modals.ConfirmState, ok bool) {
	m.modal.Hide()
	if state.Reply != nil {
		state.Reply(ok)
	}
}

// sync brings the components in line with the session after any change.
func (m *Model) sync() {
	if code := m.session.Language().Code; code != m.shownLang {
		m.shownLang = code
		m.relabel()
	}

	if screen := m.session.Screen(); screen != m.lastScreen {
		m.log.Info("Screen changed", "from", m.lastScreen, "to", screen)
		m.lastScreen = screen
		if m.session.Overlay() == overlay.None {
			m.focus.Focus(m.homeTarget())
		}
	}

	m.syncModal()

	m.chat.SetReducedMotion(m.session.ReducedMotion())
	m.chat.SetVoice(m.session.VoiceActive())
	m.syncConversation()
	m.syncAnnouncement()
	m.footer.SetMode(m.footerMode())
}

// syncModal shows the modal matching the open overlay. A confirmation is
// not an overlay and is left alone.
func (m *Model) syncModal() {
	if _, confirming := m.modal.State.(*modals.ConfirmState); confirming {
		return
	}

	switch m.session.Overlay() {
	case overlay.None:
		if m.modal.IsVisible() {
			m.modal.Hide()
		}
	case overlay.Language:
		if _, ok := m.modal.State.(*modals.LanguageState); !ok {
			m.modal.Show(modals.NewLanguageState(m.session.Catalog(), m.session.Language(), m.session.Strings()))
		}
	case overlay.Help:
		if _, ok := m.modal.State.(*modals.HelpState); !ok {
			s := m.session.Strings()
			m.modal.Show(modals.NewHelpState(s, helpShortcuts(s)))
		}
	}
}

// conversationKey identifies a rendered transcript snapshot
type conversationKey struct {
	count  int
	lastID string
	typing bool
}

// syncConversation re-renders the chat only when the transcript changed, so
// scrolling back is not undone by unrelated updates.
func (m *Model) syncConversation() {
	state := m.session.Conversation()
	key := conversationKey{count: len(state.Messages), typing: state.IsAssistantTyping}
	if n := len(state.Messages); n > 0 {
		key.lastID = state.Messages[n-1].ID
	}
	if key == m.shownConversation && !m.relabeled {
		return
	}
	m.shownConversation = key
	m.relabeled = false
	m.queue(m.chat.SetConversation(state))
}

// syncAnnouncement copies a new live-region message into the footer and
// arms its expiry.
func (m *Model) syncAnnouncement() {
	seq := m.live.Seq()
	if seq == m.shownSeq {
		return
	}
	m.shownSeq = seq
	a, ok := m.live.Current()
	if !ok {
		m.footer.SetAnnouncement("", false)
		return
	}
	m.footer.SetAnnouncement(a.Text, isFlash(a))
	m.queue(expireAnnouncement(seq))
}

func (m *Model) footerMode() ui.FooterMode {
	switch {
	case m.modal.State == nil:
	case isConfirm(m.modal.State):
		return ui.FooterConfirm
	default:
		return ui.FooterOverlay
	}
	if m.session.Screen() == session.ScreenChat {
		return ui.FooterChat
	}
	return ui.FooterWelcome
}

func isConfirm(state ui.ModalState) bool {
	_, ok := state.(*modals.ConfirmState)
	return ok
}
