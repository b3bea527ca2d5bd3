package app

import (
	"github.com/zhubert/healthchat/internal/overlay"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/ui/modals"
)

// Focus targets outside overlays
const (
	TargetInput  overlay.Target = "input"  // chat message input
	TargetSearch overlay.Target = "search" // welcome screen language search
)

// focusModel is the app's focus model. It tracks a single focused target
// and moves keyboard focus between the components that own them.
type focusModel struct {
	current overlay.Target
	m       *Model
}

func (f *focusModel) Focused() overlay.Target {
	return f.current
}

func (f *focusModel) Focus(t overlay.Target) {
	f.current = t
	f.m.applyFocus(t)
}

// Exists reports whether t is currently rendered.
func (f *focusModel) Exists(t overlay.Target) bool {
	switch t {
	case TargetInput:
		return f.m.session.Screen() == session.ScreenChat
	case TargetSearch:
		return f.m.session.Screen() == session.ScreenWelcome
	case overlay.ContainerTarget(overlay.Language):
		return f.m.session.Overlay() == overlay.Language
	case overlay.ContainerTarget(overlay.Help):
		return f.m.session.Overlay() == overlay.Help
	}
	return false
}

// applyFocus focuses the component owning t and blurs the others.
func (m *Model) applyFocus(t overlay.Target) {
	m.queue(m.chat.SetFocused(t == TargetInput))
	if t == TargetSearch {
		m.queue(m.welcome.Focus())
	} else {
		m.welcome.Blur()
	}
	if t == overlay.ContainerTarget(overlay.Language) {
		if state, ok := m.modal.State.(*modals.LanguageState); ok {
			m.queue(state.Picker.Focus())
		}
	}
	m.log.Debug("Focus moved", "target", t)
}
