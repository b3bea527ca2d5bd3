package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/healthchat/internal/announce"
)

// TaskMsg carries a fired scheduler task onto the event loop
type TaskMsg struct {
	Run func()
}

// ReducedMotionMsg reports a change of the reduced-motion preference
type ReducedMotionMsg struct {
	On bool
}

// AnnouncementExpiredMsg clears the footer's live region if nothing newer
// has been announced since Seq.
type AnnouncementExpiredMsg struct {
	Seq uint64
}

// listenForTasks creates a command that waits for the next fired timer.
// Update runs the task and listens again, so every task runs on the event
// loop and never on a timer goroutine.
func (m *Model) listenForTasks() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	tasks, done := m.loop.Tasks(), m.loop.Done()
	return func() tea.Msg {
		select {
		case task := <-tasks:
			return TaskMsg{Run: task}
		case <-done:
			return nil
		}
	}
}

// listenForMotion creates a command that waits for the next reduced-motion
// change from the preference watcher.
func (m *Model) listenForMotion() tea.Cmd {
	if m.unsubscribe == nil {
		return nil
	}
	ch, done := m.motionCh, m.done
	return func() tea.Msg {
		select {
		case v := <-ch:
			return ReducedMotionMsg{On: v}
		case <-done:
			return nil
		}
	}
}

func expireAnnouncement(seq uint64) tea.Cmd {
	return tea.Tick(announcementTTL, func(time.Time) tea.Msg {
		return AnnouncementExpiredMsg{Seq: seq}
	})
}

// isFlash reports whether an announcement confirms a user action and is
// rendered as a success.
func isFlash(a announce.Announcement) bool {
	if a.Politeness != announce.Polite {
		return false
	}
	switch a.Event {
	case announce.EventCopied, announce.EventLanguageApplied:
		return true
	}
	return false
}
