package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/healthchat/internal/announce"
	"github.com/zhubert/healthchat/internal/config"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/overlay"
	"github.com/zhubert/healthchat/internal/prefs"
	"github.com/zhubert/healthchat/internal/schedule"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/storage"
	"github.com/zhubert/healthchat/internal/transcript"
	"github.com/zhubert/healthchat/internal/ui"
)

// taskBuffer bounds how many fired timers may wait for the event loop.
const taskBuffer = 64

// announcementTTL is how long a live-region message stays in the footer.
const announcementTTL = 4 * time.Second

// Options are the collaborators and start-up choices of the app.
// Store is required; everything else has a default.
type Options struct {
	Store   storage.Store
	Catalog *locale.Catalog
	Getenv  locale.Getenv
	Motion  prefs.Source
	Clock   schedule.Clock
	IDs     transcript.IDGenerator

	// Scheduler runs deferred work. When nil the app creates a schedule.Loop
	// and drains it from the Bubble Tea event loop.
	Scheduler schedule.Scheduler

	// Language is a catalog code applied at start-up, like a selection on
	// the welcome screen. Empty keeps the resolved language.
	Language string

	Version string
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.Chat
	welcome *ui.Welcome
	modal   *ui.Modal

	session *session.AppSession
	loop    *schedule.Loop
	live    *announce.LiveRegion
	focus   *focusModel

	meta       locale.Metadata
	lastScreen session.Screen
	selected   string // code highlighted on the welcome screen
	shownLang  string

	shownConversation conversationKey
	relabeled         bool
	shownSeq          uint64

	motionCh    chan bool
	unsubscribe func()
	done        chan struct{}
	closed      bool

	pending       []tea.Cmd
	windowFocused bool
	width         int
	height        int

	log *slog.Logger
}

// New creates the app model. The initial screen follows the persisted
// started flag.
func New(cfg *config.Config, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       opts.Version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		chat:          ui.NewChat(),
		modal:         ui.NewModal(),
		live:          announce.NewLiveRegion(),
		motionCh:      make(chan bool, 1),
		done:          make(chan struct{}),
		windowFocused: true,
		log:           logger.ComponentLogger("App"),
	}
	m.focus = &focusModel{m: m}

	sched := opts.Scheduler
	if sched == nil {
		m.loop = schedule.NewLoop(taskBuffer)
		sched = m.loop
	}

	m.session = session.New(session.Deps{
		Store:      opts.Store,
		Catalog:    opts.Catalog,
		Getenv:     opts.Getenv,
		Scheduler:  sched,
		Clock:      opts.Clock,
		IDs:        opts.IDs,
		Announcer:  m.announcer(),
		Confirmer:  session.ConfirmFunc(m.confirm),
		Focus:      m.focus,
		Motion:     opts.Motion,
		ReplyDelay: cfg.GetReplyDelay(),
	})

	if opts.Motion != nil {
		m.unsubscribe = opts.Motion.Subscribe(m.motionChanged)
	}

	lang := m.session.Language()
	m.welcome = ui.NewWelcome(m.session.Catalog(), lang, m.session.Strings())
	m.selected = lang.Code
	m.session.OnMetadata(m.setMetadata)

	if opts.Language != "" {
		if l, ok := m.session.Catalog().Lookup(opts.Language); ok {
			if err := m.session.ChangeLanguage(l); err != nil {
				m.log.Warn("Failed to persist start-up language", "lang", l.Code, "error", err)
			}
		} else {
			m.log.Warn("Unknown start-up language", "lang", opts.Language)
		}
	}

	m.lastScreen = m.session.Screen()
	m.focus.Focus(m.homeTarget())
	m.sync()

	m.log.Info("App created", "screen", m.lastScreen, "lang", m.session.Language().Code)
	return m
}

// announcer fans announcements out to the footer's live region and, for
// new replies while the terminal is in the background, the desktop.
func (m *Model) announcer() announce.Announcer {
	desktop := announce.Desktop{
		Title:   func() string { return m.session.Strings().Title },
		Enabled: m.config.GetNotificationsEnabled(),
	}
	return announce.Multi{
		m.live,
		announce.Func(func(a announce.Announcement) {
			if !m.windowFocused {
				desktop.Announce(a)
			}
		}),
	}
}

// motionChanged is called from the preference watcher goroutine. Only the
// latest value matters, so a full channel is left alone.
func (m *Model) motionChanged(v bool) {
	select {
	case m.motionCh <- v:
	default:
	}
}

// setMetadata mirrors the active language's direction into the layout.
func (m *Model) setMetadata(md locale.Metadata) {
	m.meta = md
	rtl := md.Dir == locale.RTL
	m.header.SetRTL(rtl)
	m.chat.SetRTL(rtl)
	if m.welcome != nil {
		m.welcome.SetRTL(rtl)
	}
	m.log.Debug("Language metadata", "lang", md.Lang, "dir", md.Dir)
}

// Init starts the scheduler and preference listeners.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenForTasks(), m.listenForMotion()}
	cmds = append(cmds, m.takePending()...)
	return tea.Batch(cmds...)
}

// Close stops timers and listeners. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.loop != nil {
		m.loop.Stop()
	}
	m.session.Close()
	m.log.Info("App closed")
}

// Session exposes the session for the CLI and tests.
func (m *Model) Session() *session.AppSession {
	return m.session
}

// queue defers a command produced outside Update so the next Update or
// Init returns it.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) takePending() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// relabel pushes the active language's strings into every component.
func (m *Model) relabel() {
	lang := m.session.Language()
	s := m.session.Strings()

	m.header.SetTitle(s.Title)
	m.header.SetLanguage(lang.NativeName)
	m.header.SetMenu(m.menuItems(s))
	m.footer.SetBindings(footerBindings(s))
	m.chat.SetStrings(s, m.session.TimeFormatter())
	m.welcome.SetLanguage(lang, s)
	m.selected = lang.Code
	m.relabeled = true
}

// homeTarget is where focus rests when no overlay is open.
func (m *Model) homeTarget() overlay.Target {
	if m.session.Screen() == session.ScreenChat {
		return TargetInput
	}
	return TargetSearch
}
