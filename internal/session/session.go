package session

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/zhubert/healthchat/internal/announce"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/overlay"
	"github.com/zhubert/healthchat/internal/prefs"
	"github.com/zhubert/healthchat/internal/schedule"
	"github.com/zhubert/healthchat/internal/storage"
	"github.com/zhubert/healthchat/internal/transcript"
)

// Screen is which top-level view is visible.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenChat
)

func (s Screen) String() string {
	if s == ScreenChat {
		return "chat"
	}
	return "welcome"
}

// State is a snapshot of the session-level state.
type State struct {
	ActiveLanguage locale.Language
	HasStartedChat bool
}

// Deps are the collaborators of an AppSession. Store, Scheduler and Focus
// are required; the rest have defaults.
type Deps struct {
	Store      storage.Store
	Catalog    *locale.Catalog
	Getenv     locale.Getenv
	Scheduler  schedule.Scheduler
	Clock      schedule.Clock
	IDs        transcript.IDGenerator
	Announcer  announce.Announcer
	Confirmer  Confirmer
	Focus      overlay.Focus
	Motion     prefs.Source
	ReplyDelay time.Duration
}

// AppSession owns language, flags, screen, overlay and transcript.
type AppSession struct {
	locale     *locale.Store
	flags      *Flags
	transcript *transcript.Transcript
	overlay    *overlay.Controller
	announcer  announce.Announcer
	confirmer  Confirmer

	started     bool
	voice       bool
	motion      atomic.Bool
	unsubscribe func()

	log *slog.Logger
}

// New resolves the initial language, reads the started flag and initializes
// the transcript.
func New(d Deps) *AppSession {
	if d.Catalog == nil {
		d.Catalog = locale.DefaultCatalog()
	}
	if d.Announcer == nil {
		d.Announcer = announce.Discard
	}

	s := &AppSession{
		locale:    locale.NewStore(d.Catalog, d.Store, d.Getenv),
		flags:     NewFlags(d.Store),
		announcer: d.Announcer,
		confirmer: d.Confirmer,
		log:       logger.ComponentLogger("Session"),
	}
	s.transcript = transcript.New(transcript.Options{
		Clock:      d.Clock,
		IDs:        d.IDs,
		Scheduler:  d.Scheduler,
		Announcer:  d.Announcer,
		ReplyDelay: d.ReplyDelay,
	})
	s.overlay = overlay.NewController(d.Focus, d.Scheduler)

	lang := s.locale.ResolveInitial()
	s.started = s.flags.HasStarted()
	s.transcript.Initialize(lang)

	if d.Motion != nil {
		s.motion.Store(d.Motion.Value())
		s.unsubscribe = d.Motion.Subscribe(func(v bool) { s.motion.Store(v) })
	}

	s.log.Info("Session ready", "lang", lang.Code, "started", s.started)
	return s
}

// Close releases the reduced-motion subscription.
func (s *AppSession) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// State returns the session-level state.
func (s *AppSession) State() State {
	return State{ActiveLanguage: s.locale.Current(), HasStartedChat: s.started}
}

// Screen is derived from the started flag.
func (s *AppSession) Screen() Screen {
	if s.started {
		return ScreenChat
	}
	return ScreenWelcome
}

// Language returns the active language.
func (s *AppSession) Language() locale.Language {
	return s.locale.Current()
}

// Strings returns the UI strings of the active language.
func (s *AppSession) Strings() locale.Strings {
	return s.locale.Strings()
}

// TimeFormatter returns the clock pattern of the active language.
func (s *AppSession) TimeFormatter() locale.TimeFormatter {
	return s.locale.TimeFormatter()
}

// Catalog returns the language catalog.
func (s *AppSession) Catalog() *locale.Catalog {
	return s.locale.Catalog()
}

// OnMetadata registers a sink for language metadata changes.
func (s *AppSession) OnMetadata(sink locale.MetadataSink) {
	s.locale.OnMetadata(sink)
}

// Conversation returns a snapshot of the transcript.
func (s *AppSession) Conversation() transcript.State {
	return s.transcript.State()
}

// ExportTranscript renders the conversation as plain text.
func (s *AppSession) ExportTranscript() string {
	return s.transcript.Export()
}

// ChangeLanguage applies lang, restarts the transcript in it, closes any
// overlay and announces the change. A persistence error is returned after
// the change has taken effect in memory.
func (s *AppSession) ChangeLanguage(lang locale.Language) error {
	err := s.locale.Apply(lang)
	s.transcript.Initialize(lang)
	s.overlay.Close()
	s.announce(announce.EventLanguageApplied, s.Strings().LanguageApplied)
	return err
}

// SelectLanguage announces a language highlighted on the welcome screen
// without applying it.
func (s *AppSession) SelectLanguage(lang locale.Language) {
	s.announce(announce.EventLanguageSelected, s.Strings().Selected(lang.NativeName))
}

// Start moves to the chat screen, applying lang first when given. The
// screen changes even if the flag cannot be persisted.
func (s *AppSession) Start(lang *locale.Language) error {
	var langErr error
	if lang != nil {
		langErr = s.ChangeLanguage(*lang)
	}
	s.started = true
	if err := s.flags.MarkStarted(); err != nil {
		return err
	}
	s.log.Info("Chat started", "lang", s.Language().Code)
	return langErr
}

// StartOver asks for confirmation and clears the conversation if granted.
// done, if not nil, receives the answer.
func (s *AppSession) StartOver(done func(bool)) {
	s.flags.ConfirmAndClear(s.Strings().ConfirmClear, s.confirmer, func() {
		s.transcript.Clear(s.Language())
	}, done)
}

// Send submits user text. Blank text is rejected and reported as false.
func (s *AppSession) Send(text string) bool {
	return s.transcript.Send(text)
}

// OpenOverlay opens kind, closing any other overlay.
func (s *AppSession) OpenOverlay(kind overlay.Kind) {
	s.overlay.Open(kind)
}

// CloseOverlay closes the open overlay.
func (s *AppSession) CloseOverlay() {
	s.overlay.Close()
}

// Overlay returns the open overlay.
func (s *AppSession) Overlay() overlay.Kind {
	return s.overlay.Active()
}

// HandleKey gives the overlay controller first refusal on a key.
func (s *AppSession) HandleKey(key string) bool {
	return s.overlay.HandleKey(key)
}

// ToggleVoice flips the voice-input state and returns the new value.
func (s *AppSession) ToggleVoice() bool {
	s.voice = !s.voice
	return s.voice
}

// VoiceActive reports whether voice input is on.
func (s *AppSession) VoiceActive() bool {
	return s.voice
}

// ReducedMotion returns the latest reduced-motion preference.
func (s *AppSession) ReducedMotion() bool {
	return s.motion.Load()
}

// Announce publishes a status message through the session's announcer.
func (s *AppSession) Announce(ev announce.Event, text string) {
	s.announce(ev, text)
}

func (s *AppSession) announce(ev announce.Event, text string) {
	s.announcer.Announce(announce.Announcement{Event: ev, Politeness: announce.Polite, Text: text})
}
