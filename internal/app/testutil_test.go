package app

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/healthchat/internal/config"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/prefs"
	"github.com/zhubert/healthchat/internal/schedule"
	"github.com/zhubert/healthchat/internal/storage"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// fixedNow is the clock of every test model.
var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// testHarness bundles a model with the fakes behind it.
type testHarness struct {
	m      *Model
	kv     storage.Store
	sched  *schedule.Manual
	motion *prefs.Signal
}

type harnessOption func(*Options, storage.Store, *config.Config)

// started marks the chat as started before the model is created.
func started() harnessOption {
	return func(_ *Options, kv storage.Store, _ *config.Config) {
		_ = kv.Set(storage.KeyHasStartedChat, "1")
	}
}

// withLanguage applies a start-up language, like --lang.
func withLanguage(code string) harnessOption {
	return func(o *Options, _ storage.Store, _ *config.Config) {
		o.Language = code
	}
}

// withStoredLanguage persists a catalog language the way the locale store
// does, before the model is created.
func withStoredLanguage(code string) harnessOption {
	return func(_ *Options, kv storage.Store, _ *config.Config) {
		lang, ok := locale.DefaultCatalog().Lookup(code)
		if !ok {
			panic("unknown test language " + code)
		}
		data, err := json.Marshal(lang)
		if err != nil {
			panic(err)
		}
		_ = kv.Set(storage.KeyLanguage, string(data))
	}
}

// storedLanguage decodes the persisted language record and returns its code.
func storedLanguage(t *testing.T, kv storage.Store) string {
	t.Helper()
	raw, ok, err := kv.Get(storage.KeyLanguage)
	if err != nil || !ok {
		t.Fatalf("stored language: ok=%v err=%v", ok, err)
	}
	var lang locale.Language
	if err := json.Unmarshal([]byte(raw), &lang); err != nil {
		t.Fatalf("stored language %q is not a language record: %v", raw, err)
	}
	return lang.Code
}

// withNotifications turns desktop notifications on.
func withNotifications() harnessOption {
	return func(_ *Options, _ storage.Store, cfg *config.Config) {
		cfg.SetNotificationsEnabled(true)
	}
}

// newHarness creates a sized model on a manual scheduler with an English
// environment.
func newHarness(t *testing.T, opts ...harnessOption) *testHarness {
	t.Helper()
	h := &testHarness{
		kv:     storage.NewMemory(),
		sched:  schedule.NewManual(),
		motion: prefs.NewSignal(false),
	}

	n := 0
	o := Options{
		Store:     h.kv,
		Getenv:    func(k string) string { return map[string]string{"LANG": "en_US.UTF-8"}[k] },
		Motion:    h.motion,
		Clock:     schedule.ClockFunc(func() time.Time { return fixedNow }),
		IDs:       func() string { n++; return fmt.Sprintf("msg-%d", n) },
		Scheduler: h.sched,
		Version:   "0.0.0-test",
	}
	cfg := &config.Config{}
	for _, opt := range opts {
		opt(&o, h.kv, cfg)
	}

	h.m = New(cfg, o)
	t.Cleanup(h.m.Close)
	setSize(h.m, 100, 40)
	return h
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+c", "up", "alt+1"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.F1:
		return tea.KeyPressMsg{Code: tea.KeyF1}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlA:
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlN:
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	}
	for i, k := range keys.QuickReply {
		if key == k {
			return tea.KeyPressMsg{Code: rune('1' + i), Mod: tea.ModAlt}
		}
	}
	// Regular character - for single characters, set both Code and Text
	if len([]rune(key)) == 1 {
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// settle runs the scheduler's due tasks the way the event loop would,
// then lets the model catch up.
func (h *testHarness) settle(d time.Duration) {
	h.sched.Advance(d)
	h.m.Update(tea.FocusMsg{})
}
