package session

import (
	"log/slog"
	"sync"

	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/storage"
)

// startedValue is what the started flag is persisted as.
const startedValue = "1"

// Confirmer asks the user a yes/no question. reply is called exactly once,
// possibly after Confirm returns.
type Confirmer interface {
	Confirm(prompt string, reply func(bool))
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string, reply func(bool))

func (f ConfirmFunc) Confirm(prompt string, reply func(bool)) { f(prompt, reply) }

// Flags holds the persisted per-device booleans.
type Flags struct {
	kv  storage.Store
	log *slog.Logger
}

// NewFlags creates Flags backed by kv.
func NewFlags(kv storage.Store) *Flags {
	return &Flags{kv: kv, log: logger.ComponentLogger("Flags")}
}

// HasStarted reports whether the user has started a chat on this device.
// Read errors count as not started.
func (f *Flags) HasStarted() bool {
	v, ok, err := f.kv.Get(storage.KeyHasStartedChat)
	if err != nil {
		f.log.Warn("Failed to read started flag", "error", err)
		return false
	}
	return ok && v != ""
}

// MarkStarted persists the started flag. It is idempotent.
func (f *Flags) MarkStarted() error {
	if err := f.kv.Set(storage.KeyHasStartedChat, startedValue); err != nil {
		f.log.Warn("Failed to persist started flag", "error", err)
		return err
	}
	return nil
}

// Reset forgets the started flag and the stored language.
func (f *Flags) Reset() error {
	if err := f.kv.Delete(storage.KeyHasStartedChat); err != nil {
		return err
	}
	if err := f.kv.Delete(storage.KeyLanguage); err != nil {
		return err
	}
	f.log.Info("Device state reset")
	return nil
}

// ConfirmAndClear asks c with prompt. On confirmation clear runs; done, if
// not nil, receives the answer. Declining changes nothing. A nil Confirmer
// counts as declined.
func (f *Flags) ConfirmAndClear(prompt string, c Confirmer, clear func(), done func(bool)) {
	if c == nil {
		f.log.Warn("No confirmer; treating clear as declined")
		if done != nil {
			done(false)
		}
		return
	}

	var once sync.Once
	c.Confirm(prompt, func(ok bool) {
		once.Do(func() {
			f.log.Debug("Clear confirmation answered", "confirmed", ok)
			if ok {
				clear()
			}
			if done != nil {
				done(ok)
			}
		})
	})
}
