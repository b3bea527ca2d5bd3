// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/healthchat/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// write is swapped in tests so they never touch the real clipboard.
	write = systemWrite
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.Debug("Clipboard: initialized")
	})
	return initErr
}

func systemWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if err := write(text); err != nil {
		return err
	}
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}

// SetWriter replaces the clipboard writer. Used by tests.
func SetWriter(fn func(string) error) {
	write = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	write = systemWrite
}
