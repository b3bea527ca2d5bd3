// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/healthchat/internal/logger"
)

// AppName is the notification title prefix.
const AppName = "Health Chat"

var notify = beeep.Notify

// SetNotifier replaces the notification function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q", title)
	// Empty icon lets beeep use the platform default
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// NewMessage notifies that the assistant replied. title is the localized
// product title; text is the localized new-message announcement.
func NewMessage(title, text string) error {
	if title == "" {
		title = AppName
	}
	return Send(title, text)
}
