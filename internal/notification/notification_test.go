package notification

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/healthchat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Health Chat", "New message received", nil, false},
		{"notification error", "Health Chat", "New message received", errors.New("notification failed"), true},
		{"empty message", "Health Chat", "", nil, false},
		{"unicode content", "دردشة الصحة", "جارٍ مراجعة الأعراض…", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title || call.message != tt.message {
				t.Errorf("call = (%q, %q), want (%q, %q)", call.title, call.message, tt.title, tt.message)
			}
			if call.icon != "" {
				t.Errorf("icon = %v, want empty", call.icon)
			}
		})
	}
}

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		expectedTitle string
	}{
		{"localized title", "Chat de salud", "Chat de salud"},
		{"empty title uses app name", "", AppName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := NewMessage(tt.title, "Reviewing your symptoms…"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mock.calls[0].title != tt.expectedTitle {
				t.Errorf("title = %q, want %q", mock.calls[0].title, tt.expectedTitle)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	// Sending now goes to beeep; only verify the mock is detached.
	SetNotifier(func(string, string, any) error { return nil })
	defer ResetNotifier()
	Send("t", "m")

	if len(mock.calls) != 0 {
		t.Errorf("mock should not be called after reset, got %d calls", len(mock.calls))
	}
}
