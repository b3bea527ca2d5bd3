// Package prefs supplies the host's reduced-motion preference. The value
// starts from the environment and can be changed at runtime by editing a
// small YAML preference file, which is watched for changes.
package prefs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// EnvReducedMotion forces reduced motion when set to a true value.
const EnvReducedMotion = "HEALTHCHAT_REDUCED_MOTION"

// File is the on-disk preference document.
type File struct {
	ReducedMotion bool `yaml:"reduced_motion"`
}

// Source is a reduced-motion signal that can be observed.
type Source interface {
	Value() bool
	// Subscribe registers fn for changes and returns a function that
	// removes it. fn may be called from another goroutine.
	Subscribe(fn func(bool)) (unsubscribe func())
}

// Signal is a thread-safe boolean with change subscriptions.
type Signal struct {
	mu    sync.Mutex
	value bool
	subs  map[int]func(bool)
	next  int
}

// NewSignal creates a signal with an initial value.
func NewSignal(initial bool) *Signal {
	return &Signal{value: initial, subs: make(map[int]func(bool))}
}

// Value returns the current value.
func (s *Signal) Value() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal) Set(v bool) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	subs := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe implements Source.
func (s *Signal) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Signal) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// FromEnv reads EnvReducedMotion. ok is false when it is unset or not a
// boolean.
func FromEnv(getenv func(string) string) (value, ok bool) {
	if getenv == nil {
		getenv = os.Getenv
	}
	raw := strings.TrimSpace(getenv(EnvReducedMotion))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Load reads a preference file.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, err
	}
	return f, nil
}

// Save writes a preference file, creating its directory if needed. A
// running Watcher on the same path picks the change up.
func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
