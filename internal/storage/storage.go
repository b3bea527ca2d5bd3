// Package storage provides the persistent key-value store used to remember
// the chosen language and whether the user has started a chat on this device.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/zhubert/healthchat/internal/errors"
)

// Well-known keys
const (
	KeyLanguage       = "language"
	KeyHasStartedChat = "hasStartedChat"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store is a small string key-value store. Writes are last-write-wins and
// there is no multi-key transaction.
type Store interface {
	// Get returns the stored value. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases any resources held by the store.
	Close() error
}

// Open creates the store for backend, keeping its files under dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		s, err := NewFile(filepath.Join(dir, "state.json"))
		if err != nil {
			return nil, errors.StorageOpenFailed(BackendFile, err)
		}
		return s, nil
	case BackendSQLite:
		s, err := NewSQLite(filepath.Join(dir, "state.db"))
		if err != nil {
			return nil, errors.StorageOpenFailed(BackendSQLite, err)
		}
		return s, nil
	default:
		return nil, errors.StorageOpenFailed(backend, fmt.Errorf("unknown backend %q", backend))
	}
}
