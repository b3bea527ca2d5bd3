package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/healthchat/internal/errors"
	"github.com/zhubert/healthchat/internal/logger"
)

// File is a Store backed by a single JSON object on disk. The whole object is
// rewritten on every change.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// NewFile opens the JSON store at path. A missing file is an empty store.
// A file that cannot be parsed is logged and treated as empty; the next
// write replaces it.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		logger.Warn("Storage: ignoring unreadable state file %s: %v", path, err)
		f.values = make(map[string]string)
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

// Path returns the file the store writes to.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return errors.StorageWriteFailed(key, err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.values[key]
	if !had {
		return nil
	}
	delete(f.values, key)
	if err := f.flush(); err != nil {
		f.values[key] = prev
		return errors.StorageWriteFailed(key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

// flush writes the current values through a temp file and rename. Caller holds mu.
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
