package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/healthchat/internal/errors"
	"github.com/zhubert/healthchat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFile(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	db, err := NewSQLite(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Store{
		BackendMemory: NewMemory(),
		BackendFile:   file,
		BackendSQLite: db,
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(KeyLanguage); err != nil || ok {
				t.Fatalf("Get() on empty store = ok %v, err %v; want absent", ok, err)
			}

			if err := s.Set(KeyLanguage, `{"code":"es"}`); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := s.Set(KeyLanguage, `{"code":"fr"}`); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			v, ok, err := s.Get(KeyLanguage)
			if err != nil || !ok || v != `{"code":"fr"}` {
				t.Fatalf("Get() = %q, %v, %v; want last write", v, ok, err)
			}

			if err := s.Delete(KeyLanguage); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := s.Delete(KeyLanguage); err != nil {
				t.Fatalf("Delete() of absent key error = %v", err)
			}
			if _, ok, _ := s.Get(KeyLanguage); ok {
				t.Error("key should be absent after Delete()")
			}
		})
	}
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if err := s.Set(KeyHasStartedChat, "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if v, ok, _ := reopened.Get(KeyHasStartedChat); !ok || v != "1" {
		t.Errorf("Get() after reopen = %q, %v; want \"1\", true", v, ok)
	}
}

func TestFile_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() on corrupt file error = %v", err)
	}
	if _, ok, _ := s.Get(KeyLanguage); ok {
		t.Error("corrupt file should read as empty")
	}
	if err := s.Set(KeyLanguage, "x"); err != nil {
		t.Fatalf("Set() should replace corrupt file: %v", err)
	}
}

func TestFile_WriteFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	s, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyLanguage, "en"); err != nil {
		t.Fatal(err)
	}

	// Make the rename target a directory so the flush fails
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	err = s.Set(KeyLanguage, "es")
	if err == nil {
		t.Fatal("Set() should fail when the file cannot be replaced")
	}
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("error kind = %v, want KindIO", errors.GetKind(err))
	}
	if v, _, _ := s.Get(KeyLanguage); v != "en" {
		t.Errorf("Get() after failed write = %q, want previous value", v)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	if err := s.Set(KeyHasStartedChat, "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.Close()

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	if v, ok, _ := reopened.Get(KeyHasStartedChat); !ok || v != "1" {
		t.Errorf("Get() after reopen = %q, %v; want \"1\", true", v, ok)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{BackendMemory, false},
		{BackendFile, false},
		{"", false},
		{BackendSQLite, false},
		{"redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := Open(tt.backend, t.TempDir())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
			if s != nil {
				s.Close()
			}
			if tt.wantErr && !errors.Is(err, errors.KindIO) {
				t.Errorf("error kind = %v, want KindIO", errors.GetKind(err))
			}
		})
	}
}
