// Package errors provides structured error types for healthchat.
// These errors carry the operation that failed and a coarse category so
// callers can decide between falling back and surfacing a problem.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindCorrupt
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindCorrupt:
		return "corrupt data"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for healthchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Storage errors
func StorageOpenFailed(backend string, err error) error {
	return E(Op("storage.Open"), KindIO, fmt.Sprintf("failed to open %s store", backend), err)
}

func StorageReadFailed(key string, err error) error {
	return E(Op("storage.Get"), KindIO, fmt.Sprintf("failed to read key %s", key), err)
}

func StorageWriteFailed(key string, err error) error {
	return E(Op("storage.Set"), KindIO, fmt.Sprintf("failed to write key %s", key), err)
}

// Locale errors
func PersistedValueCorrupt(key string, err error) error {
	return E(Op("locale.ResolveInitial"), KindCorrupt, fmt.Sprintf("stored value for %s is unusable", key), err)
}

func LanguageNotFound(code string) error {
	return E(Op("locale.Lookup"), KindNotFound, fmt.Sprintf("language %q is not in the catalog", code))
}

func CatalogInvalid(reason string) error {
	return E(Op("locale.NewCatalog"), KindInvalid, reason)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
