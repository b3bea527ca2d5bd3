package locale

import (
	"encoding/json"
	"log/slog"

	"github.com/zhubert/healthchat/internal/errors"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/storage"
)

// Metadata is the document-level locale information the UI mirrors.
type Metadata struct {
	Lang string
	Dir  Direction
}

// MetadataSink receives metadata whenever the active language changes.
type MetadataSink func(Metadata)

// Store resolves, applies, and persists the active language.
type Store struct {
	catalog *Catalog
	kv      storage.Store
	getenv  Getenv
	current Language
	sinks   []MetadataSink
	log     *slog.Logger
}

// NewStore creates a Store. getenv may be nil to use the process environment.
// Current is the catalog default until ResolveInitial or Apply runs.
func NewStore(catalog *Catalog, kv storage.Store, getenv Getenv) *Store {
	return &Store{
		catalog: catalog,
		kv:      kv,
		getenv:  getenv,
		current: catalog.Default(),
		log:     logger.ComponentLogger("Locale"),
	}
}

// Catalog returns the catalog the store resolves against.
func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// OnMetadata registers a sink. It is invoked immediately with the current
// metadata and again on every Apply.
func (s *Store) OnMetadata(sink MetadataSink) {
	s.sinks = append(s.sinks, sink)
	sink(s.metadata())
}

// ResolveInitial picks the starting language: the persisted one when it is
// readable and in the catalog, otherwise the environment's, otherwise the
// catalog default. It never fails.
func (s *Store) ResolveInitial() Language {
	lang, ok := s.loadPersisted()
	if !ok {
		if lang, ok = s.catalog.Detect(s.getenv); !ok {
			lang = s.catalog.Default()
		}
		s.log.Debug("Resolved language from environment", "code", lang.Code, "detected", ok)
	}
	s.current = lang
	s.publish()
	return lang
}

func (s *Store) loadPersisted() (Language, bool) {
	raw, ok, err := s.kv.Get(storage.KeyLanguage)
	if err != nil {
		s.log.Warn("Failed to read stored language", "error", err)
		return Language{}, false
	}
	if !ok {
		return Language{}, false
	}

	var stored Language
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Warn("Ignoring stored language", "error", errors.PersistedValueCorrupt(storage.KeyLanguage, err))
		return Language{}, false
	}
	lang, err := s.catalog.MustLookup(stored.Code)
	if err != nil {
		s.log.Warn("Ignoring stored language", "error", errors.PersistedValueCorrupt(storage.KeyLanguage, err))
		return Language{}, false
	}
	return lang, true
}

// Apply makes lang current, persists it, and notifies metadata sinks. Sinks
// are notified even when the write fails; the write error is returned.
func (s *Store) Apply(lang Language) error {
	s.current = lang
	s.publish()

	data, err := json.Marshal(lang)
	if err != nil {
		return errors.StorageWriteFailed(storage.KeyLanguage, err)
	}
	if err := s.kv.Set(storage.KeyLanguage, string(data)); err != nil {
		s.log.Warn("Failed to persist language", "code", lang.Code, "error", err)
		return err
	}
	s.log.Info("Language applied", "code", lang.Code, "dir", lang.Direction)
	return nil
}

// Current returns the active language.
func (s *Store) Current() Language {
	return s.current
}

// Strings returns the UI strings of the active language.
func (s *Store) Strings() Strings {
	return StringsFor(s.current.Code)
}

// TimeFormatter returns the clock pattern of the active language.
func (s *Store) TimeFormatter() TimeFormatter {
	return TimeFormatterFor(s.current.Code)
}

func (s *Store) metadata() Metadata {
	return Metadata{Lang: s.current.Code, Dir: s.current.Direction}
}

func (s *Store) publish() {
	md := s.metadata()
	for _, sink := range s.sinks {
		sink(md)
	}
}
