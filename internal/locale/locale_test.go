package locale

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/storage"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// env builds a Getenv over a fixed map.
func env(vars map[string]string) Getenv {
	return func(name string) string { return vars[name] }
}

// failingStore fails every write.
type failingStore struct {
	storage.Store
}

func (failingStore) Set(key, value string) error { return errors.New("disk full") }

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		langs   []Language
		wantErr bool
	}{
		{"empty", nil, true},
		{"empty code", []Language{{Code: ""}}, true},
		{"duplicate", []Language{{Code: "en"}, {Code: "en"}}, true},
		{"valid", []Language{{Code: "en"}, {Code: "fr"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.langs)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", c.Len())
	}
	if c.Default().Code != "en" {
		t.Errorf("Default() = %s, want en", c.Default().Code)
	}
	ar, ok := c.Lookup("ar")
	if !ok || !ar.IsRTL() {
		t.Errorf("ar should be present and right-to-left")
	}
	if len(c.Common()) != 8 {
		t.Errorf("Common() = %d languages, want 8", len(c.Common()))
	}
	if _, err := c.MustLookup("xx"); err == nil {
		t.Error("MustLookup(xx) should fail")
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"en", "es", "fr", "ar", "hi", "zh", "pt", "ru"}},
		{"   ", []string{"en", "es", "fr", "ar", "hi", "zh", "pt", "ru"}},
		{"FRENCH", []string{"fr"}},
		{"fran", []string{"fr"}},
		{"an", []string{"es", "fr", "ru"}},
		{"中文", []string{"zh"}},
		{"klingon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Filter(tt.query)
			var codes []string
			for _, l := range got {
				codes = append(codes, l.Code)
			}
			if strings.Join(codes, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, codes, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		name   string
		vars   map[string]string
		want   string
		wantOK bool
	}{
		{"posix lang", map[string]string{"LANG": "fr_FR.UTF-8"}, "fr", true},
		{"lc_all wins", map[string]string{"LC_ALL": "es_ES", "LANG": "fr_FR"}, "es", true},
		{"language list", map[string]string{"LANGUAGE": "de:pt_BR"}, "pt", true},
		{"script subtag", map[string]string{"LANG": "zh-Hant-TW"}, "zh", true},
		{"modifier", map[string]string{"LANG": "ru_RU@euro"}, "ru", true},
		{"C locale skipped", map[string]string{"LC_ALL": "C", "LANG": "ar_EG.UTF-8"}, "ar", true},
		{"no match", map[string]string{"LANG": "de_DE.UTF-8"}, "", false},
		{"empty", map[string]string{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Detect(env(tt.vars))
			if ok != tt.wantOK || got.Code != tt.want {
				t.Errorf("Detect() = (%q, %v), want (%q, %v)", got.Code, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveInitial_CorruptEqualsAbsent(t *testing.T) {
	corrupt := []string{
		"",
		"{not json",
		`{"code":"xx"}`,
		`"fr"`,
	}

	for _, code := range []string{"en", "es", "fr", "ar", "hi", "zh", "pt", "ru"} {
		vars := map[string]string{"LANG": code + ".UTF-8"}

		absent := NewStore(DefaultCatalog(), storage.NewMemory(), env(vars)).ResolveInitial()

		for _, raw := range corrupt {
			kv := storage.NewMemory()
			kv.Set(storage.KeyLanguage, raw)
			got := NewStore(DefaultCatalog(), kv, env(vars)).ResolveInitial()
			if got != absent {
				t.Errorf("LANG=%s stored %q: ResolveInitial() = %s, want %s", code, raw, got.Code, absent.Code)
			}
		}
	}
}

func TestResolveInitial_FallsBackToDefault(t *testing.T) {
	s := NewStore(DefaultCatalog(), storage.NewMemory(), env(map[string]string{"LANG": "de_DE"}))
	if got := s.ResolveInitial(); got.Code != "en" {
		t.Errorf("ResolveInitial() = %s, want en", got.Code)
	}
}

func TestResolveInitial_FrenchEnvironment(t *testing.T) {
	s := NewStore(DefaultCatalog(), storage.NewMemory(), env(map[string]string{"LANG": "fr"}))
	got := s.ResolveInitial()
	if got.Code != "fr" || got.NativeName != "Français" {
		t.Errorf("ResolveInitial() = %+v, want the French entry", got)
	}
}

func TestApply_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	c := DefaultCatalog()

	for _, lang := range c.All() {
		if err := NewStore(c, kv, env(nil)).Apply(lang); err != nil {
			t.Fatalf("Apply(%s) error = %v", lang.Code, err)
		}
		fresh := NewStore(c, kv, env(map[string]string{"LANG": "ru_RU"}))
		if got := fresh.ResolveInitial(); got.Code != lang.Code {
			t.Errorf("round trip of %s resolved %s", lang.Code, got.Code)
		}
	}

	raw, _, _ := kv.Get(storage.KeyLanguage)
	var stored Language
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored language is not JSON: %v", err)
	}
}

func TestApply_PublishesMetadata(t *testing.T) {
	s := NewStore(DefaultCatalog(), storage.NewMemory(), env(nil))
	var got []Metadata
	s.OnMetadata(func(md Metadata) { got = append(got, md) })

	ar, _ := s.Catalog().Lookup("ar")
	s.Apply(ar)

	if len(got) != 2 {
		t.Fatalf("sink called %d times, want 2", len(got))
	}
	if got[1] != (Metadata{Lang: "ar", Dir: RTL}) {
		t.Errorf("metadata = %+v, want ar/rtl", got[1])
	}
}

func TestApply_WriteFailureStillApplies(t *testing.T) {
	s := NewStore(DefaultCatalog(), failingStore{storage.NewMemory()}, env(nil))
	var md Metadata
	s.OnMetadata(func(m Metadata) { md = m })

	es, _ := s.Catalog().Lookup("es")
	if err := s.Apply(es); err == nil {
		t.Error("Apply() should return the write error")
	}
	if s.Current().Code != "es" || md.Lang != "es" {
		t.Errorf("current = %s, metadata = %s; want es for both", s.Current().Code, md.Lang)
	}
}

func TestStringsFor(t *testing.T) {
	if got := StringsFor("es").Start; got != "Comenzar" {
		t.Errorf("es Start = %q", got)
	}
	if got := StringsFor("hi").Start; got != "Start" {
		t.Errorf("hi should fall back to English, got %q", got)
	}
	if got := StringsFor("fr").NewMessage; got != "New message received" {
		t.Errorf("missing fr key should fall back to English, got %q", got)
	}
	if !HasTable("ar") || HasTable("ru") {
		t.Error("HasTable() mismatch")
	}

	want := "Reviewing your symptoms… usually <10s.\n\nOptions:\n• Yes\n• No\n• Not sure"
	if got := StringsFor("en").ReplyBody(); got != want {
		t.Errorf("ReplyBody() = %q, want %q", got, want)
	}
	if got := StringsFor("en").Selected("Español"); got != "Español selected" {
		t.Errorf("Selected() = %q", got)
	}
	if n := len(StringsFor("en").QuickReplies()); n != 5 {
		t.Errorf("QuickReplies() = %d entries, want 5", n)
	}
}

func TestTimeFormatter(t *testing.T) {
	at := time.Date(2025, 3, 4, 14, 5, 0, 0, time.UTC)
	tests := []struct {
		code string
		want string
	}{
		{"en", "2:05 PM"},
		{"fr", "14:05"},
		{"es", "14:05"},
		{"ru", "14:05"},
		{"hi", "2:05 pm"},
		{"ar", "٢:٠٥ م"},
		{"zh", "下午2:05"},
		{"xx", "14:05"},
	}
	for _, tt := range tests {
		if got := TimeFormatterFor(tt.code).Format(at); got != tt.want {
			t.Errorf("TimeFormatterFor(%s).Format() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
