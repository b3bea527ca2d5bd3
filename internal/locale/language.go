// Package locale owns the language catalog, UI string tables, locale-aware
// time formatting, and the persisted choice of the active language.
package locale

import (
	"fmt"
	"strings"

	"github.com/zhubert/healthchat/internal/errors"
)

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Language is an immutable catalog entry. The JSON form is what gets persisted.
type Language struct {
	Code        string    `json:"code"`
	NativeName  string    `json:"native"`
	EnglishName string    `json:"english"`
	Direction   Direction `json:"dir"`
	Sample      string    `json:"sample,omitempty"` // Product title in this language
	IsCommon    bool      `json:"common"`
}

// Label is the "Native (English)" form shown in pickers.
func (l Language) Label() string {
	return fmt.Sprintf("%s (%s)", l.NativeName, l.EnglishName)
}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l.Direction == RTL
}

// Catalog is the fixed, ordered list of selectable languages.
// The first entry is the fallback language.
type Catalog struct {
	langs  []Language
	byCode map[string]int
}

// NewCatalog builds a catalog, rejecting empty lists and duplicate codes.
func NewCatalog(langs []Language) (*Catalog, error) {
	if len(langs) == 0 {
		return nil, errors.CatalogInvalid("catalog must contain at least one language")
	}

	c := &Catalog{
		langs:  make([]Language, len(langs)),
		byCode: make(map[string]int, len(langs)),
	}
	copy(c.langs, langs)

	for i, l := range c.langs {
		if l.Code == "" {
			return nil, errors.CatalogInvalid(fmt.Sprintf("language at index %d has empty code", i))
		}
		if _, dup := c.byCode[l.Code]; dup {
			return nil, errors.CatalogInvalid(fmt.Sprintf("duplicate language code %s", l.Code))
		}
		c.byCode[l.Code] = i
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog. English comes first.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Language{
		{Code: "en", NativeName: "English", EnglishName: "English", Direction: LTR, Sample: "Health Chat", IsCommon: true},
		{Code: "es", NativeName: "Español", EnglishName: "Spanish", Direction: LTR, Sample: "Chat de salud", IsCommon: true},
		{Code: "fr", NativeName: "Français", EnglishName: "French", Direction: LTR, Sample: "Discussion Santé", IsCommon: true},
		{Code: "ar", NativeName: "العربية", EnglishName: "Arabic", Direction: RTL, Sample: "دردشة الصحة", IsCommon: true},
		{Code: "hi", NativeName: "हिन्दी", EnglishName: "Hindi", Direction: LTR, Sample: "स्वास्थ्य चैट", IsCommon: true},
		{Code: "zh", NativeName: "中文", EnglishName: "Chinese", Direction: LTR, Sample: "健康聊天", IsCommon: true},
		{Code: "pt", NativeName: "Português", EnglishName: "Portuguese", Direction: LTR, Sample: "Chat de Saúde", IsCommon: true},
		{Code: "ru", NativeName: "Русский", EnglishName: "Russian", Direction: LTR, Sample: "Чат о здоровье", IsCommon: true},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// All returns a copy of every language in catalog order.
func (c *Catalog) All() []Language {
	out := make([]Language, len(c.langs))
	copy(out, c.langs)
	return out
}

// Default returns the fallback language (the first entry).
func (c *Catalog) Default() Language {
	return c.langs[0]
}

// Len returns the number of languages.
func (c *Catalog) Len() int {
	return len(c.langs)
}

// Lookup finds a language by code.
func (c *Catalog) Lookup(code string) (Language, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Language{}, false
	}
	return c.langs[i], true
}

// MustLookup is Lookup returning a structured error for unknown codes.
func (c *Catalog) MustLookup(code string) (Language, error) {
	l, ok := c.Lookup(code)
	if !ok {
		return Language{}, errors.LanguageNotFound(code)
	}
	return l, nil
}

// Common returns the languages flagged as common, in catalog order.
func (c *Catalog) Common() []Language {
	var out []Language
	for _, l := range c.langs {
		if l.IsCommon {
			out = append(out, l)
		}
	}
	return out
}

// Filter returns languages whose "native english" text contains query,
// case-insensitively. An empty query returns the whole catalog.
func (c *Catalog) Filter(query string) []Language {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	var out []Language
	for _, l := range c.langs {
		haystack := strings.ToLower(l.NativeName + " " + l.EnglishName)
		if strings.Contains(haystack, q) {
			out = append(out, l)
		}
	}
	return out
}
