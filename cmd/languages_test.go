package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zhubert/healthchat/internal/locale"
)

func TestListLanguages_All(t *testing.T) {
	var out bytes.Buffer
	if err := listLanguages(&out, locale.DefaultCatalog(), ""); err != nil {
		t.Fatalf("listLanguages() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != locale.DefaultCatalog().Len() {
		t.Fatalf("got %d lines, want one per language:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "en ") {
		t.Errorf("first line = %q, want English first", lines[0])
	}
	if !strings.Contains(out.String(), "العربية (Arabic)") || !strings.Contains(out.String(), "rtl") {
		t.Errorf("expected Arabic listed as rtl:\n%s", out.String())
	}
}

func TestListLanguages_Query(t *testing.T) {
	var out bytes.Buffer
	if err := listLanguages(&out, locale.DefaultCatalog(), "SPAN"); err != nil {
		t.Fatalf("listLanguages() error = %v", err)
	}
	got := strings.TrimSpace(out.String())
	if !strings.HasPrefix(got, "es ") || strings.Contains(got, "\n") {
		t.Errorf("query SPAN = %q, want only Spanish", got)
	}
}

func TestListLanguages_NoMatch(t *testing.T) {
	var out bytes.Buffer
	if err := listLanguages(&out, locale.DefaultCatalog(), "klingon"); err != nil {
		t.Fatalf("listLanguages() error = %v", err)
	}
	if !strings.Contains(out.String(), `No languages match "klingon"`) {
		t.Errorf("got %q", out.String())
	}
}

func TestListLanguages_JSON(t *testing.T) {
	orig := languagesJSON
	defer func() { languagesJSON = orig }()
	languagesJSON = true

	var out bytes.Buffer
	if err := listLanguages(&out, locale.DefaultCatalog(), "arab"); err != nil {
		t.Fatalf("listLanguages() error = %v", err)
	}

	var langs []locale.Language
	if err := json.Unmarshal(out.Bytes(), &langs); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(langs) != 1 || langs[0].Code != "ar" || langs[0].Direction != locale.RTL {
		t.Errorf("got %+v, want only Arabic", langs)
	}
}
