package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnvVars are consulted in POSIX precedence order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(string) string

// EnvTags returns the preferred language tags of the host environment, most
// preferred first. POSIX forms such as fr_FR.UTF-8 and colon-separated
// LANGUAGE lists are accepted; C and POSIX are ignored.
func EnvTags(getenv Getenv) []language.Tag {
	if getenv == nil {
		getenv = os.Getenv
	}

	var tags []language.Tag
	for _, name := range localeEnvVars {
		value := getenv(name)
		if value == "" {
			continue
		}
		for _, part := range strings.Split(value, ":") {
			if tag, ok := parsePOSIX(part); ok {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func parsePOSIX(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Detect matches the primary subtag of each environment tag against catalog
// codes and returns the first hit.
func (c *Catalog) Detect(getenv Getenv) (Language, bool) {
	for _, tag := range EnvTags(getenv) {
		base, _ := tag.Base()
		if l, ok := c.Lookup(base.String()); ok {
			return l, true
		}
	}
	return Language{}, false
}
