package localize

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale trims whitespace and replaces underscores with hyphens so
// POSIX style ids (pt_BR) and BCP 47 ids (pt-BR) share a key.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		// drop codeset and modifier: pt_BR.UTF-8, de_DE@euro
		locale = locale[:idx]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// localeTag parses locale as a BCP 47 tag
func localeTag(locale string) (language.Tag, error) {
	return language.Parse(normalizeLocale(locale))
}

// localeTagOrUnd is localeTag without the error
func localeTagOrUnd(locale string) language.Tag {
	tag, err := localeTag(locale)
	if err != nil {
		return language.Und
	}
	return tag
}
