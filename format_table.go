package localize

import (
	"fmt"
	"sort"
	"sync"
)

// FormatTable maps locale identifiers to their FormatSpec. Registration is
// expected at startup; lookups are safe for concurrent use.
type FormatTable struct {
	mu      sync.RWMutex
	formats map[string]FormatSpec
}

type formatTableConfig struct {
	skipBuiltin bool
	formats     map[string]FormatSpec
}

type FormatTableOption func(*formatTableConfig)

// WithoutBuiltinFormats starts the table empty
func WithoutBuiltinFormats() FormatTableOption {
	return func(ftc *formatTableConfig) {
		ftc.skipBuiltin = true
	}
}

// WithFormats seeds the table with additional bundles
func WithFormats(formats map[string]FormatSpec) FormatTableOption {
	return func(ftc *formatTableConfig) {
		if len(formats) == 0 {
			return
		}
		if ftc.formats == nil {
			ftc.formats = make(map[string]FormatSpec, len(formats))
		}
		for locale, spec := range formats {
			ftc.formats[locale] = spec
		}
	}
}

// NewFormatTable builds a table seeded with the built-in bundles. Seeded
// bundles are validated like any registration.
func NewFormatTable(opts ...FormatTableOption) (*FormatTable, error) {
	cfg := formatTableConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	table := &FormatTable{formats: make(map[string]FormatSpec)}

	if !cfg.skipBuiltin {
		for locale, spec := range builtinFormats {
			table.formats[locale] = spec.Clone()
		}
	}

	for locale, spec := range cfg.formats {
		if err := table.Register(locale, spec); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// MustFormatTable is NewFormatTable that panics on error
func MustFormatTable(opts ...FormatTableOption) *FormatTable {
	table, err := NewFormatTable(opts...)
	if err != nil {
		panic(err)
	}
	return table
}

// Register inserts or replaces the bundle for locale. Last write wins.
func (t *FormatTable) Register(locale string, spec FormatSpec) error {
	key := normalizeLocale(locale)
	if key == "" {
		return newConfigError(locale, "empty locale identifier", nil)
	}

	if err := spec.Validate(); err != nil {
		return newConfigError(key, "incomplete format bundle", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.formats == nil {
		t.formats = make(map[string]FormatSpec)
	}
	t.formats[key] = spec.Clone()
	return nil
}

// Spec returns a copy of the bundle registered for locale
func (t *FormatTable) Spec(locale string) (FormatSpec, error) {
	key := normalizeLocale(locale)

	t.mu.RLock()
	spec, ok := t.formats[key]
	t.mu.RUnlock()

	if !ok {
		return FormatSpec{}, newConfigError(key, "no registered format", ErrNotFound)
	}
	return spec.Clone(), nil
}

// Lookup returns the named pattern registered for locale
func (t *FormatTable) Lookup(locale string, name FormatName) (string, error) {
	spec, err := t.Spec(locale)
	if err != nil {
		return "", err
	}

	pattern, ok := spec.Pattern(name)
	if !ok {
		return "", fmt.Errorf("%w: format %q for locale %q", ErrNotFound, name, normalizeLocale(locale))
	}
	return pattern, nil
}

// Has reports whether locale has a registered bundle
func (t *FormatTable) Has(locale string) bool {
	key := normalizeLocale(locale)

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.formats[key]
	return ok
}

// Locales returns the registered locale identifiers, sorted
func (t *FormatTable) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, len(t.formats))
	for locale := range t.formats {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Context snapshots the bundle for locale into a LocaleContext
func (t *FormatTable) Context(locale string) (LocaleContext, error) {
	spec, err := t.Spec(locale)
	if err != nil {
		return LocaleContext{}, err
	}
	return newLocaleContext(normalizeLocale(locale), spec), nil
}
