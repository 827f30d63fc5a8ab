package localize

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleContext is an immutable snapshot of one locale and its bundle. Every
// conversion takes it explicitly so switching the current locale never
// affects conversions already in flight.
type LocaleContext struct {
	locale string
	tag    language.Tag
	spec   FormatSpec
	symbol string
}

func newLocaleContext(locale string, spec FormatSpec) LocaleContext {
	tag := localeTagOrUnd(locale)
	return LocaleContext{
		locale: locale,
		tag:    tag,
		spec:   spec,
		symbol: resolveCurrencySymbol(tag, spec.Currency),
	}
}

// NewLocaleContext validates spec and builds a context that is not backed by a table
func NewLocaleContext(locale string, spec FormatSpec) (LocaleContext, error) {
	key := normalizeLocale(locale)
	if key == "" {
		return LocaleContext{}, newConfigError(locale, "empty locale identifier", nil)
	}
	if err := spec.Validate(); err != nil {
		return LocaleContext{}, newConfigError(key, "incomplete format bundle", err)
	}
	return newLocaleContext(key, spec.Clone()), nil
}

// Locale returns the normalized locale identifier
func (lc LocaleContext) Locale() string { return lc.locale }

// Spec returns a copy of the bundle
func (lc LocaleContext) Spec() FormatSpec { return lc.spec.Clone() }

// CurrencySymbol returns the configured symbol, or the one derived from the currency code
func (lc LocaleContext) CurrencySymbol() string { return lc.symbol }

// IsZero reports whether lc was never initialized
func (lc LocaleContext) IsZero() bool { return lc.locale == "" }

func (lc LocaleContext) valid() error {
	if lc.IsZero() {
		return newConfigError("", "locale context not initialized", ErrNotFound)
	}
	return nil
}

func resolveCurrencySymbol(tag language.Tag, cf CurrencyFormat) string {
	if symbol := strings.TrimSpace(cf.Symbol); symbol != "" {
		return symbol
	}

	code := strings.TrimSpace(cf.Code)
	if code == "" {
		return ""
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code)
	}

	symbol := strings.TrimSpace(message.NewPrinter(tag).Sprint(currency.Symbol(unit)))
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

type localeContextKey struct{}

// WithLocaleContext returns a copy of ctx carrying lc
func WithLocaleContext(ctx context.Context, lc LocaleContext) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lc)
}

// LocaleContextFrom extracts the LocaleContext stored by WithLocaleContext
func LocaleContextFrom(ctx context.Context) (LocaleContext, bool) {
	if ctx == nil {
		return LocaleContext{}, false
	}
	lc, ok := ctx.Value(localeContextKey{}).(LocaleContext)
	return lc, ok && !lc.IsZero()
}

// Platform decides whether a locale identifier is usable on the running system
type Platform interface {
	Supports(locale string) error
}

// PlatformFunc adapts a function to Platform
type PlatformFunc func(locale string) error

func (fn PlatformFunc) Supports(locale string) error {
	return fn(locale)
}

// XTextPlatform accepts any well formed BCP 47 tag
type XTextPlatform struct{}

func (XTextPlatform) Supports(locale string) error {
	tag, err := localeTag(locale)
	if err != nil {
		return err
	}
	if tag == language.Und {
		return fmt.Errorf("undetermined language")
	}
	return nil
}

// Localizer owns a FormatTable and the currently selected locale
type Localizer struct {
	mu       sync.RWMutex
	table    *FormatTable
	platform Platform
	locale   string
}

type LocalizerOption func(*Localizer)

// WithLocalizerPlatform replaces the locale validation facility
func WithLocalizerPlatform(platform Platform) LocalizerOption {
	return func(l *Localizer) {
		if platform != nil {
			l.platform = platform
		}
	}
}

// WithLocalizerLocale sets the initial locale without validation
func WithLocalizerLocale(locale string) LocalizerOption {
	return func(l *Localizer) {
		if key := normalizeLocale(locale); key != "" {
			l.locale = key
		}
	}
}

// NewLocalizer builds a Localizer over table. A nil table gets the built-in bundles.
func NewLocalizer(table *FormatTable, opts ...LocalizerOption) *Localizer {
	if table == nil {
		table = MustFormatTable()
	}

	l := &Localizer{
		table:    table,
		platform: XTextPlatform{},
		locale:   DefaultLocale,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Table exposes the underlying FormatTable
func (l *Localizer) Table() *FormatTable {
	return l.table
}

// Locale returns the current locale
func (l *Localizer) Locale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locale
}

// SetLocale selects the current locale. On failure the previous locale stays selected.
func (l *Localizer) SetLocale(locale string) error {
	key := normalizeLocale(locale)
	if key == "" {
		return newConfigError(locale, "empty locale identifier", nil)
	}

	if l.platform != nil {
		if err := l.platform.Supports(locale); err != nil {
			return newConfigError(key, "locale has no registered format on this platform", err)
		}
	}

	if !l.table.Has(key) {
		return newConfigError(key, "locale has no registered format on this platform", ErrNotFound)
	}

	l.mu.Lock()
	l.locale = key
	l.mu.Unlock()
	return nil
}

// Register adds or replaces the bundle for locale
func (l *Localizer) Register(locale string, spec FormatSpec) error {
	return l.table.Register(locale, spec)
}

// Context snapshots the current locale
func (l *Localizer) Context() (LocaleContext, error) {
	return l.table.Context(l.Locale())
}

// Date renders a canonical date with the current locale
func (l *Localizer) Date(value string) (string, error) {
	lc, err := l.Context()
	if err != nil {
		return "", err
	}
	return RenderDate(lc, value)
}

// DateTime renders a canonical date-time with the current locale
func (l *Localizer) DateTime(value string, seconds bool) (string, error) {
	lc, err := l.Context()
	if err != nil {
		return "", err
	}
	return RenderDateTime(lc, value, seconds)
}

// Literal renders a spelled-out date with the current locale
func (l *Localizer) Literal(value string, opts LiteralOptions) (string, error) {
	lc, err := l.Context()
	if err != nil {
		return "", err
	}
	return RenderLiteral(lc, value, opts)
}

// Currency renders value as money with the current locale
func (l *Localizer) Currency(value any) (string, error) {
	lc, err := l.Context()
	if err != nil {
		return "", err
	}
	return RenderCurrency(lc, value), nil
}

// Number renders value with the current locale separators
func (l *Localizer) Number(value any, precision *int, thousands bool) (string, error) {
	lc, err := l.Context()
	if err != nil {
		return "", err
	}
	return RenderNumber(lc, value, precision, thousands), nil
}
