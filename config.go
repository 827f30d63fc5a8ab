package localize

import (
	"errors"

	"go.uber.org/zap"
)

// Config captures format table and interceptor setup
type Config struct {
	DefaultLocale string
	Loader        Loader
	Platform      Platform
	Logger        *zap.Logger
	Hooks         []Hook
	Number        *NumberOptions

	formats     Formats
	skipBuiltin bool
	table       *FormatTable
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Bundles are assembled from the
// built-in set, then the loader, then WithFormatSpec entries.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}

	if cfg.Platform == nil {
		cfg.Platform = XTextPlatform{}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	table, err := cfg.buildTable()
	if err != nil {
		return nil, err
	}
	cfg.table = table

	if !table.Has(cfg.DefaultLocale) {
		return nil, newConfigError(cfg.DefaultLocale, "default locale has no registered format", ErrNotFound)
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale selected at startup
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithFormatSpec registers a bundle, merged over any built-in or loaded bundle for locale
func WithFormatSpec(locale string, spec FormatSpec) Option {
	return func(c *Config) error {
		key := normalizeLocale(locale)
		if key == "" {
			return newConfigError(locale, "empty locale identifier", nil)
		}
		if c.formats == nil {
			c.formats = make(Formats)
		}
		c.formats[key] = mergeFormatSpec(c.formats[key], spec)
		return nil
	}
}

// WithoutBuiltins drops the bundles shipped with the package
func WithoutBuiltins() Option {
	return func(c *Config) error {
		c.skipBuiltin = true
		return nil
	}
}

func WithPlatform(platform Platform) Option {
	return func(c *Config) error {
		c.Platform = platform
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// WithNumberParsing replaces the interceptor numeric options
func WithNumberParsing(opts NumberOptions) Option {
	return func(c *Config) error {
		c.Number = &opts
		return nil
	}
}

// FormatTable returns the assembled table
func (cfg *Config) FormatTable() *FormatTable {
	if cfg == nil {
		return nil
	}
	return cfg.table
}

// BuildLocalizer returns a Localizer with the default locale selected
func (cfg *Config) BuildLocalizer() (*Localizer, error) {
	if cfg == nil || cfg.table == nil {
		return nil, errors.New("localize: config not initialized")
	}

	localizer := NewLocalizer(cfg.table, WithLocalizerPlatform(cfg.Platform))
	if err := localizer.SetLocale(cfg.DefaultLocale); err != nil {
		return nil, err
	}
	return localizer, nil
}

// BuildInterceptor returns an Interceptor for schema wired with the config logger and hooks
func (cfg *Config) BuildInterceptor(schema Schema) *Interceptor {
	opts := []InterceptorOption{}
	if cfg != nil {
		opts = append(opts, WithInterceptorLogger(cfg.Logger), WithInterceptorHooks(cfg.Hooks...))
		if cfg.Number != nil {
			opts = append(opts, WithNumberOptions(*cfg.Number))
		}
	}
	return NewInterceptor(schema, opts...)
}

func (cfg *Config) buildTable() (*FormatTable, error) {
	merged := make(Formats)
	if !cfg.skipBuiltin {
		for locale, spec := range builtinFormats {
			merged[locale] = spec.Clone()
		}
	}

	if cfg.Loader != nil {
		loaded, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		for locale, spec := range loaded {
			key := normalizeLocale(locale)
			merged[key] = mergeFormatSpec(merged[key], spec)
		}
	}

	for locale, spec := range cfg.formats {
		merged[locale] = mergeFormatSpec(merged[locale], spec)
	}

	return NewFormatTable(WithoutBuiltinFormats(), WithFormats(merged))
}
