package localize

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// EnvConfig holds the settings read from the environment
type EnvConfig struct {
	Locale      string   `env:"LOCALIZE_LOCALE"`
	FormatFiles []string `env:"LOCALIZE_FORMAT_FILES" envSeparator:","`
	Debug       bool     `env:"LOCALIZE_DEBUG"`
}

// ParseEnv loads EnvConfig from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// WithEnv applies LOCALIZE_LOCALE, LOCALIZE_FORMAT_FILES and LOCALIZE_DEBUG.
// Options given after WithEnv take precedence.
func WithEnv() Option {
	return func(c *Config) error {
		settings, err := ParseEnv()
		if err != nil {
			return err
		}

		if settings.Locale != "" {
			c.DefaultLocale = settings.Locale
		}

		if len(settings.FormatFiles) > 0 {
			c.Loader = NewFileLoader(settings.FormatFiles...)
		}

		if settings.Debug && c.Logger == nil {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("localize: build logger: %w", err)
			}
			c.Logger = logger
		}
		return nil
	}
}
