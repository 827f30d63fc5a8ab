package localize

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != DefaultLocale {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.Platform == nil {
		t.Fatal("expected default platform")
	}
	if cfg.Logger == nil {
		t.Fatal("expected default logger")
	}

	want := []string{"en-US", "es-ES", "pt-BR"}
	if diff := cmp.Diff(want, cfg.FormatTable().Locales()); diff != "" {
		t.Fatalf("Locales mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfigDefaultLocale(t *testing.T) {
	cfg, err := NewConfig(WithDefaultLocale("en_US"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLocale != "en-US" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}

	localizer, err := cfg.BuildLocalizer()
	if err != nil {
		t.Fatalf("BuildLocalizer: %v", err)
	}
	if localizer.Locale() != "en-US" {
		t.Fatalf("localizer locale = %q", localizer.Locale())
	}
}

func TestNewConfigUnknownDefaultLocale(t *testing.T) {
	_, err := NewConfig(WithDefaultLocale("fr-FR"))
	if !errors.Is(err, ErrConfig) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found config error, got %v", err)
	}

	_, err = NewConfig(WithoutBuiltins())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected missing pt-BR without builtins, got %v", err)
	}
}

func TestNewConfigWithFormatSpec(t *testing.T) {
	cfg, err := NewConfig(
		WithoutBuiltins(),
		WithFormatSpec("de_DE", completeSpec()),
		WithFormatSpec("de-DE", FormatSpec{Short: "%Y-%m-%d"}),
		WithDefaultLocale("de-DE"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	short, err := cfg.FormatTable().Lookup("de-DE", FormatShort)
	if err != nil || short != "%Y-%m-%d" {
		t.Fatalf("Lookup short = %q,%v", short, err)
	}
	full, _ := cfg.FormatTable().Lookup("de-DE", FormatFull)
	if full != "%d.%m.%Y %H:%M:%S" {
		t.Fatalf("merge dropped full pattern: %q", full)
	}

	if diff := cmp.Diff([]string{"de-DE"}, cfg.FormatTable().Locales()); diff != "" {
		t.Fatalf("Locales mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfigRejectsIncompleteBundle(t *testing.T) {
	_, err := NewConfig(WithFormatSpec("de-DE", FormatSpec{Short: "%d.%m.%Y"}))
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}

	if _, err := NewConfig(WithFormatSpec(" ", completeSpec())); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig for empty locale, got %v", err)
	}
}

func TestNewConfigLoaderError(t *testing.T) {
	loadErr := errors.New("boom")
	loader := LoaderFunc(func() (Formats, error) {
		return nil, loadErr
	})

	if _, err := NewConfig(WithLoader(loader)); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestNewConfigLoaderOverridesBuiltin(t *testing.T) {
	loader := LoaderFunc(func() (Formats, error) {
		return Formats{"en_US": {Currency: CurrencyFormat{Symbol: "US$"}}}, nil
	})

	cfg, err := NewConfig(WithLoader(loader), WithDefaultLocale("en-US"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	localizer, err := cfg.BuildLocalizer()
	if err != nil {
		t.Fatalf("BuildLocalizer: %v", err)
	}
	got, err := localizer.Currency(12.5)
	if err != nil || got != "US$ 12.50" {
		t.Fatalf("Currency = %q,%v", got, err)
	}
}

func TestConfigWithPlatform(t *testing.T) {
	rejectAll := PlatformFunc(func(string) error { return errors.New("unsupported") })

	cfg, err := NewConfig(WithPlatform(rejectAll))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if _, err := cfg.BuildLocalizer(); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected platform rejection, got %v", err)
	}
}

func TestConfigBuildInterceptor(t *testing.T) {
	var fields []string
	hook := HookFuncs{AfterFunc: func(ctx *HookContext) {
		fields = append(fields, ctx.Field)
	}}

	cfg, err := NewConfig(
		WithLogger(zap.NewNop()),
		WithHooks(hook),
		WithNumberParsing(NumberOptions{Thousands: false}),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	interceptor := cfg.BuildInterceptor(Schema{"salary": FieldNumeric})
	record := Record{"salary": "1.234,56"}
	if err := interceptor.BeforeSave(mustContext(t, "pt-BR"), record); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}

	if record["salary"] != "1.234,56" {
		t.Fatalf("expected grouping to be kept without thousands parsing, got %v", record["salary"])
	}
	if diff := cmp.Diff([]string{"salary"}, fields); diff != "" {
		t.Fatalf("hook fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNilConfig(t *testing.T) {
	var cfg *Config

	if cfg.FormatTable() != nil {
		t.Fatal("expected nil table")
	}
	if _, err := cfg.BuildLocalizer(); err == nil {
		t.Fatal("expected error from nil config")
	}
	if cfg.BuildInterceptor(nil) == nil {
		t.Fatal("expected interceptor from nil config")
	}
}
