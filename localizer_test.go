package localize

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func mustContext(t *testing.T, locale string) LocaleContext {
	t.Helper()
	lc, err := MustFormatTable().Context(locale)
	if err != nil {
		t.Fatalf("Context(%q): %v", locale, err)
	}
	return lc
}

func TestNewLocalizerDefaults(t *testing.T) {
	localizer := NewLocalizer(nil)

	if got := localizer.Locale(); got != DefaultLocale {
		t.Fatalf("Locale = %q, want %q", got, DefaultLocale)
	}
	if localizer.Table() == nil {
		t.Fatal("expected default table")
	}

	got, err := localizer.Date("1987-03-01")
	if err != nil || got != "01/03/1987" {
		t.Fatalf("Date = %q,%v", got, err)
	}
}

func TestLocalizerSetLocale(t *testing.T) {
	localizer := NewLocalizer(nil)

	if err := localizer.SetLocale("en_US"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := localizer.Locale(); got != "en-US" {
		t.Fatalf("Locale = %q", got)
	}

	got, err := localizer.Date("1987-03-01")
	if err != nil || got != "03/01/1987" {
		t.Fatalf("Date = %q,%v", got, err)
	}
}

func TestLocalizerSetLocaleFailureKeepsPrevious(t *testing.T) {
	localizer := NewLocalizer(nil, WithLocalizerLocale("en-US"))

	tests := []string{"fr-FR", "", "not a locale!!"}
	for _, locale := range tests {
		err := localizer.SetLocale(locale)
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("SetLocale(%q) = %v, want ErrConfig", locale, err)
		}
		if got := localizer.Locale(); got != "en-US" {
			t.Fatalf("Locale after failed SetLocale(%q) = %q", locale, got)
		}
	}
}

func TestLocalizerPlatformRejection(t *testing.T) {
	unsupported := errors.New("locale not installed")
	platform := PlatformFunc(func(locale string) error {
		if normalizeLocale(locale) == "es-ES" {
			return unsupported
		}
		return nil
	})

	localizer := NewLocalizer(nil, WithLocalizerPlatform(platform))

	err := localizer.SetLocale("es_ES")
	if !errors.Is(err, unsupported) || !errors.Is(err, ErrConfig) {
		t.Fatalf("SetLocale = %v", err)
	}
	if got := localizer.Locale(); got != "pt-BR" {
		t.Fatalf("Locale = %q", got)
	}

	if err := localizer.SetLocale("en-US"); err != nil {
		t.Fatalf("SetLocale(en-US): %v", err)
	}
}

func TestXTextPlatform(t *testing.T) {
	platform := XTextPlatform{}

	for _, locale := range []string{"pt-BR", "pt_BR", "en", "de-DE"} {
		if err := platform.Supports(locale); err != nil {
			t.Fatalf("Supports(%q): %v", locale, err)
		}
	}
	for _, locale := range []string{"und", "not a locale!!"} {
		if err := platform.Supports(locale); err == nil {
			t.Fatalf("Supports(%q) expected error", locale)
		}
	}
}

func TestLocalizerRegister(t *testing.T) {
	localizer := NewLocalizer(nil)

	if err := localizer.Register("de-DE", completeSpec()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := localizer.SetLocale("de_DE"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}

	got, err := localizer.Date("1987-03-01")
	if err != nil || got != "01.03.1987" {
		t.Fatalf("Date = %q,%v", got, err)
	}
}

func TestLocaleContextIsolatedFromLaterSwitches(t *testing.T) {
	localizer := NewLocalizer(nil)

	lc, err := localizer.Context()
	if err != nil {
		t.Fatalf("Context: %v", err)
	}

	if err := localizer.SetLocale("en-US"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}

	if lc.Locale() != "pt-BR" {
		t.Fatalf("snapshot locale changed to %q", lc.Locale())
	}
	got, err := ParseDate(lc, "01/03/1987")
	if err != nil || got != "1987-03-01" {
		t.Fatalf("ParseDate = %q,%v", got, err)
	}
}

func TestLocalizerConcurrentUse(t *testing.T) {
	localizer := NewLocalizer(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			locale := "pt-BR"
			if i%2 == 0 {
				locale = "en-US"
			}
			_ = localizer.SetLocale(locale)
		}(i)
		go func() {
			defer wg.Done()
			lc, err := localizer.Context()
			if err != nil {
				t.Errorf("Context: %v", err)
				return
			}
			if _, err := ParseDate(lc, "2001-01-01"); err != nil {
				t.Errorf("ParseDate: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestNewLocaleContext(t *testing.T) {
	lc, err := NewLocaleContext("de_DE", completeSpec())
	if err != nil {
		t.Fatalf("NewLocaleContext: %v", err)
	}
	if lc.Locale() != "de-DE" || lc.IsZero() {
		t.Fatalf("unexpected context %q", lc.Locale())
	}
	if lc.CurrencySymbol() != "€" {
		t.Fatalf("CurrencySymbol = %q", lc.CurrencySymbol())
	}

	if _, err := NewLocaleContext("de-DE", FormatSpec{}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLocaleContextCurrencySymbol(t *testing.T) {
	tests := map[string]string{
		"pt-BR": "R$",
		"en-US": "$",
		"es-ES": "€",
	}
	for locale, want := range tests {
		if got := mustContext(t, locale).CurrencySymbol(); got != want {
			t.Fatalf("CurrencySymbol(%s) = %q, want %q", locale, got, want)
		}
	}
}

func TestLocaleContextInContext(t *testing.T) {
	if _, ok := LocaleContextFrom(context.Background()); ok {
		t.Fatal("expected no locale context")
	}

	lc := mustContext(t, "en-US")
	ctx := WithLocaleContext(context.Background(), lc)

	got, ok := LocaleContextFrom(ctx)
	if !ok || got.Locale() != "en-US" {
		t.Fatalf("LocaleContextFrom = %q,%v", got.Locale(), ok)
	}
}

func TestZeroLocaleContextFails(t *testing.T) {
	var lc LocaleContext

	if _, err := ParseDate(lc, "01/03/1987"); !errors.Is(err, ErrConfig) {
		t.Fatalf("ParseDate with zero context = %v", err)
	}
	if _, err := RenderDate(lc, "1987-03-01"); !errors.Is(err, ErrConfig) {
		t.Fatalf("RenderDate with zero context = %v", err)
	}
}
