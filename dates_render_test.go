package localize

import (
	"errors"
	"testing"
)

func TestRenderDate(t *testing.T) {
	tests := []struct {
		locale string
		input  string
		want   string
	}{
		{"pt-BR", "1987-03-01", "01/03/1987"},
		{"pt-BR", "1987-03-01 14:05:09", "01/03/1987"},
		{"en-US", "1987-03-01", "03/01/1987"},
		{"es-ES", "1975-04-21", "21/04/1975"},
		{"pt-BR", "", ""},
		{"pt-BR", "0000-00-00", ""},
	}

	for _, tt := range tests {
		got, err := RenderDate(mustContext(t, tt.locale), tt.input)
		if err != nil {
			t.Fatalf("%s: RenderDate(%q): %v", tt.locale, tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("%s: RenderDate(%q) = %q, want %q", tt.locale, tt.input, got, tt.want)
		}
	}
}

func TestRenderDateRejectsLocalizedInput(t *testing.T) {
	_, err := RenderDate(mustContext(t, "pt-BR"), "01/03/1987")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRenderDateTime(t *testing.T) {
	ptBR := mustContext(t, "pt-BR")

	got, err := RenderDateTime(ptBR, "1987-03-01 14:05:09", true)
	if err != nil || got != "01/03/1987 14:05:09" {
		t.Fatalf("RenderDateTime(seconds) = %q,%v", got, err)
	}

	got, err = RenderDateTime(ptBR, "1987-03-01 14:05:09", false)
	if err != nil || got != "01/03/1987 14:05" {
		t.Fatalf("RenderDateTime(no seconds) = %q,%v", got, err)
	}

	got, err = RenderDateTime(mustContext(t, "en-US"), "1987-03-01 09:00:00", true)
	if err != nil || got != "03/01/1987 09:00:00" {
		t.Fatalf("RenderDateTime(en-US) = %q,%v", got, err)
	}
}

func TestRenderLiteral(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		input  string
		opts   LiteralOptions
		want   string
	}{
		{"portuguese", "pt-BR", "1987-03-01", LiteralOptions{}, "domingo, 01 de março de 1987"},
		{"portuguese with time", "pt-BR", "1987-03-01 14:05:09", LiteralOptions{WithTime: true}, "domingo, 01 de março de 1987, 14:05:09"},
		{"spanish", "es-ES", "1975-04-21", LiteralOptions{}, "lunes, 21 de abril de 1975"},
		{"english falls back to strftime names", "en-US", "1987-03-01", LiteralOptions{}, "Sunday, March 01, 1987"},
		{"override", "pt-BR", "1987-03-01", LiteralOptions{Format: "%d de %B"}, "01 de março"},
		{"override short names", "pt-BR", "1987-03-01", LiteralOptions{Format: "%a %d %b"}, "dom 01 mar"},
		{"abbreviated from full names", "es-ES", "1975-04-21", LiteralOptions{Format: "%a %d %b"}, "lun 21 abr"},
		{"literal percent", "pt-BR", "1987-03-01", LiteralOptions{Format: "%d%% de %B"}, "01% de março"},
		{"null date", "pt-BR", "0000-00-00", LiteralOptions{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderLiteral(mustContext(t, tt.locale), tt.input, tt.opts)
			if err != nil {
				t.Fatalf("RenderLiteral(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("RenderLiteral(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderLiteralMissingPattern(t *testing.T) {
	spec := completeSpec()
	lc := newLocaleContext("de-DE", spec)
	lc.spec.Literal = ""

	_, err := RenderLiteral(lc, "1987-03-01", LiteralOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWithoutSeconds(t *testing.T) {
	tests := map[string]string{
		"%d/%m/%Y %H:%M:%S": "%d/%m/%Y %H:%M",
		"%d.%m.%Y %T":       "%d.%m.%Y %H:%M",
		"%d/%m/%Y %H:%M":    "%d/%m/%Y %H:%M",
	}
	for pattern, want := range tests {
		if got := withoutSeconds(pattern); got != want {
			t.Fatalf("withoutSeconds(%q) = %q, want %q", pattern, got, want)
		}
	}
}
