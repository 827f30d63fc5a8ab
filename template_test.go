package localize

import (
	"strings"
	"testing"
	"text/template"
)

func renderTemplate(t *testing.T, lc LocaleContext, text string, data any) string {
	t.Helper()

	tmpl, err := template.New("test").Funcs(TemplateHelpers(lc)).Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return b.String()
}

func TestTemplateHelpers(t *testing.T) {
	lc := mustContext(t, "pt-BR")
	data := map[string]any{
		"Birthday": "1987-03-01",
		"HiredAt":  "2010-01-02 08:30:15",
		"Salary":   559.0,
		"Total":    "1234567.891",
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"locale", `{{locale}}`, "pt-BR"},
		{"date", `{{format_date .Birthday}}`, "01/03/1987"},
		{"datetime", `{{format_datetime .HiredAt}}`, "02/01/2010 08:30:15"},
		{"datetime without seconds", `{{format_datetime .HiredAt false}}`, "02/01/2010 08:30"},
		{"literal", `{{format_literal .Birthday}}`, "domingo, 01 de março de 1987"},
		{"literal with time", `{{format_literal .HiredAt true}}`, "sábado, 02 de janeiro de 2010, 08:30:15"},
		{"literal override", `{{format_literal_with .Birthday "%B de %Y"}}`, "março de 1987"},
		{"currency", `{{format_currency .Salary}}`, "R$ 559,00"},
		{"number", `{{format_number .Total}}`, "1234567,89"},
		{"number precision", `{{format_number .Total 1}}`, "1234567,9"},
		{"number grouped", `{{format_number_grouped .Total 0}}`, "1.234.568"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderTemplate(t, lc, tt.text, data); got != tt.want {
				t.Fatalf("%s = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTemplateHelpersInvalidDate(t *testing.T) {
	tmpl, err := template.New("test").Funcs(TemplateHelpers(mustContext(t, "pt-BR"))).Parse(`{{format_date .}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, "01/03/1987"); err == nil {
		t.Fatal("expected execution error for non canonical date")
	}
}
