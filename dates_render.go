package localize

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// LiteralOptions tunes RenderLiteral
type LiteralOptions struct {
	// WithTime selects the literalWithTime pattern
	WithTime bool
	// Format overrides the locale pattern entirely
	Format string
}

// RenderDate formats a canonical date with the locale short pattern
func RenderDate(lc LocaleContext, value string) (string, error) {
	return renderNamed(lc, FieldDate, value, FormatShort, nil)
}

// RenderDateTime formats a canonical date-time with the locale full pattern.
// With seconds=false the trailing seconds directive is dropped.
func RenderDateTime(lc LocaleContext, value string, seconds bool) (string, error) {
	var adjust func(string) string
	if !seconds {
		adjust = withoutSeconds
	}
	return renderNamed(lc, FieldDateTime, value, FormatFull, adjust)
}

// RenderLiteral formats a canonical date with the spelled-out pattern.
// opts.Format bypasses the locale pattern lookup.
func RenderLiteral(lc LocaleContext, value string, opts LiteralOptions) (string, error) {
	if opts.Format == "" {
		name := FormatLiteral
		if opts.WithTime {
			name = FormatLiteralWithTime
		}
		return renderNamed(lc, FieldDateTime, value, name, nil)
	}

	if IsNullDate(value) {
		return "", nil
	}
	t, err := parseCanonical(FieldDateTime, value)
	if err != nil {
		return "", err
	}
	return formatPattern(lc.spec, opts.Format, t), nil
}

func renderNamed(lc LocaleContext, typ FieldType, value string, name FormatName, adjust func(string) string) (string, error) {
	if err := lc.valid(); err != nil {
		return "", err
	}
	if IsNullDate(value) {
		return "", nil
	}

	pattern, ok := lc.spec.Pattern(name)
	if !ok {
		return "", newConfigError(lc.locale, "missing format "+string(name), ErrNotFound)
	}
	if adjust != nil {
		pattern = adjust(pattern)
	}

	t, err := parseCanonical(typ, value)
	if err != nil {
		return "", err
	}
	return formatPattern(lc.spec, pattern, t), nil
}

func withoutSeconds(pattern string) string {
	switch {
	case strings.HasSuffix(pattern, ":%S"):
		return strings.TrimSuffix(pattern, ":%S")
	case strings.Contains(pattern, "%T"):
		return strings.Replace(pattern, "%T", "%H:%M", 1)
	default:
		return pattern
	}
}

// formatPattern expands locale month and day names, then hands the pattern to strftime
func formatPattern(spec FormatSpec, pattern string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i == len(pattern)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		directive := pattern[i]
		if name, ok := localizedName(spec, directive, t); ok {
			b.WriteString(strings.ReplaceAll(name, "%", "%%"))
			continue
		}
		b.WriteByte('%')
		b.WriteByte(directive)
	}

	return strftime.Format(b.String(), t)
}

func localizedName(spec FormatSpec, directive byte, t time.Time) (string, bool) {
	switch directive {
	case 'B':
		return pick(spec.MonthNames, int(t.Month())-1)
	case 'b', 'h':
		if name, ok := pick(spec.ShortMonthNames, int(t.Month())-1); ok {
			return name, true
		}
		return abbreviate(pick(spec.MonthNames, int(t.Month())-1))
	case 'A':
		return pick(spec.DayNames, int(t.Weekday()))
	case 'a':
		if name, ok := pick(spec.ShortDayNames, int(t.Weekday())); ok {
			return name, true
		}
		return abbreviate(pick(spec.DayNames, int(t.Weekday())))
	default:
		return "", false
	}
}

func pick(names []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(names) || names[idx] == "" {
		return "", false
	}
	return names[idx], true
}

func abbreviate(name string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes), true
}
