package localize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPrecision is the number of decimals used when none is given
const DefaultPrecision = 2

var (
	integerPattern   = regexp.MustCompile(`^[+-]?\d+$`)
	canonicalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	groupingPatterns = map[string]*regexp.Regexp{}
)

// NumberOptions tunes ParseNumber. Empty separators fall back to the locale.
type NumberOptions struct {
	Precision    *int
	Thousands    bool
	DecimalSep   string
	ThousandsSep string
}

// Precision is a helper for NumberOptions.Precision and RenderNumber
func Precision(decimals int) *int {
	return &decimals
}

// NumberResult is the outcome of ParseNumber. When Converted is false the
// value could not be read and Canonical holds the raw input unchanged.
type NumberResult struct {
	Raw       string
	Canonical string
	Value     float64
	Converted bool
}

// Output returns the value to store: the canonical form, or the raw input when not converted
func (r NumberResult) Output() string {
	if r.Converted {
		return r.Canonical
	}
	return r.Raw
}

func passthrough(raw string) NumberResult {
	return NumberResult{Raw: raw, Canonical: raw}
}

// ParseNumber converts a localized decimal to its canonical form ('.' decimal
// separator, no grouping). Integer-looking input is kept as-is. Input that
// cannot be read is passed through unchanged with Converted=false.
func ParseNumber(lc LocaleContext, value string, opts NumberOptions) NumberResult {
	s := strings.TrimSpace(value)
	if s == "" {
		return passthrough(value)
	}

	if integerPattern.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return passthrough(value)
		}
		return NumberResult{Raw: value, Canonical: s, Value: v, Converted: true}
	}

	decimalSep, thousandsSep := numberSeparators(lc, opts)

	if opts.Thousands && thousandsSep != "" && thousandsSep != decimalSep {
		if strings.Contains(s, decimalSep) || groupingPattern(thousandsSep).MatchString(s) {
			s = strings.ReplaceAll(s, thousandsSep, "")
		}
	}

	if decimalSep != "." && strings.Contains(s, decimalSep) {
		if strings.Count(s, decimalSep) > 1 || strings.Contains(s, ".") {
			return passthrough(value)
		}
		s = strings.Replace(s, decimalSep, ".", 1)
	}

	if !canonicalPattern.MatchString(s) {
		return passthrough(value)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return passthrough(value)
	}

	precision := DefaultPrecision
	if opts.Precision != nil && *opts.Precision >= 0 {
		precision = *opts.Precision
	}

	return NumberResult{
		Raw:       value,
		Canonical: strconv.FormatFloat(v, 'f', precision, 64),
		Value:     v,
		Converted: true,
	}
}

func numberSeparators(lc LocaleContext, opts NumberOptions) (string, string) {
	decimalSep := opts.DecimalSep
	if decimalSep == "" {
		decimalSep = lc.spec.Number.DecimalSep
	}
	if decimalSep == "" {
		decimalSep = "."
	}

	thousandsSep := opts.ThousandsSep
	if thousandsSep == "" {
		thousandsSep = lc.spec.Number.ThousandsSep
	}
	return decimalSep, thousandsSep
}

func groupingPattern(sep string) *regexp.Regexp {
	if re, ok := groupingPatterns[sep]; ok {
		return re
	}
	return regexp.MustCompile(`^[+-]?\d{1,3}(` + regexp.QuoteMeta(sep) + `\d{3})+$`)
}

func init() {
	for _, sep := range []string{".", ",", " ", "'", " "} {
		groupingPatterns[sep] = regexp.MustCompile(`^[+-]?\d{1,3}(` + regexp.QuoteMeta(sep) + `\d{3})+$`)
	}
}

// RenderNumber formats a canonical number with the locale separators. A nil
// precision means two decimals. Values that are not numbers are returned as-is.
func RenderNumber(lc LocaleContext, value any, precision *int, thousands bool) string {
	v, ok := toFloat(value)
	if !ok {
		return fmt.Sprint(value)
	}

	decimals := DefaultPrecision
	if precision != nil && *precision >= 0 {
		decimals = *precision
	}

	nf := lc.spec.Number
	if nf.DecimalSep == "" {
		return formatWithPrinter(lc, v, decimals, thousands)
	}

	thousandsSep := ""
	if thousands {
		thousandsSep = nf.ThousandsSep
	}
	return formatDecimal(v, decimals, nf.DecimalSep, thousandsSep)
}

// RenderCurrency formats a canonical amount with two decimals, grouping and
// the locale currency symbol. Values that are not numbers are returned as-is.
func RenderCurrency(lc LocaleContext, value any) string {
	v, ok := toFloat(value)
	if !ok {
		return fmt.Sprint(value)
	}

	cf := lc.spec.Currency
	decimalSep := firstNonEmpty(cf.DecimalSep, lc.spec.Number.DecimalSep)
	thousandsSep := firstNonEmpty(cf.ThousandsSep, lc.spec.Number.ThousandsSep)

	var amount string
	if decimalSep == "" {
		amount = formatWithPrinter(lc, v, 2, true)
	} else {
		amount = formatDecimal(v, 2, decimalSep, thousandsSep)
	}

	symbol := lc.symbol
	if symbol == "" {
		return amount
	}
	if cf.Position == "after" {
		return amount + " " + symbol
	}
	return symbol + " " + amount
}

// formatDecimal renders value with fixed decimals and custom separators
func formatDecimal(value float64, decimals int, decimalSep, thousandsSep string) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	integerPart, fraction, hasFraction := strings.Cut(formatted, ".")

	if thousandsSep != "" && len(integerPart) > 3 {
		var b strings.Builder
		for i, digit := range integerPart {
			if i > 0 && (len(integerPart)-i)%3 == 0 {
				b.WriteString(thousandsSep)
			}
			b.WriteRune(digit)
		}
		integerPart = b.String()
	}

	if !hasFraction {
		return sign + integerPart
	}
	return sign + integerPart + decimalSep + fraction
}

// formatWithPrinter renders through golang.org/x/text when the bundle carries no separators
func formatWithPrinter(lc LocaleContext, value float64, decimals int, thousands bool) string {
	opts := []number.Option{number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)}
	if !thousands {
		opts = append(opts, number.NoSeparator())
	}
	return message.NewPrinter(lc.tag).Sprint(number.Decimal(value, opts...))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if !canonicalPattern.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case []byte:
		return toFloat(string(v))
	default:
		return 0, false
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
