package localize

import (
	"fmt"
	"strings"
)

// FieldType is the declared semantic type of a record field
type FieldType int

const (
	FieldOpaque FieldType = iota
	FieldDate
	FieldDateTime
	FieldNumeric
)

func (t FieldType) String() string {
	switch t {
	case FieldDate:
		return "date"
	case FieldDateTime:
		return "datetime"
	case FieldNumeric:
		return "numeric"
	default:
		return "opaque"
	}
}

// ParseFieldType maps a declared type name to a FieldType
func ParseFieldType(name string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date":
		return FieldDate, nil
	case "datetime", "timestamp":
		return FieldDateTime, nil
	case "numeric", "number", "decimal", "float":
		return FieldNumeric, nil
	case "", "opaque", "string", "text":
		return FieldOpaque, nil
	default:
		return FieldOpaque, fmt.Errorf("localize: unknown field type %q", name)
	}
}

// Schema declares the semantic type of each field by name. Fields that are
// not listed are opaque.
type Schema map[string]FieldType

// Type returns the declared type for field
func (s Schema) Type(field string) FieldType {
	if s == nil {
		return FieldOpaque
	}
	return s[field]
}

// FormatName identifies one of the named patterns of a FormatSpec
type FormatName string

const (
	FormatShort           FormatName = "short"
	FormatFull            FormatName = "full"
	FormatLiteral         FormatName = "literal"
	FormatLiteralWithTime FormatName = "literalWithTime"
)

// NumberFormat holds the separators used for plain numbers
type NumberFormat struct {
	DecimalSep   string `json:"decimal_separator" yaml:"decimal_separator" toml:"decimal_separator"`
	ThousandsSep string `json:"thousands_separator" yaml:"thousands_separator" toml:"thousands_separator"`
}

// CurrencyFormat holds monetary separators and symbol placement
type CurrencyFormat struct {
	DecimalSep   string `json:"decimal_separator" yaml:"decimal_separator" toml:"decimal_separator"`
	ThousandsSep string `json:"thousands_separator" yaml:"thousands_separator" toml:"thousands_separator"`
	Symbol       string `json:"symbol" yaml:"symbol" toml:"symbol"`
	Code         string `json:"code" yaml:"code" toml:"code"`
	// Position is "before" (default) or "after"
	Position string `json:"position" yaml:"position" toml:"position"`
}

// FormatSpec is the bundle of patterns for one locale. Date patterns use
// strftime directives.
type FormatSpec struct {
	Short           string         `json:"short" yaml:"short" toml:"short"`
	Full            string         `json:"full" yaml:"full" toml:"full"`
	Literal         string         `json:"literal" yaml:"literal" toml:"literal"`
	LiteralWithTime string         `json:"literal_with_time" yaml:"literal_with_time" toml:"literal_with_time"`
	Number          NumberFormat   `json:"number" yaml:"number" toml:"number"`
	Currency        CurrencyFormat `json:"currency" yaml:"currency" toml:"currency"`
	MonthNames      []string       `json:"month_names" yaml:"month_names" toml:"month_names"`
	ShortMonthNames []string       `json:"short_month_names" yaml:"short_month_names" toml:"short_month_names"`
	DayNames        []string       `json:"day_names" yaml:"day_names" toml:"day_names"`
	ShortDayNames   []string       `json:"short_day_names" yaml:"short_day_names" toml:"short_day_names"`
}

// Validate checks that every required pattern is present
func (s FormatSpec) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Short) == "" {
		missing = append(missing, string(FormatShort))
	}
	if strings.TrimSpace(s.Full) == "" {
		missing = append(missing, string(FormatFull))
	}
	if strings.TrimSpace(s.Literal) == "" {
		missing = append(missing, string(FormatLiteral))
	}
	if strings.TrimSpace(s.LiteralWithTime) == "" {
		missing = append(missing, string(FormatLiteralWithTime))
	}
	if s.Number.DecimalSep == "" {
		missing = append(missing, "number.decimal_separator")
	}
	if s.Currency.Symbol == "" && s.Currency.Code == "" {
		missing = append(missing, "currency.symbol")
	}
	if len(s.MonthNames) != 0 && len(s.MonthNames) != 12 {
		return fmt.Errorf("month_names must list 12 entries, got %d", len(s.MonthNames))
	}
	if len(s.DayNames) != 0 && len(s.DayNames) != 7 {
		return fmt.Errorf("day_names must list 7 entries, got %d", len(s.DayNames))
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Pattern returns the pattern registered under name
func (s FormatSpec) Pattern(name FormatName) (string, bool) {
	switch name {
	case FormatShort:
		return s.Short, s.Short != ""
	case FormatFull:
		return s.Full, s.Full != ""
	case FormatLiteral:
		return s.Literal, s.Literal != ""
	case FormatLiteralWithTime:
		return s.LiteralWithTime, s.LiteralWithTime != ""
	default:
		return "", false
	}
}

// Clone returns a deep copy of the bundle
func (s FormatSpec) Clone() FormatSpec {
	out := s
	out.MonthNames = cloneStrings(s.MonthNames)
	out.ShortMonthNames = cloneStrings(s.ShortMonthNames)
	out.DayNames = cloneStrings(s.DayNames)
	out.ShortDayNames = cloneStrings(s.ShortDayNames)
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
