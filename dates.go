package localize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	canonicalDateLayout     = "%04d-%02d-%02d"
	canonicalDateTimeLayout = "%04d-%02d-%02d %02d:%02d:%02d"
)

var isoGrammar = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)

// dateParts holds the fields read by a grammar before range checks
type dateParts struct {
	year, month, day     int
	hour, minute, second int
}

func (p dateParts) valid() bool {
	if p.year < 1 || p.year > 9999 {
		return false
	}
	if p.month < 1 || p.month > 12 {
		return false
	}
	if p.day < 1 || p.day > daysIn(p.year, time.Month(p.month)) {
		return false
	}
	return p.hour >= 0 && p.hour < 24 && p.minute >= 0 && p.minute < 60 && p.second >= 0 && p.second < 60
}

func (p dateParts) canonical(typ FieldType) string {
	if typ == FieldDateTime {
		return fmt.Sprintf(canonicalDateTimeLayout, p.year, p.month, p.day, p.hour, p.minute, p.second)
	}
	return fmt.Sprintf(canonicalDateLayout, p.year, p.month, p.day)
}

func (p dateParts) toTime() time.Time {
	return time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateGrammar reads day, month and year from a fixed field order
type dateGrammar struct {
	re    *regexp.Regexp
	order []byte
}

var localeGrammars sync.Map // short pattern -> *dateGrammar (nil when the pattern has no usable order)

func grammarFor(short string) *dateGrammar {
	if cached, ok := localeGrammars.Load(short); ok {
		return cached.(*dateGrammar)
	}

	grammar := buildGrammar(short)
	actual, _ := localeGrammars.LoadOrStore(short, grammar)
	return actual.(*dateGrammar)
}

func buildGrammar(short string) *dateGrammar {
	order := dateOrder(short)
	if len(order) != 3 {
		return nil
	}

	var b strings.Builder
	b.WriteString("^")
	for i, field := range order {
		if i > 0 {
			b.WriteString(`[/\-.]`)
		}
		if field == 'Y' {
			b.WriteString(`(\d{4}|\d{2})`)
		} else {
			b.WriteString(`(\d{1,2})`)
		}
	}
	b.WriteString(`(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)

	return &dateGrammar{re: regexp.MustCompile(b.String()), order: order}
}

// dateOrder extracts the day/month/year order from a strftime pattern
func dateOrder(pattern string) []byte {
	var order []byte
	seen := make(map[byte]bool, 3)
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		var field byte
		switch pattern[i] {
		case 'd', 'e':
			field = 'd'
		case 'm':
			field = 'm'
		case 'Y', 'y':
			field = 'Y'
		case 'D', 'x':
			// %m/%d/%y
			return []byte{'m', 'd', 'Y'}
		case 'F':
			return []byte{'Y', 'm', 'd'}
		default:
			continue
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		order = append(order, field)
	}
	return order
}

func (g *dateGrammar) match(value string) (dateParts, bool) {
	if g == nil {
		return dateParts{}, false
	}
	m := g.re.FindStringSubmatch(value)
	if m == nil {
		return dateParts{}, false
	}

	var parts dateParts
	for i, field := range g.order {
		n := atoi(m[i+1])
		switch field {
		case 'd':
			parts.day = n
		case 'm':
			parts.month = n
		case 'Y':
			if len(m[i+1]) == 2 {
				n = pivotYear(n)
			}
			parts.year = n
		}
	}
	readClock(&parts, m[4:7])
	return parts, true
}

func matchISO(value string) (dateParts, bool) {
	m := isoGrammar.FindStringSubmatch(value)
	if m == nil {
		return dateParts{}, false
	}
	parts := dateParts{year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3])}
	readClock(&parts, m[4:7])
	return parts, true
}

func readClock(parts *dateParts, clock []string) {
	if len(clock) < 3 || clock[0] == "" {
		return
	}
	parts.hour = atoi(clock[0])
	parts.minute = atoi(clock[1])
	parts.second = atoi(clock[2])
}

// pivotYear maps two digit years: 69-99 to 19xx, 00-68 to 20xx
func pivotYear(year int) int {
	if year >= 69 {
		return 1900 + year
	}
	return 2000 + year
}

func atoi(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return n
}

// IsNullDate reports whether value is an empty or all-zero date such as
// 0000-00-00 or 00/00/0000 00:00:00.
func IsNullDate(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}

	sawDigit := false
	for _, r := range value {
		switch {
		case r == '0':
			sawDigit = true
		case r >= '1' && r <= '9':
			return false
		case strings.ContainsRune("-/.: T", r):
		default:
			return false
		}
	}
	return sawDigit
}

// ParseDate converts a localized or canonical date to YYYY-MM-DD
func ParseDate(lc LocaleContext, value string) (string, error) {
	return ParseTemporal(lc, FieldDate, value)
}

// ParseDateTime converts a localized or canonical date-time to YYYY-MM-DD HH:MM:SS
func ParseDateTime(lc LocaleContext, value string) (string, error) {
	return ParseTemporal(lc, FieldDateTime, value)
}

// ParseTemporal converts value for a Date or DateTime field. Null dates map to
// the empty string. Values matching no grammar, or matching one with out of
// range fields, return an *InvalidDateError.
func ParseTemporal(lc LocaleContext, typ FieldType, value string) (string, error) {
	if typ != FieldDate && typ != FieldDateTime {
		return "", fmt.Errorf("localize: %s is not a temporal field type", typ)
	}
	if err := lc.valid(); err != nil {
		return "", err
	}

	if IsNullDate(value) {
		return "", nil
	}

	parts, err := parseParts(lc, typ, value)
	if err != nil {
		return "", err
	}
	return parts.canonical(typ), nil
}

func parseParts(lc LocaleContext, typ FieldType, value string) (dateParts, error) {
	trimmed := strings.TrimSpace(value)

	parts, ok := matchISO(trimmed)
	if !ok {
		parts, ok = grammarFor(lc.spec.Short).match(trimmed)
	}
	if !ok || !parts.valid() {
		return dateParts{}, &InvalidDateError{Value: value, Type: typ}
	}
	return parts, nil
}

func parseCanonical(typ FieldType, value string) (time.Time, error) {
	parts, ok := matchISO(strings.TrimSpace(value))
	if !ok || !parts.valid() {
		return time.Time{}, &InvalidDateError{Value: value, Type: typ}
	}
	return parts.toTime(), nil
}
