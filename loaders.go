package localize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Formats maps locale identifiers to bundles
type Formats map[string]FormatSpec

// Loader retrieves the bundles used to seed a FormatTable
type Loader interface {
	Load() (Formats, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Formats, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Formats, error) {
	return fn()
}

// FileLoader reads bundles from .json, .yaml/.yml and .toml files. Each file
// maps locale identifiers to bundles; later files override earlier ones field
// by field.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Formats, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("localize: no loader paths configured")
	}

	result := make(Formats)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localize: read %s: %w", path, err)
		}

		formats, err := decodeFormatsFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("localize: decode %s: %w", path, err)
		}

		for locale, spec := range formats {
			key := normalizeLocale(locale)
			if key == "" {
				return nil, fmt.Errorf("localize: empty locale in %s", path)
			}
			result[key] = mergeFormatSpec(result[key], spec)
		}
	}
	return result, nil
}

func decodeFormatsFile(path string, data []byte) (Formats, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var formats Formats
	switch ext {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&formats); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &formats); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &formats); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(formats) == 0 {
		return nil, errors.New("no locales defined")
	}
	return formats, nil
}

// mergeFormatSpec overlays the non-empty fields of override onto base
func mergeFormatSpec(base, override FormatSpec) FormatSpec {
	out := base.Clone()

	setString(&out.Short, override.Short)
	setString(&out.Full, override.Full)
	setString(&out.Literal, override.Literal)
	setString(&out.LiteralWithTime, override.LiteralWithTime)

	setString(&out.Number.DecimalSep, override.Number.DecimalSep)
	setString(&out.Number.ThousandsSep, override.Number.ThousandsSep)

	setString(&out.Currency.DecimalSep, override.Currency.DecimalSep)
	setString(&out.Currency.ThousandsSep, override.Currency.ThousandsSep)
	setString(&out.Currency.Symbol, override.Currency.Symbol)
	setString(&out.Currency.Code, override.Currency.Code)
	setString(&out.Currency.Position, override.Currency.Position)

	if len(override.MonthNames) > 0 {
		out.MonthNames = cloneStrings(override.MonthNames)
	}
	if len(override.ShortMonthNames) > 0 {
		out.ShortMonthNames = cloneStrings(override.ShortMonthNames)
	}
	if len(override.DayNames) > 0 {
		out.DayNames = cloneStrings(override.DayNames)
	}
	if len(override.ShortDayNames) > 0 {
		out.ShortDayNames = cloneStrings(override.ShortDayNames)
	}
	return out
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
