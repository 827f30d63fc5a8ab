package localize

import (
	"errors"
	"fmt"
)

// ErrConfig marks locale setup problems: unknown locale, incomplete format bundle.
var ErrConfig = errors.New("localize: configuration error")

// ErrNotFound indicates that a locale or named format is not registered.
var ErrNotFound = errors.New("localize: not found")

// ErrInvalidDate indicates that a value does not match any date grammar.
var ErrInvalidDate = errors.New("localize: invalid date")

// ConfigError reports a configuration failure for a locale
type ConfigError struct {
	Locale string
	Reason string
	Err    error
}

func newConfigError(locale, reason string, err error) *ConfigError {
	return &ConfigError{Locale: locale, Reason: reason, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ErrConfig.Error()
	}
	msg := fmt.Sprintf("localize: locale %q: %s", e.Locale, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// InvalidDateError reports a value that could not be read as a date of the given type
type InvalidDateError struct {
	Value string
	Type  FieldType
}

func (e *InvalidDateError) Error() string {
	if e == nil {
		return ErrInvalidDate.Error()
	}
	return fmt.Sprintf("localize: invalid %s %q", e.Type, e.Value)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
