package localize

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Record is an in-flight row keyed by field name, mutated in place
type Record = map[string]any

// Criteria is an in-flight query filter keyed by field name, mutated in place.
// Keys may carry a model prefix or an operator suffix: "Employee.birthday >=".
type Criteria = map[string]any

// NoMatch replaces a criterion whose value can never match, such as an
// impossible date. Hosts must translate it to an always-false condition.
type NoMatch struct {
	Field string
	Raw   any
}

// IsNoMatch reports whether value is a NoMatch marker
func IsNoMatch(value any) bool {
	switch value.(type) {
	case NoMatch, *NoMatch:
		return true
	default:
		return false
	}
}

// Interceptor converts declared fields of records and criteria between
// localized and canonical form. It keeps no state between passes.
type Interceptor struct {
	schema Schema
	logger *zap.Logger
	hooks  []Hook
	number NumberOptions
}

type InterceptorOption func(*Interceptor)

// WithInterceptorLogger sets the logger, defaults to zap.NewNop
func WithInterceptorLogger(logger *zap.Logger) InterceptorOption {
	return func(i *Interceptor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithInterceptorHooks registers lifecycle observers
func WithInterceptorHooks(hooks ...Hook) InterceptorOption {
	return func(i *Interceptor) {
		i.hooks = append(i.hooks, filterHooks(hooks)...)
	}
}

// WithNumberOptions replaces the options used for numeric fields
func WithNumberOptions(opts NumberOptions) InterceptorOption {
	return func(i *Interceptor) {
		i.number = opts
	}
}

// NewInterceptor builds an Interceptor for schema. Numeric fields strip
// thousands grouping by default.
func NewInterceptor(schema Schema, opts ...InterceptorOption) *Interceptor {
	declared := make(Schema, len(schema))
	for field, typ := range schema {
		declared[field] = typ
	}

	i := &Interceptor{
		schema: declared,
		logger: zap.NewNop(),
		number: NumberOptions{Thousands: true},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i
}

// Schema returns a copy of the declared field types
func (i *Interceptor) Schema() Schema {
	out := make(Schema, len(i.schema))
	for field, typ := range i.schema {
		out[field] = typ
	}
	return out
}

// TypeOf resolves the declared type of a record key or criteria key
func (i *Interceptor) TypeOf(key string) FieldType {
	if typ, ok := i.schema[key]; ok {
		return typ
	}
	return i.schema.Type(criterionField(key))
}

// criterionField strips an operator suffix and a model prefix from key
func criterionField(key string) string {
	key = strings.TrimSpace(key)
	if idx := strings.IndexAny(key, " \t"); idx > 0 {
		key = key[:idx]
	}
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		key = key[idx+1:]
	}
	return key
}

// BeforeQuery converts declared criteria to canonical form. A date that
// cannot be read is replaced with NoMatch so the query returns no rows.
func (i *Interceptor) BeforeQuery(lc LocaleContext, criteria Criteria) error {
	if err := lc.valid(); err != nil {
		return err
	}

	for key, raw := range criteria {
		typ := i.TypeOf(key)
		if typ == FieldOpaque || raw == nil || IsNoMatch(raw) {
			continue
		}

		if values, ok := asList(raw); ok {
			criteria[key] = i.convertList(lc, key, typ, raw, values)
			continue
		}

		value, err := i.convertField(lc, EventBeforeQuery, key, typ, raw, criteria)
		if errors.Is(err, ErrInvalidDate) {
			i.logger.Debug("criterion can never match",
				zap.String("field", key),
				zap.String("locale", lc.locale),
				zap.Any("value", raw),
				zap.Error(err))
			criteria[key] = NoMatch{Field: key, Raw: raw}
			continue
		}
		if err != nil {
			return err
		}
		criteria[key] = value
	}
	return nil
}

func (i *Interceptor) convertList(lc LocaleContext, key string, typ FieldType, raw any, values []any) any {
	if len(values) == 0 {
		return raw
	}

	kept := make([]any, 0, len(values))
	for _, element := range values {
		value, err := i.convertField(lc, EventBeforeQuery, key, typ, element, nil)
		if err != nil {
			i.logger.Debug("dropping criterion element",
				zap.String("field", key),
				zap.Any("value", element),
				zap.Error(err))
			continue
		}
		kept = append(kept, value)
	}

	if len(kept) == 0 {
		return NoMatch{Field: key, Raw: raw}
	}
	return kept
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for idx, s := range v {
			out[idx] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// BeforeSave converts the declared fields of record in place. Dates that
// cannot be read are left untouched for the host validation to reject.
func (i *Interceptor) BeforeSave(lc LocaleContext, record Record) error {
	if err := lc.valid(); err != nil {
		return err
	}

	for key, raw := range record {
		typ := i.TypeOf(key)
		if typ == FieldOpaque || raw == nil {
			continue
		}

		value, err := i.convertField(lc, EventBeforeSave, key, typ, raw, record)
		if errors.Is(err, ErrInvalidDate) {
			i.logger.Debug("leaving unreadable date for validation",
				zap.String("field", key),
				zap.String("locale", lc.locale),
				zap.Any("value", raw))
			continue
		}
		if err != nil {
			return err
		}
		record[key] = value
	}
	return nil
}

// BeforeSaveAll converts every record independently
func (i *Interceptor) BeforeSaveAll(lc LocaleContext, records []Record) error {
	if err := lc.valid(); err != nil {
		return err
	}

	var errs []error
	for _, record := range records {
		if record == nil {
			continue
		}
		if err := i.BeforeSave(lc, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AfterFind acknowledges a fetched row. Rendering for display is done on
// demand with the Render functions.
func (i *Interceptor) AfterFind(lc LocaleContext, record Record) {
	i.acknowledge(lc, EventAfterFind, record)
}

// AfterSave acknowledges a persisted row
func (i *Interceptor) AfterSave(lc LocaleContext, record Record) {
	i.acknowledge(lc, EventAfterSave, record)
}

func (i *Interceptor) acknowledge(lc LocaleContext, event Event, record Record) {
	if len(i.hooks) == 0 {
		return
	}

	ctx := &HookContext{Event: event, Locale: lc.locale, Record: record}
	for _, hook := range i.hooks {
		hook.Before(ctx)
	}
	for _, hook := range i.hooks {
		hook.After(ctx)
	}
}

func (i *Interceptor) convertField(lc LocaleContext, event Event, key string, typ FieldType, raw any, record map[string]any) (any, error) {
	ctx := &HookContext{
		Event:  event,
		Locale: lc.locale,
		Field:  key,
		Type:   typ,
		Raw:    raw,
		Value:  raw,
		Record: record,
	}

	for _, hook := range i.hooks {
		hook.Before(ctx)
	}

	ctx.Value, ctx.Converted, ctx.Err = i.convert(lc, key, typ, raw)

	for _, hook := range i.hooks {
		hook.After(ctx)
	}

	return ctx.Value, ctx.Err
}

func (i *Interceptor) convert(lc LocaleContext, key string, typ FieldType, raw any) (any, bool, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, false, nil
	}

	switch typ {
	case FieldDate, FieldDateTime:
		out, err := ParseTemporal(lc, typ, s)
		if err != nil {
			return raw, false, err
		}
		return out, true, nil
	case FieldNumeric:
		result := ParseNumber(lc, s, i.number)
		if !result.Converted {
			i.logger.Debug("numeric value passed through",
				zap.String("field", key),
				zap.String("locale", lc.locale),
				zap.String("value", s))
			return raw, false, nil
		}
		return result.Canonical, true, nil
	default:
		return raw, false, nil
	}
}
