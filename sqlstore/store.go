package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-localize"
	"go.uber.org/zap"
)

// ErrValidation marks rows rejected before they reach the database
var ErrValidation = errors.New("sqlstore: validation failed")

// ValidationError reports a field whose value is not in canonical form after conversion
type ValidationError struct {
	Field string
	Type  localize.FieldType
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sqlstore: field %q: %v is not a valid %s", e.Field, e.Value, e.Type)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	canonicalDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	canonicalDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// Store persists records of one table
type Store struct {
	db          *sql.DB
	table       string
	key         string
	columns     []string
	interceptor *localize.Interceptor
	logger      *zap.Logger
}

type Option func(*Store)

// WithKey sets the primary key column, "id" by default
func WithKey(column string) Option {
	return func(s *Store) {
		if column != "" {
			s.key = column
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a Store over table with the given columns. The interceptor
// schema declares which columns are converted.
func New(db *sql.DB, table string, columns []string, interceptor *localize.Interceptor, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, errors.New("sqlstore: nil db")
	}
	if table == "" || len(columns) == 0 {
		return nil, errors.New("sqlstore: table and columns are required")
	}
	if interceptor == nil {
		interceptor = localize.NewInterceptor(nil)
	}

	s := &Store{
		db:          db,
		table:       table,
		key:         "id",
		columns:     append([]string(nil), columns...),
		interceptor: interceptor,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if !s.hasColumn(s.key) {
		return nil, fmt.Errorf("sqlstore: key column %q not in columns", s.key)
	}
	return s, nil
}

func (s *Store) hasColumn(name string) bool {
	for _, column := range s.columns {
		if column == name {
			return true
		}
	}
	return false
}

// Find returns the rows matching criteria, ordered by key. Criteria values
// are converted from the locale in lc; the caller's map is left untouched.
func (s *Store) Find(ctx context.Context, lc localize.LocaleContext, criteria localize.Criteria) ([]localize.Record, error) {
	filter := cloneMap(criteria)
	if err := s.interceptor.BeforeQuery(lc, filter); err != nil {
		return nil, err
	}

	where, args, err := s.buildWhere(filter)
	if err != nil {
		return nil, err
	}

	quoted := make([]string, len(s.columns))
	for i, column := range s.columns {
		quoted[i] = quoteIdent(column)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		strings.Join(quoted, ", "), quoteIdent(s.table), where, quoteIdent(s.key))

	s.logger.Debug("find", zap.String("query", query), zap.Int("args", len(args)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: find: %w", err)
	}
	defer rows.Close()

	var out []localize.Record
	for rows.Next() {
		values := make([]any, len(s.columns))
		targets := make([]any, len(s.columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("sqlstore: scan: %w", err)
		}

		record := make(localize.Record, len(s.columns))
		for i, column := range s.columns {
			record[column] = s.normalize(column, values[i])
		}
		s.interceptor.AfterFind(lc, record)
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: rows: %w", err)
	}
	return out, nil
}

// Save converts and upserts one record
func (s *Store) Save(ctx context.Context, lc localize.LocaleContext, record localize.Record) error {
	row := cloneMap(record)
	if err := s.interceptor.BeforeSave(lc, row); err != nil {
		return err
	}
	if err := s.validate(row); err != nil {
		return err
	}

	if err := s.upsert(ctx, s.db, row); err != nil {
		return err
	}
	s.interceptor.AfterSave(lc, row)
	return nil
}

// SaveAll converts every record independently, then writes them in one
// transaction. Any invalid record aborts the whole batch.
func (s *Store) SaveAll(ctx context.Context, lc localize.LocaleContext, records []localize.Record) error {
	rows := make([]localize.Record, 0, len(records))
	for _, record := range records {
		rows = append(rows, cloneMap(record))
	}

	if err := s.interceptor.BeforeSaveAll(lc, rows); err != nil {
		return err
	}

	var errs []error
	for _, row := range rows {
		if err := s.validate(row); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin: %w", err)
	}

	for _, row := range rows {
		if err := s.upsert(ctx, tx, row); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit: %w", err)
	}

	for _, row := range rows {
		s.interceptor.AfterSave(lc, row)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) upsert(ctx context.Context, db execer, row localize.Record) error {
	columns := make([]string, 0, len(row))
	args := make([]any, 0, len(row))
	updates := make([]string, 0, len(row))

	for _, column := range s.columns {
		value, ok := row[column]
		if !ok {
			continue
		}
		columns = append(columns, quoteIdent(column))
		args = append(args, s.bindValue(column, value))
		if column != s.key {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", quoteIdent(column), quoteIdent(column)))
		}
	}

	if len(columns) == 0 {
		return fmt.Errorf("%w: empty record", ErrValidation)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(s.table), strings.Join(columns, ", "), placeholders)

	if _, hasKey := row[s.key]; hasKey {
		if len(updates) == 0 {
			query += fmt.Sprintf(" ON CONFLICT(%s) DO NOTHING", quoteIdent(s.key))
		} else {
			query += fmt.Sprintf(" ON CONFLICT(%s) DO UPDATE SET %s", quoteIdent(s.key), strings.Join(updates, ", "))
		}
	}

	s.logger.Debug("save", zap.String("query", query))

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlstore: save: %w", err)
	}
	return nil
}

// validate plays the role of the host model validation: converted fields
// must be canonical.
func (s *Store) validate(row localize.Record) error {
	for field, value := range row {
		typ := s.interceptor.TypeOf(field)
		str, isString := value.(string)
		if typ == localize.FieldOpaque || value == nil || !isString || str == "" {
			continue
		}

		var ok bool
		switch typ {
		case localize.FieldDate:
			ok = canonicalDate.MatchString(str)
		case localize.FieldDateTime:
			ok = canonicalDateTime.MatchString(str)
		case localize.FieldNumeric:
			_, err := strconv.ParseFloat(str, 64)
			ok = err == nil
		}
		if !ok {
			return &ValidationError{Field: field, Type: typ, Value: value}
		}
	}
	return nil
}

// bindValue maps the empty null-date sentinel to NULL
func (s *Store) bindValue(column string, value any) any {
	typ := s.interceptor.TypeOf(column)
	if str, ok := value.(string); ok && str == "" && typ != localize.FieldOpaque {
		return nil
	}
	return value
}

// normalize turns driver values back into canonical form
func (s *Store) normalize(column string, value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		if s.interceptor.TypeOf(column) == localize.FieldDateTime {
			return v.Format("2006-01-02 15:04:05")
		}
		return v.Format("2006-01-02")
	default:
		return value
	}
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
