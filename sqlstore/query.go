package sqlstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-localize"
)

var allowedOperators = map[string]string{
	"":     "=",
	"=":    "=",
	"!=":   "!=",
	"<>":   "!=",
	"<":    "<",
	"<=":   "<=",
	">":    ">",
	">=":   ">=",
	"LIKE": "LIKE",
}

// splitCriterion separates "Model.field op" into field and operator
func splitCriterion(key string) (string, string) {
	key = strings.TrimSpace(key)
	field, op, _ := strings.Cut(key, " ")
	if idx := strings.LastIndex(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	return field, strings.ToUpper(strings.TrimSpace(op))
}

// buildWhere renders criteria as a WHERE clause. NoMatch criteria become an
// always-false condition.
func (s *Store) buildWhere(criteria localize.Criteria) (string, []any, error) {
	if len(criteria) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	clauses := make([]string, 0, len(keys))
	var args []any

	for _, key := range keys {
		field, op := splitCriterion(key)
		if !s.hasColumn(field) {
			return "", nil, fmt.Errorf("sqlstore: unknown column %q", field)
		}
		sqlOp, ok := allowedOperators[op]
		if !ok {
			return "", nil, fmt.Errorf("sqlstore: unsupported operator %q", op)
		}

		value := criteria[key]
		switch v := value.(type) {
		case localize.NoMatch, *localize.NoMatch:
			clauses = append(clauses, "1 = 0")
		case nil:
			if sqlOp == "!=" {
				clauses = append(clauses, quoteIdent(field)+" IS NOT NULL")
			} else {
				clauses = append(clauses, quoteIdent(field)+" IS NULL")
			}
		case []any:
			if len(v) == 0 {
				clauses = append(clauses, "1 = 0")
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(v)), ", ")
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", quoteIdent(field), placeholders))
			args = append(args, v...)
		case []string:
			if len(v) == 0 {
				clauses = append(clauses, "1 = 0")
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(v)), ", ")
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", quoteIdent(field), placeholders))
			for _, item := range v {
				args = append(args, item)
			}
		default:
			clauses = append(clauses, fmt.Sprintf("%s %s ?", quoteIdent(field), sqlOp))
			args = append(args, value)
		}
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
