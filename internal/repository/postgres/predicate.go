package postgres

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// predicate is one filter condition written with '?' placeholders and its bound arguments.
type predicate struct {
	clause string
	args   []any
}

type predicates []predicate

func (p *predicates) add(clause string, args ...any) {
	*p = append(*p, predicate{clause: clause, args: args})
}

// where folds the predicates into a single AND-ed condition. It returns an empty string when
// no predicate is present.
func (p predicates) where() (string, []any) {
	if len(p) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(p))
	var args []any
	for _, pred := range p {
		clauses = append(clauses, pred.clause)
		args = append(args, pred.args...)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// paged appends the folded condition, ordering and window to base and numbers the
// placeholders for Postgres.
func (p predicates) paged(base, orderBy string, limit, offset int) (string, []any) {
	where, args := p.where()
	query := base + where + " ORDER BY " + orderBy + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	return sqlx.Rebind(sqlx.DOLLAR, query), args
}

func columnList(alias string, columns []string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = alias + "." + c
	}
	return strings.Join(prefixed, ", ")
}
