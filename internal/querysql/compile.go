// Package querysql compiles the query IR to parameterized SQLite SQL.
//
// It is the reference storage backend: the engine itself only produces
// IR, and any backend that can walk the sealed predicate tree can stand
// in for this one.
package querysql

import (
	"fmt"
	"strings"

	"github.com/rgrange/sift/internal/queryir"
)

// Compile converts an assembled query to parameterized SQL.
// Returns (sql, params, error).
//
// Values are always parameterized, never interpolated, and every query
// carries an ORDER BY on the root primary key so result order is
// deterministic across runs.
func Compile(q *queryir.Query) (string, []any, error) {
	if q == nil {
		return "", nil, fmt.Errorf("cannot compile nil query")
	}

	root := q.Root()
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s.* FROM %s", root.Table, root.Table)

	for _, hop := range q.Hops() {
		fmt.Fprintf(&b, " INNER JOIN %s ON %s.%s = %s.%s",
			hop.Target.Table,
			hop.Parent.Table, hop.Relation.Column,
			hop.Target.Table, hop.Target.PrimaryKey)
	}

	var params []any
	if conjuncts := q.Predicates(); len(conjuncts) > 0 {
		parts := make([]string, 0, len(conjuncts))
		for _, p := range conjuncts {
			sql, ps, err := compilePredicate(p)
			if err != nil {
				return "", nil, fmt.Errorf("compile where: %w", err)
			}
			parts = append(parts, sql)
			params = append(params, ps...)
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(parts, " AND "))
	}

	fmt.Fprintf(&b, " ORDER BY %s.%s ASC", root.Table, root.PrimaryKey)

	return b.String(), params, nil
}

// compilePredicate compiles one predicate tree node to a WHERE fragment.
func compilePredicate(p queryir.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case queryir.Compare:
		return compileCompare(pred)
	case *queryir.Compare:
		return compileCompare(*pred)
	case queryir.Match:
		return compileMatch(pred)
	case *queryir.Match:
		return compileMatch(*pred)
	case queryir.And:
		return compileGroup(pred.Predicates, " AND ", "1 = 1")
	case *queryir.And:
		return compileGroup(pred.Predicates, " AND ", "1 = 1")
	case queryir.Or:
		return compileGroup(pred.Predicates, " OR ", "1 = 0")
	case *queryir.Or:
		return compileGroup(pred.Predicates, " OR ", "1 = 0")
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileCompare(c queryir.Compare) (string, []any, error) {
	sql := fmt.Sprintf("%s.%s %s ?", c.Column.Table, c.Column.Name, c.Op)
	return sql, []any{c.Value}, nil
}

// compileMatch compiles a pattern predicate to LIKE with an explicit
// escape character, so literal %, _ and \ in the user's value match
// themselves.
func compileMatch(m queryir.Match) (string, []any, error) {
	escaped := escapeLike(m.Value)

	var pattern string
	switch m.Mode {
	case queryir.MatchPrefix:
		pattern = escaped + "%"
	case queryir.MatchSubstring:
		pattern = "%" + escaped + "%"
	default:
		return "", nil, fmt.Errorf("unsupported match mode: %d", m.Mode)
	}

	sql := fmt.Sprintf("%s.%s LIKE ? ESCAPE '\\'", m.Column.Table, m.Column.Name)
	return sql, []any{pattern}, nil
}

// compileGroup compiles And/Or children, joined by sep. empty is the
// fragment for a group with no children (vacuous truth for AND, vacuous
// falsity for OR).
func compileGroup(preds []queryir.Predicate, sep, empty string) (string, []any, error) {
	if len(preds) == 0 {
		return empty, nil, nil
	}

	var parts []string
	var params []any
	for _, p := range preds {
		sql, ps, err := compilePredicate(p)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, ps...)
	}

	if len(parts) == 1 {
		return parts[0], params, nil
	}
	return "(" + strings.Join(parts, sep) + ")", params, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
