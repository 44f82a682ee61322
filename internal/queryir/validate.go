package queryir

import "fmt"

// ValidationResult contains sanity analysis of an assembled query.
//
// Validation never fails a request; it surfaces constructions that are
// legal but almost certainly unintended, such as an empty Or group
// (always false) or a comparison against a nil value. The CLI prints
// warnings in verbose mode.
type ValidationResult struct {
	// OK is true when no warnings were produced.
	OK bool

	// Warnings lists suspect constructions found in the query.
	Warnings []string
}

// Validate walks a query's predicates and reports suspect constructions.
// It is a pure function with no side effects.
func Validate(q *Query) ValidationResult {
	v := &validator{}
	for _, p := range q.Predicates() {
		v.validate(p)
	}
	return ValidationResult{OK: len(v.warnings) == 0, Warnings: v.warnings}
}

type validator struct {
	warnings []string
}

func (v *validator) warn(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validate(p Predicate) {
	switch pred := p.(type) {
	case Compare:
		if pred.Value == nil {
			v.warn("column %s.%s compared to nil value", pred.Column.Table, pred.Column.Name)
		}
	case *Compare:
		v.validate(*pred)
	case Match:
		if pred.Value == "" {
			v.warn("empty pattern on column %s.%s matches every row", pred.Column.Table, pred.Column.Name)
		}
	case *Match:
		v.validate(*pred)
	case And:
		for _, sub := range pred.Predicates {
			v.validate(sub)
		}
	case *And:
		v.validate(*pred)
	case Or:
		if len(pred.Predicates) == 0 {
			v.warn("empty OR group is always false")
		}
		for _, sub := range pred.Predicates {
			v.validate(sub)
		}
	case *Or:
		v.validate(*pred)
	case nil:
		v.warn("nil predicate")
	default:
		v.warn("unknown predicate type: %T", p)
	}
}
