// Package catalog maps field type kinds to their applicable filter
// operators and pre-computes the per-field operator lists for a built
// field tree.
//
// Operator order within each kind's list is the wire contract: the
// fo_ request parameter is a decimal index into that list, so the order
// below must never change without versioning the wire format.
package catalog

import (
	"fmt"

	"github.com/rgrange/sift/internal/queryir"
	"github.com/rgrange/sift/internal/schema"
)

// Operator is one filter operation a field can offer.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLessThan
	OpGreaterThan
	OpLessOrEqual
	OpGreaterOrEqual
	OpStartsWith
	OpContains
)

// Label returns the human-readable operation name shown in the selector
// dropdown. Labels are part of the form contract and match the wording
// users already know.
func (op Operator) Label() string {
	switch op {
	case OpEqual:
		return "equal to"
	case OpNotEqual:
		return "not equal to"
	case OpLessThan:
		return "less than"
	case OpGreaterThan:
		return "greater than"
	case OpLessOrEqual:
		return "less than or equal to"
	case OpGreaterOrEqual:
		return "greater than or equal to"
	case OpStartsWith:
		return "starts with"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Per-kind operator tables. Index order is the wire contract:
//
//	string:   0 equal, 1 not-equal, 2 starts-with, 3 contains
//	numeric:  0 equal, 1 not-equal, 2 less-than, 3 greater-than,
//	          4 less-or-equal, 5 greater-or-equal
//	boolean:  0 equal, 1 not-equal
//	relation: 0 equal, 1 not-equal
var operatorsByKind = map[schema.Kind][]Operator{
	schema.KindString:   {OpEqual, OpNotEqual, OpStartsWith, OpContains},
	schema.KindNumeric:  {OpEqual, OpNotEqual, OpLessThan, OpGreaterThan, OpLessOrEqual, OpGreaterOrEqual},
	schema.KindBoolean:  {OpEqual, OpNotEqual},
	schema.KindRelation: {OpEqual, OpNotEqual},
}

// OperatorsFor returns the ordered operator list for a type kind.
// Unknown kinds get the numeric list, mirroring schema's numeric
// fallback for unknown types. The returned slice is shared; callers
// must not modify it.
func OperatorsFor(kind schema.Kind) []Operator {
	if ops, ok := operatorsByKind[kind]; ok {
		return ops
	}
	return operatorsByKind[schema.KindNumeric]
}

// BooleanChoices is the synthetic choice set attached to boolean value
// inputs: presence ("1") is true, absence ("") is false.
var BooleanChoices = []schema.Choice{
	{Value: "1", Label: "True"},
	{Value: "", Label: "False"},
}

// QueryFilter pairs an applicable operator with a concrete field. It is
// immutable; the registry holds one per operator per field.
type QueryFilter struct {
	Op    Operator
	Field *schema.Field
}

// Label returns the operator's human-readable name.
func (qf QueryFilter) Label() string {
	return qf.Op.Label()
}

// Predicate builds the predicate for this filter applied to a coerced
// value. StartsWith and Contains compile to pattern matches; every
// other operator compiles to a direct comparison.
func (qf QueryFilter) Predicate(value any) queryir.Predicate {
	col := queryir.Column{Table: qf.Field.Model.Table, Name: qf.Field.Column}

	switch qf.Op {
	case OpStartsWith:
		return queryir.Match{Column: col, Mode: queryir.MatchPrefix, Value: stringValue(value)}
	case OpContains:
		return queryir.Match{Column: col, Mode: queryir.MatchSubstring, Value: stringValue(value)}
	case OpNotEqual:
		return queryir.Compare{Column: col, Op: queryir.CmpNe, Value: value}
	case OpLessThan:
		return queryir.Compare{Column: col, Op: queryir.CmpLt, Value: value}
	case OpGreaterThan:
		return queryir.Compare{Column: col, Op: queryir.CmpGt, Value: value}
	case OpLessOrEqual:
		return queryir.Compare{Column: col, Op: queryir.CmpLe, Value: value}
	case OpGreaterOrEqual:
		return queryir.Compare{Column: col, Op: queryir.CmpGe, Value: value}
	default:
		return queryir.Compare{Column: col, Op: queryir.CmpEq, Value: value}
	}
}

// FiltersFor returns the ordered QueryFilter list for one field.
func FiltersFor(f *schema.Field) []QueryFilter {
	ops := OperatorsFor(f.Kind())
	filters := make([]QueryFilter, len(ops))
	for i, op := range ops {
		filters[i] = QueryFilter{Op: op, Field: f}
	}
	return filters
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
