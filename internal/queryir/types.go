package queryir

// Column references one database column by table and column name.
type Column struct {
	Table string
	Name  string
}

// Predicate represents a boolean condition over a query's rows.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in backend compilers.
//
// Predicate types:
//   - Compare: column <op> value for the six comparison operators
//   - Match: prefix or substring pattern match on a column
//   - And: conjunction (all must hold)
//   - Or: disjunction (at least one must hold)
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// CompareOp enumerates the comparison operators a Compare predicate can
// carry.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNe
	CmpLt
	CmpGt
	CmpLe
	CmpGe
)

// String returns the SQL-flavored operator token. Backends with a
// different syntax switch on the constant instead.
func (op CompareOp) String() string {
	switch op {
	case CmpEq:
		return "="
	case CmpNe:
		return "!="
	case CmpLt:
		return "<"
	case CmpGt:
		return ">"
	case CmpLe:
		return "<="
	case CmpGe:
		return ">="
	default:
		return "?"
	}
}

// Compare is a direct comparison of a column against a literal value.
// Value is a Go native type (string, int64, float64, bool, time.Time)
// produced by engine coercion.
type Compare struct {
	Column Column
	Op     CompareOp
	Value  any
}

func (Compare) predicateNode() {}

// MatchMode selects the pattern shape of a Match predicate.
type MatchMode int

const (
	// MatchPrefix holds when the column's value starts with Value.
	MatchPrefix MatchMode = iota
	// MatchSubstring holds when the column's value contains Value
	// anywhere.
	MatchSubstring
)

// Match is a string pattern predicate. Only string-kind fields produce
// matches; the engine never emits Match for other kinds.
type Match struct {
	Column Column
	Mode   MatchMode
	Value  string
}

func (Match) predicateNode() {}

// And holds when every sub-predicate holds. Empty means always true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Or holds when at least one sub-predicate holds. The engine builds one
// Or per filtered field, with one branch per submitted operator+value
// pair. Empty means always false and is flagged by Validate.
type Or struct {
	Predicates []Predicate
}

func (Or) predicateNode() {}
