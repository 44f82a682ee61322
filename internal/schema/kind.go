package schema

// Type is the declared storage type of a field. The set is closed: the
// filter catalog only ever sees the four Kind buckets below, and any type
// outside this enumeration classifies as numeric.
type Type int

const (
	TypeChar Type = iota
	TypeText
	TypeDate
	TypeTime
	TypeDateTime
	TypeInt
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeBool
	TypePrimaryKey
	TypeForeignKey
)

var typeNames = map[Type]string{
	TypeChar:       "char",
	TypeText:       "text",
	TypeDate:       "date",
	TypeTime:       "time",
	TypeDateTime:   "datetime",
	TypeInt:        "int",
	TypeBigInt:     "bigint",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeDecimal:    "decimal",
	TypeBool:       "bool",
	TypePrimaryKey: "primarykey",
	TypeForeignKey: "foreignkey",
}

// String returns the lowercase type name used in schema files.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseType resolves a schema-file type name to a Type.
// Returns (0, false) for unknown names.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Kind is the filter classification of a field type. It decides which
// operator list applies and how raw values are coerced.
//
// The mapping from Type to Kind is fixed and part of the wire contract:
// changing it renumbers operator indexes for affected fields.
type Kind int

const (
	// KindString covers character and text types.
	KindString Kind = iota
	// KindNumeric covers integer, floating, decimal, date/time and key
	// types. It is also the documented fallback for unknown types.
	KindNumeric
	// KindBoolean covers booleans, filtered through a synthetic
	// True/False choice set.
	KindBoolean
	// KindRelation covers foreign-key fields.
	KindRelation
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumeric:
		return "numeric"
	case KindBoolean:
		return "boolean"
	case KindRelation:
		return "relation"
	default:
		return "unknown"
	}
}

var kindByType = map[Type]Kind{
	TypeChar:       KindString,
	TypeText:       KindString,
	TypeDate:       KindNumeric,
	TypeTime:       KindNumeric,
	TypeDateTime:   KindNumeric,
	TypeInt:        KindNumeric,
	TypeBigInt:     KindNumeric,
	TypeFloat:      KindNumeric,
	TypeDouble:     KindNumeric,
	TypeDecimal:    KindNumeric,
	TypeBool:       KindBoolean,
	TypePrimaryKey: KindNumeric,
	TypeForeignKey: KindRelation,
}

// Kind classifies the type for filtering. Types outside the known
// mapping fall back to KindNumeric rather than erroring.
func (t Type) Kind() Kind {
	if k, ok := kindByType[t]; ok {
		return k
	}
	return KindNumeric
}
