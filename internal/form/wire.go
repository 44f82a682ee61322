package form

// Wire-name convention for filter parameters. For a field at a nested
// path, the operator selector is prefix + "fo_" + name and the value is
// prefix + "fv_" + name; every relation hop from the root appends
// "fr_" + relation + "-" to the prefix, left to right.
//
// These names are the wire contract shared by the request parser and
// the flattened form descriptors; both sides build them through the
// helpers below so they can never drift apart.
const (
	selectorPrefix = "fo_"
	valuePrefix    = "fv_"
	relationPrefix = "fr_"
	separator      = "-"
)

// SelectorName returns the operator-selector parameter name for a field
// under the given prefix.
func SelectorName(prefix, field string) string {
	return prefix + selectorPrefix + field
}

// ValueName returns the value parameter name for a field under the
// given prefix.
func ValueName(prefix, field string) string {
	return prefix + valuePrefix + field
}

// ChildPrefix extends a prefix with one relation hop.
func ChildPrefix(prefix, relation string) string {
	return prefix + relationPrefix + relation + separator
}
