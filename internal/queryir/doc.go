// Package queryir defines the abstract query the filter engine produces.
//
// A Query starts from a root model and accumulates two things: a join
// chain (one hop per relation traversed to reach a filtered field) and a
// conjunction of predicates. Predicates form a small sealed tree:
// comparisons, pattern matches, and And/Or groups. The engine ORs the
// predicates for one field's matches and ANDs across fields by
// successive Where calls.
//
// The IR is backend-agnostic data. querysql compiles it to parameterized
// SQLite SQL; other backends can walk the same structures. Values inside
// predicates are already coerced to Go native types by the engine, so
// backends never parse raw request strings.
package queryir
