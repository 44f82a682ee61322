package queryir

import (
	"fmt"

	"github.com/rgrange/sift/internal/schema"
)

// Hop is one relation traversal in a query's join chain: Parent's
// Relation field joined against Target's primary key.
type Hop struct {
	Parent   *schema.Model
	Relation *schema.Field
	Target   *schema.Model
}

// Query is the composable query the assembler drives. It tracks a join
// context (the model the next Join call starts from), an ordered join
// chain, and a conjunction of predicates.
//
// Join is idempotent per (parent, relation) hop: replaying the same join
// path for a second field, or for a second OR'd match on one field,
// never duplicates a join. This keeps the assembled query at exactly one
// join per distinct relation hop.
//
// A Query is a per-request accumulator, not safe for concurrent use.
type Query struct {
	root    *schema.Model
	context *schema.Model
	hops    []Hop
	where   []Predicate
}

// NewQuery creates a query rooted at model, with the join context
// positioned there.
func NewQuery(root *schema.Model) *Query {
	return &Query{root: root, context: root}
}

// Root returns the root model.
func (q *Query) Root() *schema.Model {
	return q.root
}

// Switch repositions the join context. The assembler switches back to
// the root before replaying each field's join path.
func (q *Query) Switch(model *schema.Model) {
	q.context = model
}

// Join traverses the named relation field of the current context model,
// moving the context to the relation's target. Re-joining an existing
// hop only moves the context.
func (q *Query) Join(relation string) error {
	field := q.context.Field(relation)
	if field == nil {
		return fmt.Errorf("join: model %s has no field %s", q.context.Name, relation)
	}
	if !field.IsRelation() {
		return fmt.Errorf("join: field %s.%s is not a relation", q.context.Name, relation)
	}

	for _, h := range q.hops {
		if h.Parent == q.context && h.Relation == field {
			q.context = h.Target
			return nil
		}
	}

	q.hops = append(q.hops, Hop{Parent: q.context, Relation: field, Target: field.Target})
	q.context = field.Target
	return nil
}

// Where ANDs a predicate onto the query.
func (q *Query) Where(p Predicate) {
	q.where = append(q.where, p)
}

// Hops returns the accumulated join chain in application order.
func (q *Query) Hops() []Hop {
	return q.hops
}

// Predicates returns the accumulated where conjuncts in application
// order.
func (q *Query) Predicates() []Predicate {
	return q.where
}
