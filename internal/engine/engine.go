// Package engine ties the filter pipeline together: it owns the field
// tree and operator registry for one filter configuration, parses flat
// request parameters into matches, and assembles the result query.
//
// An Engine is built once per configuration (root model + include /
// exclude spec) and is immutable afterward, so one instance is safely
// shared across concurrent requests. ProcessRequest touches only local
// accumulators; there is no locking and nothing blocks.
//
// Error policy: any malformed parameter aborts the whole request. A
// partially filtered query silently drops conditions the user asked
// for, which is worse than an error page.
package engine

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/rgrange/sift/internal/catalog"
	"github.com/rgrange/sift/internal/fieldtree"
	"github.com/rgrange/sift/internal/form"
	"github.com/rgrange/sift/internal/queryir"
	"github.com/rgrange/sift/internal/schema"
)

// Options configures which fields a filter engine exposes.
type Options struct {
	// Include selects fields by dotted path. Nil means every declared
	// field, recursively; an empty non-nil slice means none.
	Include []string

	// Exclude removes fields by dotted path. Exclusion always wins over
	// inclusion.
	Exclude []string
}

// Engine is one filter configuration: the built field tree, the
// per-field operator registry, and the static form descriptor tree.
type Engine struct {
	model    *schema.Model
	tree     *fieldtree.Node
	registry *catalog.Registry
	form     *form.Node
}

// New builds an engine for the model. Fails if the include/exclude spec
// leaves a cyclic relation unbounded (see fieldtree).
func New(model *schema.Model, opts Options) (*Engine, error) {
	tree, err := fieldtree.Build(model, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	registry := catalog.NewRegistry(tree)

	return &Engine{
		model:    model,
		tree:     tree,
		registry: registry,
		form:     form.Generate(tree, registry),
	}, nil
}

// Model returns the root model.
func (e *Engine) Model() *schema.Model { return e.model }

// Tree returns the built field tree.
func (e *Engine) Tree() *fieldtree.Node { return e.tree }

// Registry returns the per-field operator registry.
func (e *Engine) Registry() *catalog.Registry { return e.registry }

// Form returns the static form descriptor tree. Shared across requests;
// callers must treat it as read-only.
func (e *Engine) Form() *form.Node { return e.form }

// ParsedFilter is one accepted (selector, value) pair, recorded for
// observability and for re-rendering the form's prior state.
type ParsedFilter struct {
	SelectorParam string
	OperatorIndex int
	ValueParam    string
	RawValue      string
}

// Result is the outcome of processing one request.
type Result struct {
	// RequestID is a v7 UUID identifying this parse for log correlation.
	RequestID string

	// Form is the engine's descriptor tree (static, shared).
	Form *form.Node

	// Query is the base query with joins and predicates applied.
	Query *queryir.Query

	// Parsed lists every accepted filter pair in traversal order.
	Parsed []ParsedFilter
}

// ProcessRequest parses the request parameters against the field tree
// and applies the resulting joins and predicates to base. A nil base
// starts a fresh query on the engine's model.
//
// Within one field, multiple submitted pairs combine with OR; across
// fields, predicates combine with AND. Join paths are replayed from the
// root for every field and deduplicated per hop by the query.
func (e *Engine) ProcessRequest(base *queryir.Query, params url.Values) (*Result, error) {
	if base == nil {
		base = queryir.NewQuery(e.model)
	}

	matches, err := e.parseMatches(params)
	if err != nil {
		return nil, err
	}

	parsed, err := e.assemble(base, matches)
	if err != nil {
		return nil, err
	}

	return &Result{
		RequestID: uuid.Must(uuid.NewV7()).String(),
		Form:      e.form,
		Query:     base,
		Parsed:    parsed,
	}, nil
}

// assemble converts matches into joins and predicates on q and returns
// the parsed-filter log.
func (e *Engine) assemble(q *queryir.Query, matches []match) ([]ParsedFilter, error) {
	var parsed []ParsedFilter

	for _, m := range matches {
		q.Switch(e.model)
		for _, rel := range m.joinPath {
			if err := q.Join(rel); err != nil {
				// Join paths come from the tree, so this is a schema
				// definition bug, not bad request input.
				return nil, err
			}
		}

		filters := e.registry.Filters(m.field)
		branches := make([]queryir.Predicate, 0, len(m.selectors))

		for i, rawIndex := range m.selectors {
			rawValue := m.values[i]

			index, convErr := strconv.Atoi(rawIndex)
			if convErr != nil || index < 0 || index >= len(filters) {
				return nil, newSelectorError(fieldName(m.field), m.selectorParam, rawIndex, len(filters))
			}

			value, coerceErr := coerce(m.field, rawValue)
			if coerceErr != nil {
				return nil, newCoercionError(fieldName(m.field), m.valueParam, rawValue, coerceErr)
			}

			branches = append(branches, filters[index].Predicate(value))
			parsed = append(parsed, ParsedFilter{
				SelectorParam: m.selectorParam,
				OperatorIndex: index,
				ValueParam:    m.valueParam,
				RawValue:      rawValue,
			})
		}

		q.Where(queryir.Or{Predicates: branches})
	}

	return parsed, nil
}
