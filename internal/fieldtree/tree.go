// Package fieldtree builds the relation tree a filter session operates on.
//
// The tree mirrors the reachable relation structure from a root model,
// pruned by include/exclude rules. Its shape is a pure function of
// (root model, include, exclude) and never depends on request content:
// request parsing only visits nodes already present here.
//
// Include and exclude entries use dotted paths. A bare name selects (or
// removes) a field at the current level; an entry of the form
// "relation__rest" scopes "rest" into the child tree built for that
// relation. A nil include list means "all declared fields", and that
// unrestricted mode propagates into child levels, so on a cyclic schema
// it would recurse forever. Build detects that case structurally and
// fails with ErrCodeUnboundedFieldTree instead; callers bound cyclic
// schemas with explicit include paths.
package fieldtree

import (
	"sort"
	"strings"

	"github.com/rgrange/sift/internal/schema"
)

// Node is one model's position in the tree: the fields selected for
// filtering at this level and one child per retained relation field.
// Nodes are immutable once Build returns.
type Node struct {
	// Model is the schema model this node represents.
	Model *schema.Model

	// Fields are the selected fields in declaration order, relation
	// fields included.
	Fields []*schema.Field

	relations []string
	children  map[string]*Node
}

// Relations returns the retained relation field names in declaration
// order. Iterating these, not the children map, keeps traversal
// deterministic.
func (n *Node) Relations() []string {
	return n.relations
}

// Child returns the subtree for a relation field name, or nil.
func (n *Node) Child(relation string) *Node {
	return n.children[relation]
}

// Build constructs the field tree rooted at model.
//
// include nil selects every declared field at this level and below;
// otherwise only fields whose bare name appears in include are kept.
// exclude always wins: a name present in both sets is skipped. Dotted
// entries in either list scope into child trees as described in the
// package comment.
func Build(model *schema.Model, include, exclude []string) (*Node, error) {
	return build(model, include, exclude, nil)
}

// build recurses with path holding the state key of every unrestricted
// ancestor node. Recursion diverges exactly when an identical state
// (same model, all-fields mode, same exclude set) recurs: explicit
// include lists are finite and a shrinking exclude set changes the
// state, so both terminate on their own.
func build(model *schema.Model, include, exclude []string, path []string) (*Node, error) {
	unrestricted := include == nil
	names := include
	if unrestricted {
		names = model.FieldNames()
		path = append(path, stateKey(model, exclude))
	}

	node := &Node{
		Model:    model,
		children: map[string]*Node{},
	}

	for _, name := range names {
		if contains(exclude, name) {
			continue
		}
		field := model.Field(name)
		if field == nil {
			// Dotted include entries land here; they only scope child
			// trees and never select a field themselves.
			continue
		}
		node.Fields = append(node.Fields, field)

		if !field.IsRelation() {
			continue
		}

		var childInclude []string
		if !unrestricted {
			// Explicit mode: the child sees only the scoped entries.
			// No dotted entries means an empty (not nil) list, i.e. a
			// child node with no fields of its own.
			childInclude = scoped(include, field.Name)
		}
		childExclude := scoped(exclude, field.Name)

		if childInclude == nil && contains(path, stateKey(field.Target, childExclude)) {
			return nil, &BuildError{
				Code:     ErrCodeUnboundedFieldTree,
				Model:    model.Name,
				Relation: field.Name,
				Message:  "cyclic relation reached in all-fields mode; bound it with include or exclude paths",
			}
		}

		child, err := build(field.Target, childInclude, childExclude, path)
		if err != nil {
			return nil, err
		}
		node.relations = append(node.relations, field.Name)
		node.children[field.Name] = child
	}

	return node, nil
}

// scoped strips "relation__" prefixed entries down to the child's own
// namespace. Returns a non-nil (possibly empty) slice so explicit mode
// survives the descent.
func scoped(entries []string, relation string) []string {
	prefix := relation + "__"
	out := []string{}
	for _, e := range entries {
		if strings.HasPrefix(e, prefix) {
			out = append(out, strings.TrimPrefix(e, prefix))
		}
	}
	return out
}

func contains(entries []string, name string) bool {
	for _, e := range entries {
		if e == name {
			return true
		}
	}
	return false
}

// stateKey canonicalizes one unrestricted build state. Model names are
// unique within a schema; the exclude set is order-insensitive.
func stateKey(model *schema.Model, exclude []string) string {
	sorted := make([]string, len(exclude))
	copy(sorted, exclude)
	sort.Strings(sorted)
	return model.Name + "|" + strings.Join(sorted, ",")
}
