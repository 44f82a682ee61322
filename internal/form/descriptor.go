// Package form generates the editable form descriptors for a filter
// configuration.
//
// Descriptors are plain data, not widgets: a rendering layer outside
// this module turns them into HTML or anything else. The tree mirrors
// the field tree one-to-one, every field carrying a selector descriptor
// (the operator dropdown) and a value descriptor (the input), and every
// relation a nested sub-form. Flattening the tree yields exactly the
// wire parameter names the request parser consumes, which is what makes
// form state round-trip through a query string.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rgrange/sift/internal/catalog"
	"github.com/rgrange/sift/internal/fieldtree"
	"github.com/rgrange/sift/internal/schema"
)

// Widget names the input shape a value descriptor should render as.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetNumber   Widget = "number"
	WidgetSelect   Widget = "select"
	WidgetDate     Widget = "date"
	WidgetTime     Widget = "time"
	WidgetDateTime Widget = "datetime"
)

// SelectorField describes the operator dropdown for one field. Choices
// are index-keyed: choice i selects the field's operator i. Selection
// is optional; an unsubmitted selector simply contributes no filter.
type SelectorField struct {
	// Name is the wire parameter name (fo_ convention).
	Name string

	// Choices lists the operator labels, keyed by decimal index.
	Choices []schema.Choice
}

// ValueField describes the value input for one field. Validation is not
// required; coercion happens at parse time and failures are reported
// against the parameter name.
type ValueField struct {
	// Name is the wire parameter name (fv_ convention).
	Name string

	// Widget selects the input shape.
	Widget Widget

	// Choices restricts the input to an enumerated set when non-empty.
	// Boolean fields always get the synthetic True/False set.
	Choices []schema.Choice

	// Default is the field's declared default value, if any.
	Default any

	// NowDefault marks date/time/datetime fields whose default is "the
	// current moment". Descriptors are immutable and shared across
	// requests, so the renderer resolves the actual timestamp.
	NowDefault bool
}

// FieldPair bundles the two descriptors for one field.
type FieldPair struct {
	Field    *schema.Field
	Selector SelectorField
	Value    ValueField
}

// Node is one level of the descriptor tree, mirroring a field tree
// node. Immutable after Generate.
type Node struct {
	Model  *schema.Model
	Fields []FieldPair

	relations []string
	children  map[string]*Node
}

// Relations returns the child sub-form names in declaration order.
func (n *Node) Relations() []string {
	return n.relations
}

// Child returns the sub-form for a relation name, or nil.
func (n *Node) Child(relation string) *Node {
	return n.children[relation]
}

// Generate builds the descriptor tree for a built field tree, looking
// up each field's operator list in the registry.
func Generate(tree *fieldtree.Node, reg *catalog.Registry) *Node {
	return generate(tree, reg, "")
}

func generate(tree *fieldtree.Node, reg *catalog.Registry, prefix string) *Node {
	node := &Node{
		Model:    tree.Model,
		children: map[string]*Node{},
	}

	for _, f := range tree.Fields {
		node.Fields = append(node.Fields, FieldPair{
			Field:    f,
			Selector: selectorField(f, reg, prefix),
			Value:    valueField(f, prefix),
		})
	}

	for _, rel := range tree.Relations() {
		node.relations = append(node.relations, rel)
		node.children[rel] = generate(tree.Child(rel), reg, ChildPrefix(prefix, rel))
	}

	return node
}

func selectorField(f *schema.Field, reg *catalog.Registry, prefix string) SelectorField {
	filters := reg.Filters(f)
	choices := make([]schema.Choice, len(filters))
	for i, qf := range filters {
		choices[i] = schema.Choice{Value: strconv.Itoa(i), Label: qf.Label()}
	}
	return SelectorField{Name: SelectorName(prefix, f.Name), Choices: choices}
}

func valueField(f *schema.Field, prefix string) ValueField {
	vf := ValueField{
		Name:    ValueName(prefix, f.Name),
		Choices: f.Choices,
		Default: f.Default,
	}

	switch f.Type {
	case schema.TypeBool:
		vf.Widget = WidgetSelect
		vf.Choices = catalog.BooleanChoices
	case schema.TypeDate:
		vf.Widget = WidgetDate
		vf.NowDefault = vf.Default == nil
	case schema.TypeTime:
		vf.Widget = WidgetTime
		if vf.Default == nil {
			vf.Default = "00:00:00"
		}
	case schema.TypeDateTime:
		vf.Widget = WidgetDateTime
		vf.NowDefault = vf.Default == nil
	default:
		switch {
		case len(vf.Choices) > 0 || f.IsRelation():
			vf.Widget = WidgetSelect
		case f.Kind() == schema.KindNumeric:
			vf.Widget = WidgetNumber
		default:
			vf.Widget = WidgetText
		}
	}

	return vf
}

// Flatten returns every wire parameter name in the tree, depth-first in
// traversal order: the exact set the request parser will look for.
func (n *Node) Flatten() []string {
	var names []string
	for _, pair := range n.Fields {
		names = append(names, pair.Selector.Name, pair.Value.Name)
	}
	for _, rel := range n.relations {
		names = append(names, n.children[rel].Flatten()...)
	}
	return names
}

// Encode appends one (operator index, value) pair for the field at the
// given dotted path (e.g. "author__name") onto values, using the wire
// names this tree was generated with. It is the inverse of request
// parsing and exists so prior form state can be re-encoded as a query
// string.
func (n *Node) Encode(values url.Values, path string, opIndex int, value string) error {
	head, rest, nested := strings.Cut(path, "__")

	if nested {
		child := n.children[head]
		if child == nil {
			return fmt.Errorf("encode: no sub-form for relation %q on %s", head, n.Model.Name)
		}
		return child.Encode(values, rest, opIndex, value)
	}

	for _, pair := range n.Fields {
		if pair.Field.Name != head {
			continue
		}
		if opIndex < 0 || opIndex >= len(pair.Selector.Choices) {
			return fmt.Errorf("encode: operator index %d out of range for %s.%s", opIndex, n.Model.Name, head)
		}
		values.Add(pair.Selector.Name, strconv.Itoa(opIndex))
		values.Add(pair.Value.Name, value)
		return nil
	}
	return fmt.Errorf("encode: no field %q on %s", head, n.Model.Name)
}
