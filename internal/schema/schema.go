// Package schema defines the introspectable model metadata the filter
// engine operates on: models, typed fields, relations, and the fixed
// type-kind classification that drives operator selection.
package schema

import "strings"

// Field represents one typed attribute of a Model.
//
// A Field belongs to exactly one Model (set by Model.AddField). Relation
// fields carry a Target model; the filter engine expands them into child
// nodes of the field tree.
type Field struct {
	// Name is the field's identifier within its model.
	Name string

	// Type is the declared storage type (closed enumeration).
	Type Type

	// Column is the database column name. Defaults to Name.
	Column string

	// Label is the human-readable name shown on forms. Defaults to Name
	// with underscores replaced by spaces.
	Label string

	// Choices optionally restricts the field to an enumerated value set.
	Choices []Choice

	// Default is the declared default value, if any.
	Default any

	// Target is the related model for ForeignKey fields, nil otherwise.
	Target *Model

	// Model is the owning model. Set when the field is added to a model.
	Model *Model
}

// Choice is one entry of an enumerated value set: the wire value and the
// label shown to users.
type Choice struct {
	Value string
	Label string
}

// Kind returns the filter classification for this field's type.
func (f *Field) Kind() Kind {
	return f.Type.Kind()
}

// IsRelation reports whether this field points at another model.
func (f *Field) IsRelation() bool {
	return f.Type == TypeForeignKey
}

// Model is a named schema: an ordered set of fields, some of which may be
// relations to other models. Models may form cycles (self-referential or
// mutually-referential relations); bounding traversal is the field tree
// builder's job, not the schema's.
type Model struct {
	// Name identifies the model.
	Name string

	// Table is the database table name. Defaults to lower(Name).
	Table string

	// PrimaryKey is the column joined against when another model's
	// relation field targets this model. Defaults to "id".
	PrimaryKey string

	fields []*Field
	index  map[string]*Field
}

// NewModel creates an empty model with default table and primary key names.
func NewModel(name string) *Model {
	return &Model{
		Name:       name,
		Table:      strings.ToLower(name),
		PrimaryKey: "id",
		index:      map[string]*Field{},
	}
}

// AddField appends a field to the model, preserving declaration order.
// Adding a second field with the same name replaces the first in the name
// index but is a schema definition error the caller should avoid.
// Returns the model for chaining.
func (m *Model) AddField(f *Field) *Model {
	if f.Column == "" {
		f.Column = f.Name
	}
	if f.Label == "" {
		f.Label = strings.ReplaceAll(f.Name, "_", " ")
	}
	f.Model = m
	m.fields = append(m.fields, f)
	m.index[f.Name] = f
	return m
}

// Fields returns the model's fields in declaration order. The returned
// slice is shared; callers must not modify it.
func (m *Model) Fields() []*Field {
	return m.fields
}

// FieldNames returns the field names in declaration order.
func (m *Model) FieldNames() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name. Returns nil if absent.
func (m *Model) Field(name string) *Field {
	return m.index[name]
}
