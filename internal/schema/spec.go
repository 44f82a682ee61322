package schema

import "fmt"

// ModelSpec is the serializable form of a model definition, as decoded
// from a schema file. Resolve turns a set of specs into linked Models.
type ModelSpec struct {
	Name       string      `json:"name"`
	Table      string      `json:"table,omitempty"`
	PrimaryKey string      `json:"primaryKey,omitempty"`
	Fields     []FieldSpec `json:"fields"`
}

// FieldSpec is the serializable form of one field definition.
type FieldSpec struct {
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Column  string       `json:"column,omitempty"`
	Label   string       `json:"label,omitempty"`
	Target  string       `json:"target,omitempty"` // related model name, foreignkey only
	Default any          `json:"default,omitempty"`
	Choices []ChoiceSpec `json:"choices,omitempty"`
}

// ChoiceSpec is one enumerated choice in a field definition.
type ChoiceSpec struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Resolve links a set of model specs into Models, resolving relation
// targets by name. Two passes: models first, then fields, so relations
// can point at models declared later (or at themselves).
func Resolve(specs []ModelSpec) (map[string]*Model, error) {
	models := make(map[string]*Model, len(specs))
	for _, ms := range specs {
		if ms.Name == "" {
			return nil, fmt.Errorf("schema: model with empty name")
		}
		if _, dup := models[ms.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate model %q", ms.Name)
		}
		m := NewModel(ms.Name)
		if ms.Table != "" {
			m.Table = ms.Table
		}
		if ms.PrimaryKey != "" {
			m.PrimaryKey = ms.PrimaryKey
		}
		models[ms.Name] = m
	}

	for _, ms := range specs {
		m := models[ms.Name]
		for _, fs := range ms.Fields {
			f, err := resolveField(ms.Name, fs, models)
			if err != nil {
				return nil, err
			}
			m.AddField(f)
		}
	}

	return models, nil
}

func resolveField(model string, fs FieldSpec, models map[string]*Model) (*Field, error) {
	if fs.Name == "" {
		return nil, fmt.Errorf("schema: model %q has a field with empty name", model)
	}
	t, ok := ParseType(fs.Type)
	if !ok {
		return nil, fmt.Errorf("schema: field %s.%s has unknown type %q", model, fs.Name, fs.Type)
	}

	f := &Field{
		Name:    fs.Name,
		Type:    t,
		Column:  fs.Column,
		Label:   fs.Label,
		Default: fs.Default,
	}
	for _, c := range fs.Choices {
		f.Choices = append(f.Choices, Choice{Value: c.Value, Label: c.Label})
	}

	if t == TypeForeignKey {
		if fs.Target == "" {
			return nil, fmt.Errorf("schema: relation field %s.%s has no target", model, fs.Name)
		}
		target, ok := models[fs.Target]
		if !ok {
			return nil, fmt.Errorf("schema: relation field %s.%s targets unknown model %q", model, fs.Name, fs.Target)
		}
		f.Target = target
	} else if fs.Target != "" {
		return nil, fmt.Errorf("schema: field %s.%s has a target but is not a relation", model, fs.Name)
	}

	return f, nil
}
