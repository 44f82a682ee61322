package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_AddField_Defaults(t *testing.T) {
	m := NewModel("Post")
	m.AddField(&Field{Name: "created_at", Type: TypeDateTime})

	f := m.Field("created_at")
	require.NotNil(t, f)
	assert.Equal(t, "created_at", f.Column)
	assert.Equal(t, "created at", f.Label)
	assert.Same(t, m, f.Model)
}

func TestModel_FieldNames_DeclarationOrder(t *testing.T) {
	m := NewModel("Post")
	m.AddField(&Field{Name: "title", Type: TypeChar}).
		AddField(&Field{Name: "views", Type: TypeInt}).
		AddField(&Field{Name: "published", Type: TypeBool})

	assert.Equal(t, []string{"title", "views", "published"}, m.FieldNames())
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel("BlogPost")
	assert.Equal(t, "blogpost", m.Table)
	assert.Equal(t, "id", m.PrimaryKey)
}

func TestResolve_LinksRelations(t *testing.T) {
	models, err := Resolve([]ModelSpec{
		{
			Name: "Post",
			Fields: []FieldSpec{
				{Name: "title", Type: "char"},
				{Name: "author", Type: "foreignkey", Target: "User"},
			},
		},
		{
			Name:   "User",
			Fields: []FieldSpec{{Name: "name", Type: "char"}},
		},
	})
	require.NoError(t, err)

	post := models["Post"]
	require.NotNil(t, post)
	author := post.Field("author")
	require.NotNil(t, author)
	assert.True(t, author.IsRelation())
	assert.Same(t, models["User"], author.Target)
}

func TestResolve_SelfReferentialRelation(t *testing.T) {
	models, err := Resolve([]ModelSpec{
		{
			Name: "Category",
			Fields: []FieldSpec{
				{Name: "name", Type: "char"},
				{Name: "parent", Type: "foreignkey", Target: "Category"},
			},
		},
	})
	require.NoError(t, err)
	assert.Same(t, models["Category"], models["Category"].Field("parent").Target)
}

func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name  string
		specs []ModelSpec
	}{
		{
			"unknown type",
			[]ModelSpec{{Name: "M", Fields: []FieldSpec{{Name: "f", Type: "varchar"}}}},
		},
		{
			"relation without target",
			[]ModelSpec{{Name: "M", Fields: []FieldSpec{{Name: "f", Type: "foreignkey"}}}},
		},
		{
			"relation to unknown model",
			[]ModelSpec{{Name: "M", Fields: []FieldSpec{{Name: "f", Type: "foreignkey", Target: "Ghost"}}}},
		},
		{
			"target on non-relation",
			[]ModelSpec{{Name: "M", Fields: []FieldSpec{{Name: "f", Type: "char", Target: "M"}}}},
		},
		{
			"duplicate model",
			[]ModelSpec{{Name: "M"}, {Name: "M"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.specs)
			assert.Error(t, err)
		})
	}
}
