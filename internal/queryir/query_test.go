package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgrange/sift/internal/schema"
)

func postUser() (*schema.Model, *schema.Model) {
	user := schema.NewModel("User")
	user.AddField(&schema.Field{Name: "name", Type: schema.TypeChar})

	post := schema.NewModel("Post")
	post.AddField(&schema.Field{Name: "title", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "author", Type: schema.TypeForeignKey, Target: user})
	return post, user
}

func TestQuery_Join_MovesContext(t *testing.T) {
	post, user := postUser()
	q := NewQuery(post)

	require.NoError(t, q.Join("author"))
	require.Len(t, q.Hops(), 1)

	hop := q.Hops()[0]
	assert.Same(t, post, hop.Parent)
	assert.Same(t, user, hop.Target)
	assert.Equal(t, "author", hop.Relation.Name)
}

func TestQuery_Join_DeduplicatesHops(t *testing.T) {
	post, _ := postUser()
	q := NewQuery(post)

	// Replaying the same path for a second field must not add a join.
	require.NoError(t, q.Join("author"))
	q.Switch(post)
	require.NoError(t, q.Join("author"))

	assert.Len(t, q.Hops(), 1)
}

func TestQuery_Join_UnknownField(t *testing.T) {
	post, _ := postUser()
	q := NewQuery(post)
	assert.Error(t, q.Join("editor"))
}

func TestQuery_Join_NonRelationField(t *testing.T) {
	post, _ := postUser()
	q := NewQuery(post)
	assert.Error(t, q.Join("title"))
}

func TestQuery_Where_Accumulates(t *testing.T) {
	post, _ := postUser()
	q := NewQuery(post)

	col := Column{Table: "post", Name: "title"}
	q.Where(Compare{Column: col, Op: CmpEq, Value: "a"})
	q.Where(Or{Predicates: []Predicate{Compare{Column: col, Op: CmpEq, Value: "b"}}})

	assert.Len(t, q.Predicates(), 2)
}
