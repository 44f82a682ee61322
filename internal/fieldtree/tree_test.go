package fieldtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgrange/sift/internal/schema"
)

// blogSchema builds Post -> User, Post -> Category, Category -> Category
// (self-referential cycle through "parent").
func blogSchema() (post, user, category *schema.Model) {
	user = schema.NewModel("User")
	user.AddField(&schema.Field{Name: "name", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "active", Type: schema.TypeBool})

	category = schema.NewModel("Category")
	category.AddField(&schema.Field{Name: "name", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "parent", Type: schema.TypeForeignKey, Target: category})

	post = schema.NewModel("Post")
	post.AddField(&schema.Field{Name: "title", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "views", Type: schema.TypeInt}).
		AddField(&schema.Field{Name: "author", Type: schema.TypeForeignKey, Target: user})
	return post, user, category
}

func fieldNames(n *Node) []string {
	names := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		names[i] = f.Name
	}
	return names
}

func TestBuild_AllFields(t *testing.T) {
	post, user, _ := blogSchema()

	tree, err := Build(post, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "views", "author"}, fieldNames(tree))
	require.Equal(t, []string{"author"}, tree.Relations())

	child := tree.Child("author")
	require.NotNil(t, child)
	assert.Same(t, user, child.Model)
	// All-fields mode propagates: the child is unrestricted too.
	assert.Equal(t, []string{"name", "active"}, fieldNames(child))
}

func TestBuild_IncludeWithDottedPath(t *testing.T) {
	post, _, _ := blogSchema()

	tree, err := Build(post, []string{"title", "author", "author__name"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "author"}, fieldNames(tree))
	child := tree.Child("author")
	require.NotNil(t, child)
	assert.Equal(t, []string{"name"}, fieldNames(child))
}

func TestBuild_ExcludeAlwaysWins(t *testing.T) {
	post, _, _ := blogSchema()

	// title is both included and excluded; it must not appear.
	tree, err := Build(post, []string{"title", "views"}, []string{"title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"views"}, fieldNames(tree))
}

func TestBuild_ExcludeScopesIntoChild(t *testing.T) {
	post, _, _ := blogSchema()

	tree, err := Build(post, nil, []string{"author__active"})
	require.NoError(t, err)

	child := tree.Child("author")
	require.NotNil(t, child)
	assert.Equal(t, []string{"name"}, fieldNames(child))
}

func TestBuild_ExcludeRelationPrunesSubtree(t *testing.T) {
	post, _, _ := blogSchema()

	tree, err := Build(post, nil, []string{"author"})
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "views"}, fieldNames(tree))
	assert.Nil(t, tree.Child("author"))
	assert.Empty(t, tree.Relations())
}

func TestBuild_IncludedRelationWithoutDottedEntries(t *testing.T) {
	post, _, _ := blogSchema()

	// Explicit include mode: a bare relation name keeps the relation
	// field but its child node exposes no fields of its own.
	tree, err := Build(post, []string{"author"}, nil)
	require.NoError(t, err)

	child := tree.Child("author")
	require.NotNil(t, child)
	assert.Empty(t, child.Fields)
}

func TestBuild_UnboundedCycleRejected(t *testing.T) {
	_, _, category := blogSchema()

	_, err := Build(category, nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnboundedFieldTree(err))

	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrCodeUnboundedFieldTree, be.Code)
	assert.Equal(t, "Category", be.Model)
	assert.Equal(t, "parent", be.Relation)
}

func TestBuild_CycleBoundedByInclude(t *testing.T) {
	_, _, category := blogSchema()

	// Finite dotted paths terminate the recursion: two levels of parent.
	tree, err := Build(category, []string{"name", "parent", "parent__name", "parent__parent", "parent__parent__name"}, nil)
	require.NoError(t, err)

	level1 := tree.Child("parent")
	require.NotNil(t, level1)
	level2 := level1.Child("parent")
	require.NotNil(t, level2)
	assert.Equal(t, []string{"name"}, fieldNames(level2))
	assert.Nil(t, level2.Child("parent"))
}

func TestBuild_CycleBoundedByExclude(t *testing.T) {
	_, _, category := blogSchema()

	tree, err := Build(category, nil, []string{"parent__parent"})
	require.NoError(t, err)

	level1 := tree.Child("parent")
	require.NotNil(t, level1)
	assert.Equal(t, []string{"name"}, fieldNames(level1))
	assert.Nil(t, level1.Child("parent"))
}

func TestBuild_ShapeIndependentOfRequests(t *testing.T) {
	post, _, _ := blogSchema()

	a, err := Build(post, []string{"title", "author", "author__name"}, []string{"views"})
	require.NoError(t, err)
	b, err := Build(post, []string{"title", "author", "author__name"}, []string{"views"})
	require.NoError(t, err)

	assert.Equal(t, fieldNames(a), fieldNames(b))
	assert.Equal(t, a.Relations(), b.Relations())
	assert.Equal(t, fieldNames(a.Child("author")), fieldNames(b.Child("author")))
}
