package engine

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgrange/sift/internal/schema"
)

// blogEngine builds an engine over Post -> User with all fields.
func blogEngine(t *testing.T) (*Engine, *schema.Model, *schema.Model) {
	t.Helper()
	user := schema.NewModel("User")
	user.AddField(&schema.Field{Name: "name", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "active", Type: schema.TypeBool})

	post := schema.NewModel("Post")
	post.AddField(&schema.Field{Name: "title", Type: schema.TypeChar}).
		AddField(&schema.Field{Name: "views", Type: schema.TypeInt}).
		AddField(&schema.Field{Name: "author", Type: schema.TypeForeignKey, Target: user})

	eng, err := New(post, Options{})
	require.NoError(t, err)
	return eng, post, user
}

func TestParseMatches_RequiresBothParameters(t *testing.T) {
	eng, _, _ := blogEngine(t)

	// Selector without value: silently ignored, not an error.
	matches, err := eng.parseMatches(url.Values{"fo_title": {"0"}})
	require.NoError(t, err)
	assert.Empty(t, matches)

	// Value without selector: same.
	matches, err = eng.parseMatches(url.Values{"fv_title": {"x"}})
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = eng.parseMatches(url.Values{"fo_title": {"0"}, "fv_title": {"x"}})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "title", matches[0].field.Name)
}

func TestParseMatches_NestedWireNames(t *testing.T) {
	eng, _, user := blogEngine(t)

	params := url.Values{
		"fr_author-fo_name": {"0"},
		"fr_author-fv_name": {"Alice"},
	}
	matches, err := eng.parseMatches(params)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Same(t, user.Field("name"), m.field)
	assert.Equal(t, []string{"author"}, m.joinPath)
	assert.Equal(t, "fr_author-fo_name", m.selectorParam)
	assert.Equal(t, "fr_author-fv_name", m.valueParam)
}

func TestParseMatches_ZipsParallelLists(t *testing.T) {
	eng, _, _ := blogEngine(t)

	params := url.Values{
		"fo_title": {"0", "2"},
		"fv_title": {"A", "B"},
	}
	matches, err := eng.parseMatches(params)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{"0", "2"}, matches[0].selectors)
	assert.Equal(t, []string{"A", "B"}, matches[0].values)
}

func TestParseMatches_MismatchedListLengths(t *testing.T) {
	eng, _, _ := blogEngine(t)

	params := url.Values{
		"fo_title": {"0", "1"},
		"fv_title": {"A"},
	}
	_, err := eng.parseMatches(params)
	require.Error(t, err)
	assert.True(t, IsMalformedFilterParameters(err))
}

func TestParseMatches_DepthFirstOrder(t *testing.T) {
	eng, _, _ := blogEngine(t)

	params := url.Values{
		"fr_author-fo_name": {"0"},
		"fr_author-fv_name": {"Alice"},
		"fo_title":          {"0"},
		"fv_title":          {"go"},
		"fo_views":          {"0"},
		"fv_views":          {"5"},
	}
	matches, err := eng.parseMatches(params)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Root fields first in declaration order, then children.
	assert.Equal(t, "title", matches[0].field.Name)
	assert.Equal(t, "views", matches[1].field.Name)
	assert.Equal(t, "name", matches[2].field.Name)
}

func TestParseMatches_IgnoresUnknownParameters(t *testing.T) {
	eng, _, _ := blogEngine(t)

	params := url.Values{
		"fo_ghost": {"0"},
		"fv_ghost": {"x"},
		"page":     {"2"},
	}
	matches, err := eng.parseMatches(params)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
