package cli

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParams_QueryString(t *testing.T) {
	values, err := LoadParams("fo_title=2&fv_title=ab&fo_title=0&fv_title=cd")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "0"}, values["fo_title"])
	assert.Equal(t, []string{"ab", "cd"}, values["fv_title"])
}

func TestLoadParams_Empty(t *testing.T) {
	values, err := LoadParams("")
	require.NoError(t, err)
	assert.Equal(t, url.Values{}, values)
}

func TestLoadParams_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := `
fo_title: "2"
fv_title: "ab"
fr_author-fo_name: ["0", "0"]
fr_author-fv_name: ["Alice", "Bob"]
fo_views: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	values, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, values["fo_title"])
	assert.Equal(t, []string{"0", "0"}, values["fr_author-fo_name"])
	assert.Equal(t, []string{"Alice", "Bob"}, values["fr_author-fv_name"])
	// Scalars that decode as non-strings stringify.
	assert.Equal(t, []string{"1"}, values["fo_views"])
}

func TestLoadParams_MissingYAMLFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadParams_BadQueryString(t *testing.T) {
	_, err := LoadParams("fo_title=%zz")
	assert.Error(t, err)
}
