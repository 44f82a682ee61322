package engine

import (
	"net/url"

	"github.com/rgrange/sift/internal/fieldtree"
	"github.com/rgrange/sift/internal/form"
	"github.com/rgrange/sift/internal/schema"
)

// match is the transient record produced for one field found in the
// request: the parallel selector/value lists, the join path that
// reaches the field's model, and the parameter names for attribution.
// Lifetime is one ProcessRequest call.
type match struct {
	field         *schema.Field
	selectors     []string
	values        []string
	joinPath      []string
	selectorParam string
	valueParam    string
}

// parseMatches walks the field tree depth-first, root first, children
// in relation declaration order, collecting a match for every field
// whose selector AND value parameters are both present. A field with
// only one of the two is silently skipped - an unsubmitted form input,
// not an error. Mismatched list lengths are an error: zipping them
// positionally would misalign operators and values.
func (e *Engine) parseMatches(params url.Values) ([]match, error) {
	var out []match
	if err := walkNode(e.tree, "", nil, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walkNode(node *fieldtree.Node, prefix string, joinPath []string, params url.Values, out *[]match) error {
	for _, f := range node.Fields {
		selectorParam := form.SelectorName(prefix, f.Name)
		valueParam := form.ValueName(prefix, f.Name)

		selectors, haveSelector := params[selectorParam]
		values, haveValue := params[valueParam]
		if !haveSelector || !haveValue {
			continue
		}
		if len(selectors) != len(values) {
			return newMismatchError(fieldName(f), selectorParam, len(selectors), len(values))
		}

		*out = append(*out, match{
			field:         f,
			selectors:     selectors,
			values:        values,
			joinPath:      joinPath,
			selectorParam: selectorParam,
			valueParam:    valueParam,
		})
	}

	for _, rel := range node.Relations() {
		childPath := make([]string, len(joinPath), len(joinPath)+1)
		copy(childPath, joinPath)
		childPath = append(childPath, rel)

		if err := walkNode(node.Child(rel), form.ChildPrefix(prefix, rel), childPath, params, out); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(f *schema.Field) string {
	return f.Model.Name + "." + f.Name
}
