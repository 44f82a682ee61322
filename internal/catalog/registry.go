package catalog

import (
	"github.com/rgrange/sift/internal/fieldtree"
	"github.com/rgrange/sift/internal/schema"
)

// Registry holds the pre-computed operator list for every field in a
// built tree. Built once per filter configuration by breadth-first
// traversal; immutable and safe for concurrent readers afterward.
type Registry struct {
	filters map[*schema.Field][]QueryFilter
}

// NewRegistry walks the tree breadth-first and computes the QueryFilter
// list for every field encountered, scalar and relation alike.
func NewRegistry(tree *fieldtree.Node) *Registry {
	r := &Registry{filters: map[*schema.Field][]QueryFilter{}}

	queue := []*fieldtree.Node{tree}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, f := range node.Fields {
			r.filters[f] = FiltersFor(f)
		}
		for _, rel := range node.Relations() {
			queue = append(queue, node.Child(rel))
		}
	}

	return r
}

// Filters returns the ordered operator list for a field, or nil if the
// field is not part of the tree this registry was built from.
func (r *Registry) Filters(f *schema.Field) []QueryFilter {
	return r.filters[f]
}

// Filter selects one operator by wire index. Returns false when the
// index is out of range for the field's list.
func (r *Registry) Filter(f *schema.Field, index int) (QueryFilter, bool) {
	filters := r.filters[f]
	if index < 0 || index >= len(filters) {
		return QueryFilter{}, false
	}
	return filters[index], true
}
