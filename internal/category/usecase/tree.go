package usecase

import (
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// maxTreeDepth bounds descendant expansion. The parent graph is supposed to
// be acyclic; the bound turns a corrupted graph into an error instead of
// unbounded recursion.
const maxTreeDepth = 64

// childrenIndex maps a parent id to its direct children's ids.
func childrenIndex(categories []model.Category) map[string][]string {
	index := make(map[string][]string, len(categories))
	for _, c := range categories {
		if c.ParentID == nil || *c.ParentID == "" {
			continue
		}
		index[*c.ParentID] = append(index[*c.ParentID], c.ID)
	}
	return index
}

// descendantSet expands start into the set of its descendants, start
// included. A revisited node or a chain deeper than maxTreeDepth fails with
// ErrCycleDetected.
func descendantSet(start string, index map[string][]string) (map[string]struct{}, error) {
	visited := map[string]struct{}{start: {}}
	if err := expand(start, index, visited, 0); err != nil {
		return nil, err
	}
	return visited, nil
}

func expand(id string, index map[string][]string, visited map[string]struct{}, depth int) error {
	if depth >= maxTreeDepth {
		return apperr.Cycle(id)
	}
	for _, child := range index[id] {
		if _, seen := visited[child]; seen {
			return apperr.Cycle(child)
		}
		visited[child] = struct{}{}
		if err := expand(child, index, visited, depth+1); err != nil {
			return err
		}
	}
	return nil
}
