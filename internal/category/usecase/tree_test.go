package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

func cat(id string, parentID string) model.Category {
	c := model.Category{BaseModel: model.BaseModel{ID: id}}
	if parentID != "" {
		c.ParentID = &parentID
	}
	return c
}

func TestDescendantSet(t *testing.T) {
	t.Run("chain expands to self plus descendants", func(t *testing.T) {
		index := childrenIndex([]model.Category{
			cat("a", ""),
			cat("b", "a"),
			cat("c", "b"),
			cat("d", ""),
		})

		set, err := descendantSet("a", index)
		require.NoError(t, err)
		assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, set)
	})

	t.Run("leaf expands to itself", func(t *testing.T) {
		index := childrenIndex([]model.Category{cat("a", ""), cat("b", "a")})
		set, err := descendantSet("b", index)
		require.NoError(t, err)
		assert.Equal(t, map[string]struct{}{"b": {}}, set)
	})

	t.Run("siblings are both included", func(t *testing.T) {
		index := childrenIndex([]model.Category{
			cat("root", ""),
			cat("left", "root"),
			cat("right", "root"),
			cat("grand", "left"),
		})
		set, err := descendantSet("root", index)
		require.NoError(t, err)
		assert.Len(t, set, 4)
	})

	t.Run("cycle detected", func(t *testing.T) {
		index := childrenIndex([]model.Category{
			cat("a", "c"),
			cat("b", "a"),
			cat("c", "b"),
		})
		_, err := descendantSet("a", index)
		assert.True(t, errors.Is(err, apperr.ErrCycleDetected))
	})

	t.Run("self cycle detected", func(t *testing.T) {
		index := childrenIndex([]model.Category{cat("a", "a")})
		_, err := descendantSet("a", index)
		assert.True(t, errors.Is(err, apperr.ErrCycleDetected))
	})

	t.Run("chain deeper than bound fails", func(t *testing.T) {
		cats := make([]model.Category, 0, maxTreeDepth+2)
		cats = append(cats, cat("n0", ""))
		for i := 1; i <= maxTreeDepth+1; i++ {
			cats = append(cats, cat(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i-1)))
		}
		_, err := descendantSet("n0", childrenIndex(cats))
		assert.True(t, errors.Is(err, apperr.ErrCycleDetected))
	})
}
