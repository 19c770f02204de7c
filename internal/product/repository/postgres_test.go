package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

func TestMapUniqueViolation(t *testing.T) {
	p := &model.Product{SKU: "SKU-1", ProductNumber: 7}

	t.Run("sku constraint", func(t *testing.T) {
		err := mapUniqueViolation(&pq.Error{Code: "23505", Constraint: "products_shop_id_lower_sku_key"}, p)
		require.True(t, errors.Is(err, apperr.ErrDuplicate))
		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "sku", appErr.Field)
		assert.Equal(t, "SKU-1", appErr.Message)
	})

	t.Run("product number constraint", func(t *testing.T) {
		err := mapUniqueViolation(&pq.Error{Code: "23505", Constraint: "products_shop_id_product_number_key"}, p)
		require.True(t, errors.Is(err, apperr.ErrDuplicate))
		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "productNumber", appErr.Field)
		assert.Equal(t, "7", appErr.Message)
	})

	t.Run("other pq errors pass through", func(t *testing.T) {
		orig := &pq.Error{Code: "23503", Constraint: "products_parent_id_fkey"}
		assert.Equal(t, error(orig), mapUniqueViolation(orig, p))
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, mapUniqueViolation(nil, p))
	})
}
