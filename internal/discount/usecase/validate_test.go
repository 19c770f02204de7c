package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

func fptr(f float64) *float64 { return &f }

func TestValidateAttachment(t *testing.T) {
	t.Run("cats scope requires categories", func(t *testing.T) {
		assert.NoError(t, validateAttachment(model.ScopeCats, []string{"c1"}, nil))
		err := validateAttachment(model.ScopeCats, nil, nil)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("products scope requires products", func(t *testing.T) {
		assert.NoError(t, validateAttachment(model.ScopeProducts, nil, []string{"p1"}))
		err := validateAttachment(model.ScopeProducts, nil, nil)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("global scope attaches to nothing", func(t *testing.T) {
		assert.NoError(t, validateAttachment(model.ScopeGlobal, nil, nil))
		assert.Error(t, validateAttachment(model.ScopeGlobal, []string{"c1"}, nil))
		assert.Error(t, validateAttachment(model.ScopeGlobal, nil, []string{"p1"}))
	})

	t.Run("both lists populated always invalid", func(t *testing.T) {
		for _, scope := range []model.ProductsScope{model.ScopeGlobal, model.ScopeCats, model.ScopeProducts} {
			assert.Error(t, validateAttachment(scope, []string{"c1"}, []string{"p1"}), "scope %s", scope)
		}
	})

	t.Run("unknown scope rejected", func(t *testing.T) {
		assert.Error(t, validateAttachment("everything", nil, nil))
	})
}

func TestValidateDiscountProducts(t *testing.T) {
	t.Run("valid entries pass", func(t *testing.T) {
		err := validateDiscountProducts([]model.DiscountProduct{
			{ProductID: "p1", DiscountType: model.DiscountFixed, DiscountPrice: fptr(9.5)},
			{ProductID: "p2", DiscountType: model.DiscountPercentage, DiscountPercentage: fptr(100)},
		})
		assert.NoError(t, err)
	})

	t.Run("fixed without price rejected", func(t *testing.T) {
		err := validateDiscountProducts([]model.DiscountProduct{
			{ProductID: "p1", DiscountType: model.DiscountFixed},
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("percentage out of range rejected", func(t *testing.T) {
		for _, pct := range []float64{0, -5, 150} {
			err := validateDiscountProducts([]model.DiscountProduct{
				{ProductID: "p1", DiscountType: model.DiscountPercentage, DiscountPercentage: fptr(pct)},
			})
			assert.Error(t, err, "pct %v", pct)
		}
	})

	t.Run("one bad entry rejects the whole group", func(t *testing.T) {
		err := validateDiscountProducts([]model.DiscountProduct{
			{ProductID: "p1", DiscountType: model.DiscountFixed, DiscountPrice: fptr(5)},
			{ProductID: "p2", DiscountType: "bogus"},
		})
		assert.Error(t, err)
	})

	t.Run("missing product id rejected", func(t *testing.T) {
		err := validateDiscountProducts([]model.DiscountProduct{
			{DiscountType: model.DiscountFixed, DiscountPrice: fptr(5)},
		})
		assert.Error(t, err)
	})
}

func TestNormalizeDiscountProducts(t *testing.T) {
	out := normalizeDiscountProducts([]model.DiscountProduct{
		{ProductID: "p1", DiscountType: model.DiscountFixed, DiscountPrice: fptr(5), DiscountPercentage: fptr(10)},
		{ProductID: "p2", DiscountType: model.DiscountPercentage, DiscountPrice: fptr(5), DiscountPercentage: fptr(10)},
	})

	require.Len(t, out, 2)
	assert.NotNil(t, out[0].DiscountPrice)
	assert.Nil(t, out[0].DiscountPercentage)
	assert.Nil(t, out[1].DiscountPrice)
	assert.NotNil(t, out[1].DiscountPercentage)
}
