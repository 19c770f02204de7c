package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

func TestConvert(t *testing.T) {
	rates := []model.FXRate{
		{ShopID: "shop-1", Base: "USD", Quote: "HKD", Rate: 7.8},
		{ShopID: "shop-1", Base: "USD", Quote: "EUR", Rate: 0.9},
	}

	t.Run("single match converts", func(t *testing.T) {
		got, ok := Convert(100, "USD", "HKD", rates)
		assert.True(t, ok)
		assert.InDelta(t, 780, got, 1e-9)
	})

	t.Run("same currency passes through", func(t *testing.T) {
		got, ok := Convert(100, "USD", "USD", nil)
		assert.True(t, ok)
		assert.Equal(t, 100.0, got)
	})

	t.Run("missing rate suppresses", func(t *testing.T) {
		_, ok := Convert(100, "USD", "JPY", rates)
		assert.False(t, ok)
	})

	t.Run("duplicate rate suppresses", func(t *testing.T) {
		dup := append(rates, model.FXRate{ShopID: "shop-1", Base: "USD", Quote: "HKD", Rate: 7.75})
		_, ok := Convert(100, "USD", "HKD", dup)
		assert.False(t, ok)
	})

	t.Run("direction matters", func(t *testing.T) {
		_, ok := Convert(100, "HKD", "USD", rates)
		assert.False(t, ok)
	})
}
