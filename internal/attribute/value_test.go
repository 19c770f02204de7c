package attribute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

func numberAttr() *model.Attribute {
	return &model.Attribute{Code: "weight", Type: model.AttributeNumber}
}

func stringAttr() *model.Attribute {
	return &model.Attribute{Code: "color", Type: model.AttributeString}
}

func TestTypeCheckValueNumber(t *testing.T) {
	t.Run("accepts float", func(t *testing.T) {
		v, err := TypeCheckValue(numberAttr(), 1.5)
		require.NoError(t, err)
		require.NotNil(t, v.Number)
		assert.Equal(t, 1.5, *v.Number)
	})

	t.Run("accepts int", func(t *testing.T) {
		v, err := TypeCheckValue(numberAttr(), 3)
		require.NoError(t, err)
		require.NotNil(t, v.Number)
		assert.Equal(t, 3.0, *v.Number)
	})

	t.Run("coerces numeric string", func(t *testing.T) {
		v, err := TypeCheckValue(numberAttr(), "2.25")
		require.NoError(t, err)
		require.NotNil(t, v.Number)
		assert.Equal(t, 2.25, *v.Number)
	})

	t.Run("rejects non-numeric string", func(t *testing.T) {
		_, err := TypeCheckValue(numberAttr(), "heavy")
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("rejects object", func(t *testing.T) {
		_, err := TypeCheckValue(numberAttr(), map[string]interface{}{"en": "1"})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestTypeCheckValueString(t *testing.T) {
	t.Run("accepts locale object", func(t *testing.T) {
		v, err := TypeCheckValue(stringAttr(), map[string]interface{}{"en": "Red", "zhHant": "紅"})
		require.NoError(t, err)
		require.NotNil(t, v.Text)
		assert.Equal(t, "Red", v.Text.EN)
		assert.Equal(t, "紅", v.Text.ZhHant)
	})

	t.Run("rejects bare string", func(t *testing.T) {
		_, err := TypeCheckValue(stringAttr(), "Red")
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("rejects object with no recognized locale", func(t *testing.T) {
		_, err := TypeCheckValue(stringAttr(), map[string]interface{}{"fr": "Rouge"})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestCheckStoredValue(t *testing.T) {
	assert.NoError(t, CheckStoredValue(numberAttr(), model.NumberValue(2)))
	assert.Error(t, CheckStoredValue(numberAttr(), model.TextValue(model.LocaleText{EN: "x"})))
	assert.NoError(t, CheckStoredValue(stringAttr(), model.TextValue(model.LocaleText{EN: "x"})))
	assert.Error(t, CheckStoredValue(stringAttr(), model.NumberValue(2)))
}

func TestResolveValueForDisplay(t *testing.T) {
	assert.Equal(t, 2.5, ResolveValueForDisplay(model.NumberValue(2.5), model.LocaleEN))
	assert.Equal(t, "Red", ResolveValueForDisplay(model.TextValue(model.LocaleText{EN: "Red"}), model.LocaleZhHant))
	assert.Nil(t, ResolveValueForDisplay(model.AttributeValue{}, model.LocaleEN))
}
