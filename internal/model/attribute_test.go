package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeValueUnmarshalJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var v AttributeValue
		require.NoError(t, json.Unmarshal([]byte(`42.5`), &v))
		require.NotNil(t, v.Number)
		assert.Equal(t, 42.5, *v.Number)
		assert.Nil(t, v.Text)
	})

	t.Run("locale object", func(t *testing.T) {
		var v AttributeValue
		require.NoError(t, json.Unmarshal([]byte(`{"en":"Red","zhHant":"紅"}`), &v))
		require.NotNil(t, v.Text)
		assert.Equal(t, "Red", v.Text.EN)
		assert.Equal(t, "紅", v.Text.ZhHant)
	})

	t.Run("unknown keys alongside a recognized one are ignored", func(t *testing.T) {
		var v AttributeValue
		require.NoError(t, json.Unmarshal([]byte(`{"en":"Red","fr":"Rouge"}`), &v))
		require.NotNil(t, v.Text)
		assert.Equal(t, "Red", v.Text.EN)
	})

	t.Run("object with only unknown locale keys is rejected", func(t *testing.T) {
		var v AttributeValue
		err := json.Unmarshal([]byte(`{"fr":"Rouge"}`), &v)
		assert.Error(t, err)
	})

	t.Run("object with non-string locale values is rejected", func(t *testing.T) {
		var v AttributeValue
		err := json.Unmarshal([]byte(`{"en":42}`), &v)
		assert.Error(t, err)
	})

	t.Run("null clears the value", func(t *testing.T) {
		var v AttributeValue
		require.NoError(t, json.Unmarshal([]byte(`null`), &v))
		assert.True(t, v.IsZero())
	})

	t.Run("bare string is rejected", func(t *testing.T) {
		var v AttributeValue
		err := json.Unmarshal([]byte(`"Red"`), &v)
		assert.Error(t, err)
	})
}

func TestProductAttributeDecodeRejectsUnknownLocaleObject(t *testing.T) {
	var attrs ProductAttributes
	err := json.Unmarshal([]byte(`[{"attributeId":"a1","value":{"fr":"Rouge"}}]`), &attrs)
	require.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`[{"attributeId":"a1","value":{"zhHant":"紅"}}]`), &attrs))
	require.Len(t, attrs, 1)
	assert.False(t, attrs[0].Value.IsZero())
}
