package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type AttributeType string

const (
	AttributeString AttributeType = "string"
	AttributeNumber AttributeType = "number"
)

// Attribute defines the shape of a variant/filterable product attribute.
// Unit is required iff Type is number.
type Attribute struct {
	BaseModel
	ShopID string        `db:"shop_id" json:"shopId"`
	Code   string        `db:"code" json:"code"`
	Name   LocaleText    `db:"name" json:"name"`
	Type   AttributeType `db:"type" json:"type"`
	Unit   *LocaleText   `db:"unit" json:"unit"`
}

// AttributeValue is a tagged union discriminated by the referenced
// Attribute's type: exactly one of Number/Text is set once type-checked.
type AttributeValue struct {
	Number *float64
	Text   *LocaleText
}

func NumberValue(f float64) AttributeValue {
	return AttributeValue{Number: &f}
}

func TextValue(t LocaleText) AttributeValue {
	return AttributeValue{Text: &t}
}

// IsZero reports whether the value carries nothing worth storing.
func (v AttributeValue) IsZero() bool {
	if v.Number != nil {
		return false
	}
	return v.Text == nil || v.Text.IsEmpty()
}

func (v AttributeValue) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	if v.Text != nil {
		return json.Marshal(*v.Text)
	}
	return []byte("null"), nil
}

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	*v = AttributeValue{}
	if string(data) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Number = &n
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err == nil {
		// An object must carry at least one recognized locale key with a
		// string value; unknown-suffix-only objects are rejected, not
		// silently treated as empty.
		var t LocaleText
		recognized := false
		for k, raw := range m {
			l, known := ParseLocale(k)
			if !known {
				continue
			}
			s, isString := raw.(string)
			if !isString {
				continue
			}
			t.Set(l, s)
			recognized = true
		}
		if !recognized {
			return fmt.Errorf("locale object carries no recognized locale key")
		}
		v.Text = &t
		return nil
	}
	return fmt.Errorf("attribute value must be a number or a locale object")
}

// ProductAttribute binds an attribute definition to a value on a product.
type ProductAttribute struct {
	AttributeID string         `json:"attributeId"`
	Value       AttributeValue `json:"value"`
}

// ProductAttributes is stored as a jsonb column.
type ProductAttributes []ProductAttribute

func (a ProductAttributes) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(ProductAttributes{})
	}
	return json.Marshal(a)
}

func (a *ProductAttributes) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return fmt.Errorf("cannot scan %T into ProductAttributes", src)
}
