package attribute

import (
	"strconv"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// TypeCheckValue coerces a raw variant value into the typed shape declared
// by the attribute. Number attributes accept numeric values or parseable
// numeric strings; string attributes require a locale-keyed object with at
// least one recognized locale.
func TypeCheckValue(attr *model.Attribute, raw interface{}) (model.AttributeValue, error) {
	switch attr.Type {
	case model.AttributeNumber:
		switch v := raw.(type) {
		case float64:
			return model.NumberValue(v), nil
		case int:
			return model.NumberValue(float64(v)), nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return model.AttributeValue{}, apperr.Validation(attr.Code, "value %q is not numeric", v)
			}
			return model.NumberValue(f), nil
		}
		return model.AttributeValue{}, apperr.Validation(attr.Code, "numeric attribute requires a number value")

	case model.AttributeString:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return model.AttributeValue{}, apperr.Validation(attr.Code, "string attribute requires a locale-keyed object")
		}
		text, ok := model.LocaleTextFromMap(m)
		if !ok {
			return model.AttributeValue{}, apperr.Validation(attr.Code, "locale object carries no recognized locale key")
		}
		return model.TextValue(text), nil
	}

	return model.AttributeValue{}, apperr.Validation(attr.Code, "unknown attribute type %q", attr.Type)
}

// CheckStoredValue verifies an already-typed value against the attribute's
// declared type; used when product writes carry pre-parsed values.
func CheckStoredValue(attr *model.Attribute, value model.AttributeValue) error {
	switch attr.Type {
	case model.AttributeNumber:
		if value.Number == nil {
			return apperr.Validation(attr.Code, "numeric attribute requires a number value")
		}
	case model.AttributeString:
		if value.Text == nil {
			return apperr.Validation(attr.Code, "string attribute requires a locale-keyed object")
		}
	}
	return nil
}

// ResolveValueForDisplay renders a typed value for the requested locale:
// numbers pass through, locale text resolves with the usual fallback chain.
func ResolveValueForDisplay(value model.AttributeValue, locale model.Locale) interface{} {
	if value.Number != nil {
		return *value.Number
	}
	if value.Text != nil {
		return value.Text.Resolve(locale)
	}
	return nil
}
