package dto

import (
	"encoding/json"
	"fmt"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

type CreateCategoryInput struct {
	ShopID       string
	Code         string
	Name         model.LocaleText
	Slug         model.LocaleText
	ParentID     *string
	RewardPayout *float64
	CreatedBy    string
}

type UpdateCategoryInput struct {
	ID           string
	ShopID       string
	Name         model.LocaleText
	Slug         model.LocaleText
	ParentID     *string
	RewardPayout *float64
}

// ImportCategoryRecord is one bulk-import row. ParentCode is resolved to an
// existing category's id at import time.
type ImportCategoryRecord struct {
	Code         string           `json:"code"`
	ParentCode   string           `json:"parentCode"`
	Name         model.LocaleText `json:"name"`
	Slug         model.LocaleText `json:"slug"`
	RewardPayout *float64         `json:"rewardPayout"`
}

// UnmarshalJSON accepts both the structured shape ({"name":{"en":...}}) and
// the flat export shape ({"name.zhHant":...}). Flat keys with an unrecognized
// field or locale suffix are rejected.
func (r *ImportCategoryRecord) UnmarshalJSON(data []byte) error {
	*r = ImportCategoryRecord{}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		var err error
		switch key {
		case "code":
			err = json.Unmarshal(val, &r.Code)
		case "parentCode":
			err = json.Unmarshal(val, &r.ParentCode)
		case "name":
			err = json.Unmarshal(val, &r.Name)
		case "slug":
			err = json.Unmarshal(val, &r.Slug)
		case "rewardPayout":
			err = json.Unmarshal(val, &r.RewardPayout)
		default:
			field, locale, perr := model.ParseLocaleKey(key)
			if perr != nil {
				return perr
			}
			var s string
			if err = json.Unmarshal(val, &s); err != nil {
				break
			}
			switch field {
			case "name":
				r.Name.Set(locale, s)
			case "slug":
				r.Slug.Set(locale, s)
			default:
				return fmt.Errorf("unrecognized import field %q", key)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ImportResult reports one record's outcome; the batch never aborts on a
// single failure.
type ImportResult struct {
	Code       string `json:"code"`
	CategoryID string `json:"categoryId,omitempty"`
	Error      string `json:"error,omitempty"`
}
