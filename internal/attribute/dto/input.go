package dto

import "github.com/mirevo/shop-catalog-service/internal/model"

type CreateAttributeInput struct {
	ShopID    string
	Code      string
	Name      model.LocaleText
	Type      model.AttributeType
	Unit      *model.LocaleText
	CreatedBy string
}

type UpdateAttributeInput struct {
	ID     string
	ShopID string
	Name   model.LocaleText
	Unit   *model.LocaleText
}
