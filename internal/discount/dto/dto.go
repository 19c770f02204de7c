package dto

import (
	catdto "github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type CreateDiscountGroupInput struct {
	ShopID             string
	Name               string
	Placement          model.DiscountPlacement
	ProductsScope      model.ProductsScope
	AttachToCatIDs     []string
	AttachToProductIDs []string
	DiscountProducts   []model.DiscountProduct
	CreatedBy          string
}

type UpdateDiscountGroupInput struct {
	ID                 string
	ShopID             string
	Name               string
	Placement          model.DiscountPlacement
	ProductsScope      model.ProductsScope
	AttachToCatIDs     []string
	AttachToProductIDs []string
	DiscountProducts   []model.DiscountProduct
}

// ProductRef is the compact product projection used inside group views.
type ProductRef struct {
	ID            string  `json:"id"`
	ProductNumber string  `json:"productNumber"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
}

type DiscountProductView struct {
	Product            *ProductRef        `json:"product"`
	DiscountType       model.DiscountType `json:"discountType"`
	DiscountPrice      *float64           `json:"discountPrice,omitempty"`
	DiscountPercentage *float64           `json:"discountPercentage,omitempty"`
}

type GroupView struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Placement        model.DiscountPlacement  `json:"placement"`
	ProductsScope    model.ProductsScope      `json:"productsScope"`
	AttachToCats     []*catdto.CategoryView   `json:"attachToCats"`
	AttachToProducts []*ProductRef            `json:"attachToProducts"`
	DiscountProducts []DiscountProductView    `json:"discountProducts"`
}
