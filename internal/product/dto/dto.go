package dto

import (
	catdto "github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/media"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

// AttributeView is one locale-resolved attribute binding.
type AttributeView struct {
	AttributeID string      `json:"attributeId"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit,omitempty"`
}

// ProductView is the fully composed storefront projection. Price is nil when
// currency conversion could not be cleanly resolved.
type ProductView struct {
	ID                 string                `json:"id"`
	ProductNumber      string                `json:"productNumber"`
	SKU                string                `json:"sku"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	ShortDescription   string                `json:"shortDescription"`
	Price              *float64              `json:"price"`
	Currency           string                `json:"currency"`
	ProductType        model.ProductType     `json:"productType"`
	IsPromotionProduct bool                  `json:"isPromotionProduct"`
	ParentID           *string               `json:"parentId,omitempty"`
	Availability       model.Availability    `json:"availability"`
	StockReadyDate     string                `json:"stockReadyDate,omitempty"`
	FeaturedMedia      *media.View           `json:"featuredMedia,omitempty"`
	Gallery            []*media.View         `json:"gallery,omitempty"`
	DescriptionGallery []*media.View         `json:"descriptionGallery,omitempty"`
	Categories         []*catdto.CategoryView `json:"categories"`
	Attributes         []AttributeView       `json:"attributes"`
	RewardPayout       float64               `json:"rewardPayout"`
	RelatedProducts    []*ProductView        `json:"relatedProducts,omitempty"`
}

type ProductListView struct {
	Size  int            `json:"size"`
	Page  int            `json:"page"`
	Items []*ProductView `json:"items"`
}

type VariationFamilyView struct {
	Parent   *ProductView   `json:"parent"`
	Children []*ProductView `json:"children"`
}
