package dto

import "github.com/mirevo/shop-catalog-service/internal/model"

type CreateProductInput struct {
	ShopID             string
	MerchantID         *string
	SKU                string
	Name               model.LocaleText
	Description        model.LocaleText
	ShortDescription   model.LocaleText
	Price              float64
	ProductType        model.ProductType
	IsPromotionProduct bool
	ParentID           *string
	Attributes         model.ProductAttributes
	CategoryIDs        []string
	FeaturedMediaID    *string
	GalleryIDs         []string
	DescriptionGallery []string
	RelatedProductIDs  []string
	RewardPayout       *float64
	Availability       model.Availability
	StockReadyDate     string
	CreatedBy          string
}

type UpdateProductInput struct {
	ID                 string
	ShopID             string
	MerchantID         *string
	SKU                string
	Name               model.LocaleText
	Description        model.LocaleText
	ShortDescription   model.LocaleText
	Price              float64
	IsPromotionProduct bool
	Attributes         model.ProductAttributes
	CategoryIDs        []string
	FeaturedMediaID    *string
	GalleryIDs         []string
	DescriptionGallery []string
	RelatedProductIDs  []string
	RewardPayout       *float64
	Availability       model.Availability
	StockReadyDate     string
}
