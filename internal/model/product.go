package model

import "github.com/lib/pq"

type ProductType string

const (
	ProductSimple          ProductType = "simple"
	ProductVariationParent ProductType = "variationParent"
	ProductVariationChild  ProductType = "variationChild"
)

type Availability string

const (
	AvailabilityIn  Availability = "in"
	AvailabilityOut Availability = "out"
)

// Product is one catalog entry. A variationParent's children are found by
// reverse lookup on parent_id; there is no forward children list to keep in
// sync.
//
// Table: products (UNIQUE (shop_id, lower(sku)), UNIQUE (shop_id, product_number)).
type Product struct {
	BaseModel
	ShopID             string            `db:"shop_id" json:"shopId"`
	MerchantID         *string           `db:"merchant_id" json:"merchantId"`
	ProductNumber      int64             `db:"product_number" json:"productNumber"`
	SKU                string            `db:"sku" json:"sku"`
	Name               LocaleText        `db:"name" json:"name"`
	Description        LocaleText        `db:"description" json:"description"`
	ShortDescription   LocaleText        `db:"short_description" json:"shortDescription"`
	Price              float64           `db:"price" json:"price"`
	ProductType        ProductType       `db:"product_type" json:"productType"`
	IsPromotionProduct bool              `db:"is_promotion_product" json:"isPromotionProduct"`
	ParentID           *string           `db:"parent_id" json:"parentId"` // Set only for variationChild
	Attributes         ProductAttributes `db:"attributes" json:"attributes"`
	CategoryIDs        pq.StringArray    `db:"category_ids" json:"categoryIds"`
	FeaturedMediaID    *string           `db:"featured_media_id" json:"featuredMediaId"`
	GalleryIDs         pq.StringArray    `db:"gallery_ids" json:"galleryIds"`
	DescriptionGallery pq.StringArray    `db:"description_gallery_ids" json:"descriptionGalleryIds"`
	RelatedProductIDs  pq.StringArray    `db:"related_product_ids" json:"relatedProductIds"`
	RewardPayout       *float64          `db:"reward_payout" json:"rewardPayout"`
	Availability       Availability      `db:"availability" json:"availability"`
	// Opaque string on purpose: parsing into a time would shift the date
	// across timezones.
	StockReadyDate string `db:"stock_ready_date" json:"stockReadyDate"`
}
