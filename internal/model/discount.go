package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

type DiscountPlacement string

const (
	PlacementProduct  DiscountPlacement = "product"
	PlacementCheckout DiscountPlacement = "checkout"
)

type ProductsScope string

const (
	ScopeGlobal   ProductsScope = "global"
	ScopeCats     ProductsScope = "cats"
	ScopeProducts ProductsScope = "products"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// DiscountProduct sets the discount for one product inside a group. After a
// write exactly one of DiscountPrice/DiscountPercentage is non-nil, matching
// DiscountType.
type DiscountProduct struct {
	ProductID          string       `json:"productId"`
	DiscountType       DiscountType `json:"discountType"`
	DiscountPrice      *float64     `json:"discountPrice"`
	DiscountPercentage *float64     `json:"discountPercentage"`
}

// DiscountProducts is stored as a jsonb column.
type DiscountProducts []DiscountProduct

func (d DiscountProducts) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(DiscountProducts{})
	}
	return json.Marshal(d)
}

func (d *DiscountProducts) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return fmt.Errorf("cannot scan %T into DiscountProducts", src)
}

// DiscountGroup attaches discounts to categories or an explicit product list.
type DiscountGroup struct {
	BaseModel
	ShopID             string            `db:"shop_id" json:"shopId"`
	Name               string            `db:"name" json:"name"`
	Placement          DiscountPlacement `db:"placement" json:"placement"`
	ProductsScope      ProductsScope     `db:"products_scope" json:"productsScope"`
	AttachToCatIDs     pq.StringArray    `db:"attach_to_cat_ids" json:"attachToCatIds"`
	AttachToProductIDs pq.StringArray    `db:"attach_to_product_ids" json:"attachToProductIds"`
	DiscountProducts   DiscountProducts  `db:"discount_products" json:"discountProducts"`
}
