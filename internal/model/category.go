package model

// Category is one node of a shop's category tree.
//
// Table: categories (code unique per shop, case-insensitive:
// UNIQUE (shop_id, lower(code))).
type Category struct {
	BaseModel
	ShopID       string     `db:"shop_id" json:"shopId"`
	Code         string     `db:"code" json:"code"`
	Name         LocaleText `db:"name" json:"name"`
	Slug         LocaleText `db:"slug" json:"slug"`
	ParentID     *string    `db:"parent_id" json:"parentId"` // Nullable, same shop only
	RewardPayout *float64   `db:"reward_payout" json:"rewardPayout"`
}
