package model

// Shop carries the per-tenant settings the catalog needs at render time.
type Shop struct {
	BaseModel
	Name                LocaleText `db:"name" json:"name"`
	ProductNumberPrefix string     `db:"product_number_prefix" json:"productNumberPrefix"`
	Currency            string     `db:"currency" json:"currency"` // Base currency prices are stored in
	RewardRate          *float64   `db:"reward_rate" json:"rewardRate"`
}

// FXRate is one conversion record ingested from the currency subsystem.
type FXRate struct {
	ID     string  `db:"id" json:"id"`
	ShopID string  `db:"shop_id" json:"shopId"`
	Base   string  `db:"base" json:"base"`
	Quote  string  `db:"quote" json:"quote"`
	Rate   float64 `db:"rate" json:"rate"`
}
