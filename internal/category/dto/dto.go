package dto

type CategoryFilters struct {
	ShopID   string
	ParentID *string // Nil means ignore, empty string means root categories
	Page     int
	PageSize int
}

// CategoryView is the locale-resolved projection for API responses.
type CategoryView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	ParentID     *string  `json:"parentId"`
	RewardPayout *float64 `json:"rewardPayout"`
}
