// Package reward computes the payout granted for purchasing a product.
package reward

import "github.com/mirevo/shop-catalog-service/internal/model"

// Payout applies the product's own rate when set, otherwise the shop-level
// rate. Rates are percentages.
func Payout(shop *model.Shop, product *model.Product) float64 {
	rate := 0.0
	if shop != nil && shop.RewardRate != nil {
		rate = *shop.RewardRate
	}
	if product.RewardPayout != nil {
		rate = *product.RewardPayout
	}
	return product.Price * rate / 100
}
