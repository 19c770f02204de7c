// Package currency resolves product prices across currencies from FX records
// ingested out of band. Conversion is fail-safe: an ambiguous or missing rate
// suppresses the price rather than showing a wrong value.
package currency

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

type Repository interface {
	FindByShop(ctx context.Context, shopID string) ([]model.FXRate, error)
	Upsert(ctx context.Context, rate *model.FXRate) error
}

// Convert returns the price in the requested currency. ok is false when zero
// or more than one record matches the base/quote pair.
func Convert(price float64, base, quote string, rates []model.FXRate) (float64, bool) {
	if base == quote {
		return price, true
	}
	var match *model.FXRate
	for i := range rates {
		if rates[i].Base == base && rates[i].Quote == quote {
			if match != nil {
				return 0, false
			}
			match = &rates[i]
		}
	}
	if match == nil {
		return 0, false
	}
	return price * match.Rate, true
}
