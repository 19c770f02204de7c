package usecase

import (
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

// validateAttachment enforces the attachment-mode rules per scope:
//   - cats: exactly the category list is populated
//   - products: exactly the product list is populated
//   - global (and checkout placement): neither list is populated
//
// Both-populated is invalid in every scope.
func validateAttachment(scope model.ProductsScope, catIDs, productIDs []string) error {
	if len(catIDs) > 0 && len(productIDs) > 0 {
		return apperr.Validation("attachTo", "cannot attach to both categories and products")
	}

	switch scope {
	case model.ScopeCats:
		if len(catIDs) == 0 {
			return apperr.Validation("attachToCatIds", "category scope requires attached categories")
		}
	case model.ScopeProducts:
		if len(productIDs) == 0 {
			return apperr.Validation("attachToProductIds", "product scope requires attached products")
		}
	case model.ScopeGlobal:
		if len(catIDs) > 0 || len(productIDs) > 0 {
			return apperr.Validation("attachTo", "global scope attaches to nothing")
		}
	default:
		return apperr.Validation("productsScope", "unknown scope %q", scope)
	}
	return nil
}

// validateDiscountProducts checks every entry before any write; one bad
// entry rejects the whole group.
func validateDiscountProducts(entries []model.DiscountProduct) error {
	for _, e := range entries {
		if e.ProductID == "" {
			return apperr.Validation("discountProducts", "productId is required")
		}
		switch e.DiscountType {
		case model.DiscountFixed:
			if e.DiscountPrice == nil || *e.DiscountPrice <= 0 {
				return apperr.Validation("discountPrice", "fixed discount requires a price")
			}
		case model.DiscountPercentage:
			if e.DiscountPercentage == nil || *e.DiscountPercentage <= 0 || *e.DiscountPercentage > 100 {
				return apperr.Validation("discountPercentage", "percentage must be in (0, 100]")
			}
		default:
			return apperr.Validation("discountType", "unknown discount type %q", e.DiscountType)
		}
	}
	return nil
}

// normalizeDiscountProducts nulls out the field not matching each entry's
// own type so a type change never leaves a stale cross-type value behind.
func normalizeDiscountProducts(entries []model.DiscountProduct) model.DiscountProducts {
	normalized := make(model.DiscountProducts, len(entries))
	for i, e := range entries {
		switch e.DiscountType {
		case model.DiscountFixed:
			e.DiscountPercentage = nil
		case model.DiscountPercentage:
			e.DiscountPrice = nil
		}
		normalized[i] = e
	}
	return normalized
}
