package product

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product/dto"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, shopID, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, shopID, id string) error

	// SearchProducts applies the structured filter and returns the total
	// matching count plus one rendered page.
	SearchProducts(ctx context.Context, filter *query.Filter, locale model.Locale, currency string) (*dto.ProductListView, error)

	// FindVariationFamily locates a parent's children by reverse parent_id
	// lookup and renders the whole family.
	FindVariationFamily(ctx context.Context, shopID, parentID string, locale model.Locale, currency string) (*dto.VariationFamilyView, error)

	Render(ctx context.Context, p *model.Product, locale model.Locale, currency string, shop *model.Shop) (*dto.ProductView, error)
}
