package product

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, shopID, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Product, error)
	FindByParentID(ctx context.Context, shopID, parentID string) ([]model.Product, error)
	FindAll(ctx context.Context, pred *query.Predicate, page, pageSize int) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, shopID, id string) error

	IsSKUUnique(ctx context.Context, shopID, sku, excludeID string) (bool, error)
}
