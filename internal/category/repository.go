package category

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, shopID, id string) (*model.Category, error)
	FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Category, error)
	FindByCode(ctx context.Context, shopID, code string) (*model.Category, error)
	FindAllByShop(ctx context.Context, shopID string) ([]model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, shopID, id string) error
}
