package discount

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, group *model.DiscountGroup) error
	FindByID(ctx context.Context, shopID, id string) (*model.DiscountGroup, error)
	FindAllByShop(ctx context.Context, shopID string) ([]model.DiscountGroup, error)
	Update(ctx context.Context, group *model.DiscountGroup) error
	Delete(ctx context.Context, shopID, id string) error
}
