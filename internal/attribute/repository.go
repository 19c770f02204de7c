package attribute

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, attribute *model.Attribute) error
	FindByID(ctx context.Context, shopID, id string) (*model.Attribute, error)
	FindByIDs(ctx context.Context, shopID string, ids []string) ([]model.Attribute, error)
	FindByCode(ctx context.Context, shopID, code string) (*model.Attribute, error)
	FindAllByShop(ctx context.Context, shopID string) ([]model.Attribute, error)
	Update(ctx context.Context, attribute *model.Attribute) error
	Delete(ctx context.Context, shopID, id string) error
}
