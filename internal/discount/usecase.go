package discount

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/discount/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type UseCase interface {
	CreateGroup(ctx context.Context, input *dto.CreateDiscountGroupInput) (*model.DiscountGroup, error)
	GetGroup(ctx context.Context, shopID, id string) (*model.DiscountGroup, error)
	// GetGroupView eagerly joins the attached category/product references
	// and renders the group.
	GetGroupView(ctx context.Context, shopID, id string, locale model.Locale) (*dto.GroupView, error)
	ListGroups(ctx context.Context, shopID string) ([]model.DiscountGroup, error)
	UpdateGroup(ctx context.Context, input *dto.UpdateDiscountGroupInput) (*model.DiscountGroup, error)
	DeleteGroup(ctx context.Context, shopID, id string) error
}
