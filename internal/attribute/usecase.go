package attribute

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/attribute/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type UseCase interface {
	CreateAttribute(ctx context.Context, input *dto.CreateAttributeInput) (*model.Attribute, error)
	GetAttribute(ctx context.Context, shopID, id string) (*model.Attribute, error)
	ListAttributes(ctx context.Context, shopID string) ([]model.Attribute, error)
	UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, shopID, id string) error
}
