package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mirevo/shop-catalog-service/internal/attribute"
	"github.com/mirevo/shop-catalog-service/internal/attribute/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
)

type attributeUseCase struct {
	repo   attribute.Repository
	logger logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *attributeUseCase) CreateAttribute(ctx context.Context, input *dto.CreateAttributeInput) (*model.Attribute, error) {
	if input.Code == "" {
		return nil, apperr.Validation("code", "code is required")
	}
	if input.Type != model.AttributeString && input.Type != model.AttributeNumber {
		return nil, apperr.Validation("type", "type must be string or number")
	}
	// Numeric attributes are meaningless without a display unit.
	if input.Type == model.AttributeNumber && (input.Unit == nil || input.Unit.IsEmpty()) {
		return nil, apperr.Validation("unit", "unit is required for numeric attributes")
	}

	existing, err := uc.repo.FindByCode(ctx, input.ShopID, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Duplicate("code", input.Code)
	}

	now := time.Now()
	attr := &model.Attribute{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: input.CreatedBy,
		},
		ShopID: input.ShopID,
		Code:   input.Code,
		Name:   input.Name,
		Type:   input.Type,
		Unit:   input.Unit,
	}

	if err := uc.repo.Create(ctx, attr); err != nil {
		return nil, err
	}
	return attr, nil
}

func (uc *attributeUseCase) GetAttribute(ctx context.Context, shopID, id string) (*model.Attribute, error) {
	return uc.repo.FindByID(ctx, shopID, id)
}

func (uc *attributeUseCase) ListAttributes(ctx context.Context, shopID string) ([]model.Attribute, error) {
	return uc.repo.FindAllByShop(ctx, shopID)
}

func (uc *attributeUseCase) UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.Attribute, error) {
	attr, err := uc.repo.FindByID(ctx, input.ShopID, input.ID)
	if err != nil {
		return nil, err
	}
	if attr == nil {
		return nil, apperr.NotFound("attribute", input.ID)
	}

	// Type is immutable after creation; stored values depend on it.
	if attr.Type == model.AttributeNumber && (input.Unit == nil || input.Unit.IsEmpty()) {
		return nil, apperr.Validation("unit", "unit is required for numeric attributes")
	}

	attr.Name = input.Name
	attr.Unit = input.Unit
	attr.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, attr); err != nil {
		return nil, err
	}
	return attr, nil
}

func (uc *attributeUseCase) DeleteAttribute(ctx context.Context, shopID, id string) error {
	return uc.repo.Delete(ctx, shopID, id)
}
