package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mirevo/shop-catalog-service/internal/category"
	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.Code == "" {
		return nil, apperr.Validation("code", "code is required")
	}

	existing, err := uc.repo.FindByCode(ctx, input.ShopID, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Duplicate("code", input.Code)
	}

	if input.ParentID != nil && *input.ParentID != "" {
		parent, err := uc.repo.FindByID(ctx, input.ShopID, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound("category", *input.ParentID)
		}
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: input.CreatedBy,
		},
		ShopID:       input.ShopID,
		Code:         input.Code,
		Name:         input.Name,
		Slug:         input.Slug,
		ParentID:     input.ParentID,
		RewardPayout: input.RewardPayout,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, shopID, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, shopID, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ShopID, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("category", input.ID)
	}

	if input.ParentID != nil && *input.ParentID != "" {
		parent, err := uc.repo.FindByID(ctx, input.ShopID, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound("category", *input.ParentID)
		}
		if parent.ID == cat.ID {
			return nil, apperr.Validation("parentId", "category cannot be its own parent")
		}
	}

	cat.Name = input.Name
	cat.Slug = input.Slug
	cat.ParentID = input.ParentID
	cat.RewardPayout = input.RewardPayout
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, shopID, id string) error {
	return uc.repo.Delete(ctx, shopID, id)
}

func (uc *categoryUseCase) ResolveDescendants(ctx context.Context, shopID, categoryID string) (map[string]struct{}, error) {
	all, err := uc.repo.FindAllByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return descendantSet(categoryID, childrenIndex(all))
}

func (uc *categoryUseCase) ResolveDescendantsForMany(ctx context.Context, shopID string, categoryIDs []string) ([]map[string]struct{}, error) {
	all, err := uc.repo.FindAllByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	index := childrenIndex(all)

	sets := make([]map[string]struct{}, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		set, err := descendantSet(id, index)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func (uc *categoryUseCase) ResolveSlugs(ctx context.Context, shopID string, locale model.Locale, slugs []string) ([]string, error) {
	all, err := uc.repo.FindAllByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	bySlug := make(map[string]string, len(all))
	for _, c := range all {
		if s := c.Slug.Resolve(locale); s != "" {
			bySlug[strings.ToLower(s)] = c.ID
		}
	}

	ids := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if id, ok := bySlug[strings.ToLower(slug)]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (uc *categoryUseCase) ImportByCode(ctx context.Context, shopID, createdBy string, records []dto.ImportCategoryRecord) []dto.ImportResult {
	results := make([]dto.ImportResult, 0, len(records))

	existing, err := uc.repo.FindAllByShop(ctx, shopID)
	if err != nil {
		uc.logger.Error("failed to load categories for import", zap.String("shop_id", shopID), zap.Error(err))
		for _, rec := range records {
			results = append(results, dto.ImportResult{Code: rec.Code, Error: err.Error()})
		}
		return results
	}

	byCode := make(map[string]string, len(existing))
	for _, c := range existing {
		byCode[strings.ToLower(c.Code)] = c.ID
	}

	for _, rec := range records {
		result := dto.ImportResult{Code: rec.Code}

		var parentID *string
		if rec.ParentCode != "" {
			id, ok := byCode[strings.ToLower(rec.ParentCode)]
			if !ok {
				result.Error = apperr.NotFound("category", rec.ParentCode).Error()
				results = append(results, result)
				continue
			}
			parentID = &id
		}

		cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
			ShopID:       shopID,
			Code:         rec.Code,
			Name:         rec.Name,
			Slug:         rec.Slug,
			ParentID:     parentID,
			RewardPayout: rec.RewardPayout,
			CreatedBy:    createdBy,
		})
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		byCode[strings.ToLower(cat.Code)] = cat.ID
		result.CategoryID = cat.ID
		results = append(results, result)
	}

	return results
}

func (uc *categoryUseCase) Render(cat *model.Category, locale model.Locale) *dto.CategoryView {
	if cat == nil {
		return nil
	}
	return &dto.CategoryView{
		ID:           cat.ID,
		Name:         cat.Name.Resolve(locale),
		Slug:         cat.Slug.Resolve(locale),
		ParentID:     cat.ParentID,
		RewardPayout: cat.RewardPayout,
	}
}
