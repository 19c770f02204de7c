package category

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, shopID, id string) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, shopID, id string) error

	// ResolveDescendants expands a category into the set of its descendant
	// ids, itself included.
	ResolveDescendants(ctx context.Context, shopID, categoryID string) (map[string]struct{}, error)
	// ResolveDescendantsForMany expands each input id independently, one set
	// per id, in input order.
	ResolveDescendantsForMany(ctx context.Context, shopID string, categoryIDs []string) ([]map[string]struct{}, error)
	// ResolveSlugs maps locale-resolved slugs to category ids. Unknown slugs
	// are skipped.
	ResolveSlugs(ctx context.Context, shopID string, locale model.Locale, slugs []string) ([]string, error)

	ImportByCode(ctx context.Context, shopID, createdBy string, records []dto.ImportCategoryRecord) []dto.ImportResult

	Render(cat *model.Category, locale model.Locale) *dto.CategoryView
}
