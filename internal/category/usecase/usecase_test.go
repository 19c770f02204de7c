package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
)

// fakeRepo is an in-memory category.Repository.
type fakeRepo struct {
	categories map[string]*model.Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{categories: map[string]*model.Category{}}
}

func (r *fakeRepo) Create(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, shopID, id string) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.ShopID != shopID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) FindByIDs(_ context.Context, shopID string, ids []string) ([]model.Category, error) {
	var out []model.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok && c.ShopID == shopID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindByCode(_ context.Context, shopID, code string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.ShopID == shopID && strings.EqualFold(c.Code, code) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindAllByShop(_ context.Context, shopID string) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		if c.ShopID == shopID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	out, err := r.FindAllByShop(context.Background(), f.ShopID)
	return out, len(out), err
}

func (r *fakeRepo) Update(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, shopID, id string) error {
	delete(r.categories, id)
	return nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "fatal", DisableCaller: true, DisableStacktrace: true})
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
		ShopID: "shop-1",
		Code:   "shoes",
		Name:   model.LocaleText{EN: "Shoes"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := uc.GetCategory(ctx, "shop-1", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "shoes", got.Code)

	t.Run("duplicate code conflicts instead of upserting", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
			ShopID: "shop-1",
			Code:   "SHOES",
			Name:   model.LocaleText{EN: "Shoes again"},
		})
		assert.True(t, errors.Is(err, apperr.ErrDuplicate))

		got, err := uc.GetCategory(ctx, "shop-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Shoes", got.Name.EN)
	})

	t.Run("same code allowed in another shop", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
			ShopID: "shop-2",
			Code:   "shoes",
		})
		assert.NoError(t, err)
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		parent := "nope"
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
			ShopID:   "shop-1",
			Code:     "boots",
			ParentID: &parent,
		})
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("empty code rejected", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{ShopID: "shop-1"})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestUpdateCategoryOwnParent(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{ShopID: "shop-1", Code: "shoes"})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID:       created.ID,
		ShopID:   "shop-1",
		ParentID: &created.ID,
	})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestResolveDescendantsForMany(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	root, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{ShopID: "shop-1", Code: "root"})
	require.NoError(t, err)
	child, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{ShopID: "shop-1", Code: "child", ParentID: &root.ID})
	require.NoError(t, err)
	other, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{ShopID: "shop-1", Code: "other"})
	require.NoError(t, err)

	sets, err := uc.ResolveDescendantsForMany(ctx, "shop-1", []string{root.ID, other.ID})
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, map[string]struct{}{root.ID: {}, child.ID: {}}, sets[0])
	assert.Equal(t, map[string]struct{}{other.ID: {}}, sets[1])
}

func TestResolveSlugs(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
		ShopID: "shop-1",
		Code:   "shoes",
		Slug:   model.LocaleText{EN: "all-shoes"},
	})
	require.NoError(t, err)

	ids, err := uc.ResolveSlugs(ctx, "shop-1", model.LocaleEN, []string{"All-Shoes", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, ids)
}

func TestImportByCode(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	results := uc.ImportByCode(ctx, "shop-1", "importer", []dto.ImportCategoryRecord{
		{Code: "root", Name: model.LocaleText{EN: "Root"}},
		{Code: "child", ParentCode: "ROOT", Name: model.LocaleText{EN: "Child"}},
		{Code: "orphan", ParentCode: "missing"},
		{Code: "root", Name: model.LocaleText{EN: "Dup"}},
	})

	require.Len(t, results, 4)

	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[0].CategoryID)

	// Parent created earlier in the same batch resolves.
	assert.Empty(t, results[1].Error)
	got, err := uc.GetCategory(ctx, "shop-1", results[1].CategoryID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, results[0].CategoryID, *got.ParentID)

	assert.NotEmpty(t, results[2].Error)
	assert.Empty(t, results[2].CategoryID)

	// Batch continues past failures; duplicates report per record.
	assert.NotEmpty(t, results[3].Error)
}

func TestRender(t *testing.T) {
	uc := NewCategoryUseCase(newFakeRepo(), testLogger())

	view := uc.Render(&model.Category{
		BaseModel: model.BaseModel{ID: "c1"},
		Name:      model.LocaleText{EN: "Shoes", ZhHant: "鞋"},
		Slug:      model.LocaleText{EN: "shoes"},
	}, model.LocaleZhHant)

	assert.Equal(t, "鞋", view.Name)
	assert.Equal(t, "shoes", view.Slug)

	assert.Nil(t, uc.Render(nil, model.LocaleEN))
}
