package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catdto "github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/discount/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
)

type fakeGroupRepo struct {
	groups map[string]*model.DiscountGroup
}

func (r *fakeGroupRepo) Create(_ context.Context, g *model.DiscountGroup) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, shopID, id string) (*model.DiscountGroup, error) {
	g, ok := r.groups[id]
	if !ok || g.ShopID != shopID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGroupRepo) FindAllByShop(_ context.Context, shopID string) ([]model.DiscountGroup, error) {
	var out []model.DiscountGroup
	for _, g := range r.groups {
		if g.ShopID == shopID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, g *model.DiscountGroup) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, shopID, id string) error {
	delete(r.groups, id)
	return nil
}

type fakeCatRepo struct {
	categories map[string]*model.Category
}

func (r *fakeCatRepo) Create(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCatRepo) FindByID(_ context.Context, shopID, id string) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.ShopID != shopID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCatRepo) FindByIDs(_ context.Context, shopID string, ids []string) ([]model.Category, error) {
	var out []model.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok && c.ShopID == shopID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCatRepo) FindByCode(_ context.Context, shopID, code string) (*model.Category, error) {
	return nil, nil
}

func (r *fakeCatRepo) FindAllByShop(_ context.Context, shopID string) ([]model.Category, error) {
	return nil, nil
}

func (r *fakeCatRepo) FindAll(_ context.Context, f *catdto.CategoryFilters) ([]model.Category, int, error) {
	return nil, 0, nil
}

func (r *fakeCatRepo) Update(_ context.Context, c *model.Category) error { return nil }
func (r *fakeCatRepo) Delete(_ context.Context, shopID, id string) error { return nil }

type fakeProdRepo struct {
	products map[string]*model.Product
}

func (r *fakeProdRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProdRepo) FindByID(_ context.Context, shopID, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.ShopID != shopID {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProdRepo) FindByIDs(_ context.Context, shopID string, ids []string) ([]model.Product, error) {
	var out []model.Product
	seen := map[string]struct{}{}
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.products[id]; ok && p.ShopID == shopID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProdRepo) FindByParentID(_ context.Context, shopID, parentID string) ([]model.Product, error) {
	return nil, nil
}

func (r *fakeProdRepo) FindAll(_ context.Context, pred *query.Predicate, page, pageSize int) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProdRepo) Update(_ context.Context, p *model.Product) error { return nil }
func (r *fakeProdRepo) Delete(_ context.Context, shopID, id string) error {
	return nil
}

func (r *fakeProdRepo) IsSKUUnique(_ context.Context, shopID, sku, excludeID string) (bool, error) {
	return true, nil
}

type fakeShopRepo struct {
	shops map[string]*model.Shop
}

func (r *fakeShopRepo) FindByID(_ context.Context, id string) (*model.Shop, error) {
	return r.shops[id], nil
}

type env struct {
	uc    *discountUseCase
	cats  *fakeCatRepo
	prods *fakeProdRepo
}

func newEnv() *env {
	log := logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "fatal", DisableCaller: true, DisableStacktrace: true})
	cats := &fakeCatRepo{categories: map[string]*model.Category{}}
	prods := &fakeProdRepo{products: map[string]*model.Product{}}
	shops := &fakeShopRepo{shops: map[string]*model.Shop{
		"shop-1": {BaseModel: model.BaseModel{ID: "shop-1"}, ProductNumberPrefix: "SH", Currency: "USD"},
	}}
	uc := NewDiscountUseCase(&fakeGroupRepo{groups: map[string]*model.DiscountGroup{}}, cats, prods, shops, nil, log)
	return &env{uc: uc.(*discountUseCase), cats: cats, prods: prods}
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()
	e := newEnv()

	created, err := e.uc.CreateGroup(ctx, &dto.CreateDiscountGroupInput{
		ShopID:        "shop-1",
		Name:          "Summer sale",
		Placement:     model.PlacementProduct,
		ProductsScope: model.ScopeProducts,
		AttachToProductIDs: []string{"p1"},
		DiscountProducts: []model.DiscountProduct{
			{ProductID: "p1", DiscountType: model.DiscountFixed, DiscountPrice: fptr(5), DiscountPercentage: fptr(99)},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Stored entries are normalized to one populated field.
	got, err := e.uc.GetGroup(ctx, "shop-1", created.ID)
	require.NoError(t, err)
	require.Len(t, got.DiscountProducts, 1)
	assert.Nil(t, got.DiscountProducts[0].DiscountPercentage)
	require.NotNil(t, got.DiscountProducts[0].DiscountPrice)

	t.Run("invalid attachment rejected before write", func(t *testing.T) {
		_, err := e.uc.CreateGroup(ctx, &dto.CreateDiscountGroupInput{
			ShopID:        "shop-1",
			Name:          "Broken",
			ProductsScope: model.ScopeCats,
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("name required", func(t *testing.T) {
		_, err := e.uc.CreateGroup(ctx, &dto.CreateDiscountGroupInput{
			ShopID:        "shop-1",
			ProductsScope: model.ScopeGlobal,
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestUpdateGroupNotFound(t *testing.T) {
	e := newEnv()
	_, err := e.uc.UpdateGroup(context.Background(), &dto.UpdateDiscountGroupInput{
		ID:            "missing",
		ShopID:        "shop-1",
		Name:          "x",
		ProductsScope: model.ScopeGlobal,
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestGetGroupView(t *testing.T) {
	ctx := context.Background()
	e := newEnv()

	e.cats.categories["c1"] = &model.Category{
		BaseModel: model.BaseModel{ID: "c1"},
		ShopID:    "shop-1",
		Name:      model.LocaleText{EN: "Shoes", ZhHant: "鞋"},
	}
	e.prods.products["p1"] = &model.Product{
		BaseModel:     model.BaseModel{ID: "p1"},
		ShopID:        "shop-1",
		ProductNumber: 7,
		SKU:           "SKU-1",
		Name:          model.LocaleText{EN: "Sneaker"},
		Price:         80,
	}

	created, err := e.uc.CreateGroup(ctx, &dto.CreateDiscountGroupInput{
		ShopID:         "shop-1",
		Name:           "Category sale",
		Placement:      model.PlacementProduct,
		ProductsScope:  model.ScopeCats,
		AttachToCatIDs: []string{"c1", "gone"},
		DiscountProducts: []model.DiscountProduct{
			{ProductID: "p1", DiscountType: model.DiscountPercentage, DiscountPercentage: fptr(10)},
			{ProductID: "gone", DiscountType: model.DiscountPercentage, DiscountPercentage: fptr(20)},
		},
	})
	require.NoError(t, err)

	view, err := e.uc.GetGroupView(ctx, "shop-1", created.ID, model.LocaleZhHant)
	require.NoError(t, err)

	// Unresolvable ids are dropped from attachments but discount entries keep
	// their terms with a nil product.
	require.Len(t, view.AttachToCats, 1)
	assert.Equal(t, "鞋", view.AttachToCats[0].Name)
	assert.Empty(t, view.AttachToProducts)

	require.Len(t, view.DiscountProducts, 2)
	require.NotNil(t, view.DiscountProducts[0].Product)
	assert.Equal(t, "SH000007", view.DiscountProducts[0].Product.ProductNumber)
	assert.Equal(t, "Sneaker", view.DiscountProducts[0].Product.Name)
	assert.Nil(t, view.DiscountProducts[1].Product)

	t.Run("missing group not found", func(t *testing.T) {
		_, err := e.uc.GetGroupView(ctx, "shop-1", "missing", model.LocaleEN)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}
