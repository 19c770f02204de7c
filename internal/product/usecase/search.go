package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product/dto"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"go.uber.org/zap"
)

const productIndex = "products"

const productMapping = `{
	"mappings": {
		"properties": {
			"shopId": { "type": "keyword" },
			"sku": { "type": "keyword" },
			"price": { "type": "double" },
			"createdAt": { "type": "date" }
		}
	}
}`

func (uc *productUseCase) SearchProducts(ctx context.Context, f *query.Filter, locale model.Locale, currency string) (*dto.ProductListView, error) {
	f.Normalize()

	sh, err := uc.Shops.FindByID(ctx, f.ShopID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, apperr.NotFound("shop", f.ShopID)
	}

	cacheKey := uc.searchCacheKey(f, locale, currency)
	if cached := uc.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// Slugs take precedence over ids: resolve and overwrite.
	if f.Cats != nil && len(f.Cats.Slugs) > 0 {
		ids, err := uc.Categories.ResolveSlugs(ctx, f.ShopID, locale, f.Cats.Slugs)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &dto.ProductListView{Size: 0, Page: f.Page, Items: []*dto.ProductView{}}, nil
		}
		f.Cats.IDs = ids
	}
	if f.Cats != nil && len(f.Cats.IDs) == 0 {
		f.Cats = nil
	}

	// ES serves pure free-text queries; anything with structured sections
	// goes through SQL so the semantics stay exact.
	if f.Search != "" && f.Cats == nil && f.Attrs == nil && f.Price == nil && f.IsPromotionProduct == nil && uc.Search != nil {
		if view, err := uc.searchViaElastic(ctx, f, locale, currency, sh); err == nil {
			uc.storeResult(ctx, cacheKey, view)
			return view, nil
		} else {
			uc.Logger.Error("ES search failed, falling back to DB", zap.Error(err))
		}
	}

	catSets, err := uc.resolveCategorySets(ctx, f, locale)
	if err != nil {
		return nil, err
	}

	pred, err := query.Build(f, locale, catSets)
	if err != nil {
		return nil, err
	}

	products, count, err := uc.Repo.FindAll(ctx, pred, f.Page, f.PageSize)
	if err != nil {
		return nil, err
	}

	view := &dto.ProductListView{Size: count, Page: f.Page, Items: make([]*dto.ProductView, 0, len(products))}
	for i := range products {
		rendered, err := uc.Render(ctx, &products[i], locale, currency, sh)
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, rendered)
	}

	uc.storeResult(ctx, cacheKey, view)
	return view, nil
}

// resolveCategorySets expands the category filter into descendant sets: one
// unioned set for "or", one independently expanded set per id for "and".
func (uc *productUseCase) resolveCategorySets(ctx context.Context, f *query.Filter, locale model.Locale) ([]map[string]struct{}, error) {
	if f.Cats == nil {
		return nil, nil
	}

	if f.Cats.Type == query.CombineAnd {
		return uc.Categories.ResolveDescendantsForMany(ctx, f.ShopID, f.Cats.IDs)
	}

	union := make(map[string]struct{})
	for _, id := range f.Cats.IDs {
		set, err := uc.Categories.ResolveDescendants(ctx, f.ShopID, id)
		if err != nil {
			return nil, err
		}
		for k := range set {
			union[k] = struct{}{}
		}
	}
	return []map[string]struct{}{union}, nil
}

func (uc *productUseCase) searchViaElastic(ctx context.Context, f *query.Filter, locale model.Locale, currency string, sh *model.Shop) (*dto.ProductListView, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"query_string": map[string]interface{}{
							"query":  fmt.Sprintf("*%s*", f.Search),
							"fields": []string{"name.*^3", "sku", "description.*", "shortDescription.*"},
						},
					},
					{
						"term": map[string]interface{}{
							"shopId": f.ShopID,
						},
					},
				},
			},
		},
		"from": (f.Page - 1) * f.PageSize,
		"size": f.PageSize,
	}

	res, err := uc.Search.Search(ctx, productIndex, q)
	if err != nil {
		return nil, err
	}

	view := &dto.ProductListView{Size: res.Hits.Total.Value, Page: f.Page, Items: make([]*dto.ProductView, 0, len(res.Hits.Hits))}
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			continue
		}
		rendered, err := uc.Render(ctx, &p, locale, currency, sh)
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, rendered)
	}
	return view, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.Search == nil {
		return
	}
	_ = uc.Search.CreateIndex(ctx, productIndex, productMapping)
	if err := uc.Search.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.Logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) searchCacheKey(f *query.Filter, locale model.Locale, currency string) string {
	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("products:search:%s:%x", f.ShopID, md5.Sum(append(data, []byte(string(locale)+currency)...)))
}

func (uc *productUseCase) cachedResult(ctx context.Context, key string) *dto.ProductListView {
	if uc.Cache == nil || key == "" {
		return nil
	}
	val, err := uc.Cache.Client.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var view dto.ProductListView
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil
	}
	return &view
}

func (uc *productUseCase) storeResult(ctx context.Context, key string, view *dto.ProductListView) {
	if uc.Cache == nil || key == "" {
		return
	}
	if data, err := json.Marshal(view); err == nil {
		uc.Cache.Client.Set(ctx, key, data, 5*time.Minute)
	}
}

func (uc *productUseCase) invalidateSearchCache(ctx context.Context, shopID string) {
	if uc.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("products:search:%s:*", shopID)
	keys, err := uc.Cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.Cache.Client.Del(ctx, keys...)
	}
}
