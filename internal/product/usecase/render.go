package usecase

import (
	"context"

	"github.com/mirevo/shop-catalog-service/internal/attribute"
	catdto "github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/currency"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product"
	"github.com/mirevo/shop-catalog-service/internal/product/dto"
	"github.com/mirevo/shop-catalog-service/internal/reward"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"go.uber.org/zap"
)

func (uc *productUseCase) Render(ctx context.Context, p *model.Product, locale model.Locale, curr string, sh *model.Shop) (*dto.ProductView, error) {
	return uc.render(ctx, p, locale, curr, sh, 0)
}

// render composes the full projection. Related products are rendered one
// level deep only; depth keeps a cyclic related-product graph from recursing
// without bound.
func (uc *productUseCase) render(ctx context.Context, p *model.Product, locale model.Locale, curr string, sh *model.Shop, depth int) (*dto.ProductView, error) {
	if sh == nil {
		return nil, apperr.NotFound("shop", p.ShopID)
	}

	view := &dto.ProductView{
		ID:                 p.ID,
		ProductNumber:      product.FormatNumber(sh.ProductNumberPrefix, p.ProductNumber),
		SKU:                p.SKU,
		Name:               p.Name.Resolve(locale),
		Description:        p.Description.Resolve(locale),
		ShortDescription:   p.ShortDescription.Resolve(locale),
		ProductType:        p.ProductType,
		IsPromotionProduct: p.IsPromotionProduct,
		ParentID:           p.ParentID,
		Availability:       p.Availability,
		StockReadyDate:     p.StockReadyDate,
		RewardPayout:       reward.Payout(sh, p),
	}

	price, currencyCode, err := uc.resolvePrice(ctx, p, curr, sh)
	if err != nil {
		return nil, err
	}
	view.Price = price
	view.Currency = currencyCode

	if p.FeaturedMediaID != nil {
		view.FeaturedMedia = uc.Media.Render(*p.FeaturedMediaID)
	}
	for _, id := range p.GalleryIDs {
		if v := uc.Media.Render(id); v != nil {
			view.Gallery = append(view.Gallery, v)
		}
	}
	for _, id := range p.DescriptionGallery {
		if v := uc.Media.Render(id); v != nil {
			view.DescriptionGallery = append(view.DescriptionGallery, v)
		}
	}

	cats, err := uc.renderCategories(ctx, p, locale)
	if err != nil {
		return nil, err
	}
	view.Categories = cats

	attrs, err := uc.renderAttributes(ctx, p, locale)
	if err != nil {
		return nil, err
	}
	view.Attributes = attrs

	if depth == 0 && len(p.RelatedProductIDs) > 0 {
		related, err := uc.Repo.FindByIDs(ctx, p.ShopID, p.RelatedProductIDs)
		if err != nil {
			return nil, err
		}
		for i := range related {
			rv, err := uc.render(ctx, &related[i], locale, curr, sh, depth+1)
			if err != nil {
				return nil, err
			}
			view.RelatedProducts = append(view.RelatedProducts, rv)
		}
	}

	return view, nil
}

// resolvePrice converts the stored price into the requested currency. When
// the conversion is ambiguous or no rate exists the price is suppressed,
// never guessed.
func (uc *productUseCase) resolvePrice(ctx context.Context, p *model.Product, curr string, sh *model.Shop) (*float64, string, error) {
	if curr == "" || curr == sh.Currency {
		price := p.Price
		return &price, sh.Currency, nil
	}

	rates, err := uc.FXRates.FindByShop(ctx, p.ShopID)
	if err != nil {
		return nil, curr, err
	}
	converted, ok := currency.Convert(p.Price, sh.Currency, curr, rates)
	if !ok {
		uc.Logger.Debug("price suppressed",
			zap.String("product_id", p.ID),
			zap.String("base", sh.Currency),
			zap.String("quote", curr),
			zap.Error(apperr.ErrConversionAmbiguous))
		return nil, curr, nil
	}
	return &converted, curr, nil
}

func (uc *productUseCase) renderCategories(ctx context.Context, p *model.Product, locale model.Locale) ([]*catdto.CategoryView, error) {
	views := make([]*catdto.CategoryView, 0, len(p.CategoryIDs))
	if len(p.CategoryIDs) == 0 {
		return views, nil
	}
	cats, err := uc.CatRepo.FindByIDs(ctx, p.ShopID, p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		views = append(views, uc.Categories.Render(&cats[i], locale))
	}
	return views, nil
}

func (uc *productUseCase) renderAttributes(ctx context.Context, p *model.Product, locale model.Locale) ([]dto.AttributeView, error) {
	views := make([]dto.AttributeView, 0, len(p.Attributes))
	if len(p.Attributes) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		ids = append(ids, a.AttributeID)
	}
	defs, err := uc.Attributes.FindByIDs(ctx, p.ShopID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Attribute, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}

	for _, a := range p.Attributes {
		def, ok := byID[a.AttributeID]
		if !ok {
			// Definition deleted after the fact; skip rather than fail the
			// whole render.
			continue
		}
		av := dto.AttributeView{
			AttributeID: a.AttributeID,
			Code:        def.Code,
			Name:        def.Name.Resolve(locale),
			Value:       attribute.ResolveValueForDisplay(a.Value, locale),
		}
		if def.Unit != nil {
			av.Unit = def.Unit.Resolve(locale)
		}
		views = append(views, av)
	}
	return views, nil
}

func (uc *productUseCase) FindVariationFamily(ctx context.Context, shopID, parentID string, locale model.Locale, curr string) (*dto.VariationFamilyView, error) {
	parent, err := uc.Repo.FindByID(ctx, shopID, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NotFound("product", parentID)
	}

	sh, err := uc.Shops.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	parentView, err := uc.Render(ctx, parent, locale, curr, sh)
	if err != nil {
		return nil, err
	}

	children, err := uc.Repo.FindByParentID(ctx, shopID, parentID)
	if err != nil {
		return nil, err
	}

	family := &dto.VariationFamilyView{Parent: parentView, Children: make([]*dto.ProductView, 0, len(children))}
	for i := range children {
		cv, err := uc.Render(ctx, &children[i], locale, curr, sh)
		if err != nil {
			return nil, err
		}
		family.Children = append(family.Children, cv)
	}
	return family, nil
}
