package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mirevo/shop-catalog-service/internal/attribute"
	"github.com/mirevo/shop-catalog-service/internal/category"
	"github.com/mirevo/shop-catalog-service/internal/counter"
	"github.com/mirevo/shop-catalog-service/internal/currency"
	"github.com/mirevo/shop-catalog-service/internal/media"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product"
	"github.com/mirevo/shop-catalog-service/internal/product/dto"
	"github.com/mirevo/shop-catalog-service/internal/shop"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/broker"
	"github.com/mirevo/shop-catalog-service/pkg/cache"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"github.com/mirevo/shop-catalog-service/pkg/search"
	"go.uber.org/zap"
)

// Deps carries the collaborators the product usecase composes. Cache, Search
// and Producer are optional; the usecase degrades gracefully without them.
type Deps struct {
	Repo       product.Repository
	Categories category.UseCase
	CatRepo    category.Repository
	Attributes attribute.Repository
	Shops      shop.Repository
	FXRates    currency.Repository
	Sequence   counter.Sequence
	Media      media.Renderer
	Cache      *cache.RedisClient
	Search     *search.Client
	Producer   *broker.KafkaProducer
	Logger     logger.ZapLogger
}

type productUseCase struct {
	Deps
}

func NewProductUseCase(d Deps) product.UseCase {
	return &productUseCase{Deps: d}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.SKU == "" {
		return nil, apperr.Validation("sku", "sku is required")
	}

	unique, err := uc.Repo.IsSKUUnique(ctx, input.ShopID, input.SKU, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperr.Duplicate("sku", input.SKU)
	}

	if err := uc.checkVariation(ctx, input.ShopID, input.ProductType, input.ParentID); err != nil {
		return nil, err
	}

	attrs, err := uc.sanitizeAttributes(ctx, input.ShopID, input.Attributes)
	if err != nil {
		return nil, err
	}

	number, err := uc.Sequence.Next(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: input.CreatedBy,
		},
		ShopID:             input.ShopID,
		MerchantID:         input.MerchantID,
		ProductNumber:      number,
		SKU:                input.SKU,
		Name:               input.Name,
		Description:        input.Description,
		ShortDescription:   input.ShortDescription,
		Price:              input.Price,
		ProductType:        input.ProductType,
		IsPromotionProduct: input.IsPromotionProduct,
		ParentID:           input.ParentID,
		Attributes:         attrs,
		CategoryIDs:        input.CategoryIDs,
		FeaturedMediaID:    input.FeaturedMediaID,
		GalleryIDs:         input.GalleryIDs,
		DescriptionGallery: input.DescriptionGallery,
		RelatedProductIDs:  input.RelatedProductIDs,
		RewardPayout:       input.RewardPayout,
		Availability:       input.Availability,
		StockReadyDate:     input.StockReadyDate,
	}
	if p.Availability == "" {
		p.Availability = model.AvailabilityIn
	}

	if err := uc.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateSearchCache(context.Background(), p.ShopID)
	go uc.syncToElastic(context.Background(), p)
	go uc.publishEvent(context.Background(), "ProductCreated", p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, shopID, id string) (*model.Product, error) {
	return uc.Repo.FindByID(ctx, shopID, id)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if input.SKU == "" {
		return nil, apperr.Validation("sku", "sku is required")
	}

	p, err := uc.Repo.FindByID(ctx, input.ShopID, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product", input.ID)
	}

	if p.SKU != input.SKU {
		unique, err := uc.Repo.IsSKUUnique(ctx, input.ShopID, input.SKU, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperr.Duplicate("sku", input.SKU)
		}
	}

	attrs, err := uc.sanitizeAttributes(ctx, input.ShopID, input.Attributes)
	if err != nil {
		return nil, err
	}

	p.MerchantID = input.MerchantID
	p.SKU = input.SKU
	p.Name = input.Name
	p.Description = input.Description
	p.ShortDescription = input.ShortDescription
	p.Price = input.Price
	p.IsPromotionProduct = input.IsPromotionProduct
	p.Attributes = attrs
	p.CategoryIDs = input.CategoryIDs
	p.FeaturedMediaID = input.FeaturedMediaID
	p.GalleryIDs = input.GalleryIDs
	p.DescriptionGallery = input.DescriptionGallery
	p.RelatedProductIDs = input.RelatedProductIDs
	p.RewardPayout = input.RewardPayout
	if input.Availability != "" {
		p.Availability = input.Availability
	}
	p.StockReadyDate = input.StockReadyDate
	p.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateSearchCache(context.Background(), p.ShopID)
	go uc.syncToElastic(context.Background(), p)
	go uc.publishEvent(context.Background(), "ProductUpdated", p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, shopID, id string) error {
	p, err := uc.Repo.FindByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already gone
	}

	if err := uc.Repo.Delete(ctx, shopID, id); err != nil {
		return err
	}

	go uc.invalidateSearchCache(context.Background(), shopID)
	go uc.publishEvent(context.Background(), "ProductDeleted", p)
	if uc.Search != nil {
		go func() {
			if err := uc.Search.Delete(context.Background(), productIndex, id); err != nil {
				uc.Logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}

// checkVariation enforces the parent/child rules: a variationChild must
// reference an existing variationParent in the same shop, nothing else may
// carry a parent.
func (uc *productUseCase) checkVariation(ctx context.Context, shopID string, pt model.ProductType, parentID *string) error {
	if pt == model.ProductVariationChild {
		if parentID == nil || *parentID == "" {
			return apperr.Validation("parentId", "variation child requires a parent")
		}
		parent, err := uc.Repo.FindByID(ctx, shopID, *parentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return apperr.NotFound("product", *parentID)
		}
		if parent.ProductType != model.ProductVariationParent {
			return apperr.Validation("parentId", "parent must be a variation parent")
		}
		return nil
	}
	if parentID != nil && *parentID != "" {
		return apperr.Validation("parentId", "only variation children carry a parent")
	}
	return nil
}

// sanitizeAttributes drops entries whose value carries nothing (an empty
// selection is omitted, not stored as empty) and type-checks the rest
// against the registry.
func (uc *productUseCase) sanitizeAttributes(ctx context.Context, shopID string, attrs model.ProductAttributes) (model.ProductAttributes, error) {
	kept := make(model.ProductAttributes, 0, len(attrs))
	ids := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.Value.IsZero() {
			continue
		}
		kept = append(kept, a)
		ids = append(ids, a.AttributeID)
	}
	if len(kept) == 0 {
		return kept, nil
	}

	defs, err := uc.Attributes.FindByIDs(ctx, shopID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Attribute, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}

	for _, a := range kept {
		def, ok := byID[a.AttributeID]
		if !ok {
			return nil, apperr.NotFound("attribute", a.AttributeID)
		}
		if err := attribute.CheckStoredValue(def, a.Value); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

type catalogEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func (uc *productUseCase) publishEvent(ctx context.Context, eventType string, p *model.Product) {
	if uc.Producer == nil {
		return
	}
	event := catalogEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   p,
		Timestamp: time.Now(),
	}
	if err := uc.Producer.Publish(ctx, p.ShopID, event); err != nil {
		uc.Logger.Error("failed to publish catalog event",
			zap.String("event_type", eventType),
			zap.String("product_id", p.ID),
			zap.Error(err),
		)
	}
}
