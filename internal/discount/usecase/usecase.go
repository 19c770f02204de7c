package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mirevo/shop-catalog-service/internal/category"
	catdto "github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/discount"
	"github.com/mirevo/shop-catalog-service/internal/discount/dto"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product"
	"github.com/mirevo/shop-catalog-service/internal/shop"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
	"github.com/mirevo/shop-catalog-service/pkg/broker"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type discountUseCase struct {
	repo     discount.Repository
	catRepo  category.Repository
	prodRepo product.Repository
	shops    shop.Repository
	producer *broker.KafkaProducer // Optional
	logger   logger.ZapLogger
}

func NewDiscountUseCase(
	repo discount.Repository,
	catRepo category.Repository,
	prodRepo product.Repository,
	shops shop.Repository,
	producer *broker.KafkaProducer,
	log logger.ZapLogger,
) discount.UseCase {
	return &discountUseCase{
		repo:     repo,
		catRepo:  catRepo,
		prodRepo: prodRepo,
		shops:    shops,
		producer: producer,
		logger:   log,
	}
}

func (uc *discountUseCase) CreateGroup(ctx context.Context, input *dto.CreateDiscountGroupInput) (*model.DiscountGroup, error) {
	if input.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if err := validateAttachment(input.ProductsScope, input.AttachToCatIDs, input.AttachToProductIDs); err != nil {
		return nil, err
	}
	if err := validateDiscountProducts(input.DiscountProducts); err != nil {
		return nil, err
	}

	now := time.Now()
	group := &model.DiscountGroup{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: input.CreatedBy,
		},
		ShopID:             input.ShopID,
		Name:               input.Name,
		Placement:          input.Placement,
		ProductsScope:      input.ProductsScope,
		AttachToCatIDs:     input.AttachToCatIDs,
		AttachToProductIDs: input.AttachToProductIDs,
		DiscountProducts:   normalizeDiscountProducts(input.DiscountProducts),
	}

	if err := uc.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	go uc.publishEvent(context.Background(), "DiscountGroupCreated", group)

	return group, nil
}

func (uc *discountUseCase) GetGroup(ctx context.Context, shopID, id string) (*model.DiscountGroup, error) {
	return uc.repo.FindByID(ctx, shopID, id)
}

func (uc *discountUseCase) ListGroups(ctx context.Context, shopID string) ([]model.DiscountGroup, error) {
	return uc.repo.FindAllByShop(ctx, shopID)
}

func (uc *discountUseCase) UpdateGroup(ctx context.Context, input *dto.UpdateDiscountGroupInput) (*model.DiscountGroup, error) {
	group, err := uc.repo.FindByID(ctx, input.ShopID, input.ID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("discount group", input.ID)
	}

	if err := validateAttachment(input.ProductsScope, input.AttachToCatIDs, input.AttachToProductIDs); err != nil {
		return nil, err
	}
	if err := validateDiscountProducts(input.DiscountProducts); err != nil {
		return nil, err
	}

	group.Name = input.Name
	group.Placement = input.Placement
	group.ProductsScope = input.ProductsScope
	group.AttachToCatIDs = input.AttachToCatIDs
	group.AttachToProductIDs = input.AttachToProductIDs
	group.DiscountProducts = normalizeDiscountProducts(input.DiscountProducts)
	group.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, group); err != nil {
		return nil, err
	}

	go uc.publishEvent(context.Background(), "DiscountGroupUpdated", group)

	return group, nil
}

func (uc *discountUseCase) DeleteGroup(ctx context.Context, shopID, id string) error {
	group, err := uc.repo.FindByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if group == nil {
		return nil // Already gone
	}

	if err := uc.repo.Delete(ctx, shopID, id); err != nil {
		return err
	}

	go uc.publishEvent(context.Background(), "DiscountGroupDeleted", group)
	return nil
}

func (uc *discountUseCase) publishEvent(ctx context.Context, eventType string, group *model.DiscountGroup) {
	if uc.producer == nil {
		return
	}
	event := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"event_type": eventType,
		"payload":    group,
		"timestamp":  time.Now(),
	}
	if err := uc.producer.Publish(ctx, group.ShopID, event); err != nil {
		uc.logger.Error("failed to publish discount event",
			zap.String("event_type", eventType),
			zap.String("group_id", group.ID),
			zap.Error(err),
		)
	}
}

func (uc *discountUseCase) GetGroupView(ctx context.Context, shopID, id string, locale model.Locale) (*dto.GroupView, error) {
	group, err := uc.repo.FindByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("discount group", id)
	}

	sh, err := uc.shops.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	prefix := ""
	if sh != nil {
		prefix = sh.ProductNumberPrefix
	}

	cats, err := uc.catRepo.FindByIDs(ctx, shopID, group.AttachToCatIDs)
	if err != nil {
		return nil, err
	}
	catsByID := make(map[string]*model.Category, len(cats))
	for i := range cats {
		catsByID[cats[i].ID] = &cats[i]
	}

	productIDs := append([]string{}, group.AttachToProductIDs...)
	for _, e := range group.DiscountProducts {
		productIDs = append(productIDs, e.ProductID)
	}
	prods, err := uc.prodRepo.FindByIDs(ctx, shopID, productIDs)
	if err != nil {
		return nil, err
	}
	prodsByID := make(map[string]*model.Product, len(prods))
	for i := range prods {
		prodsByID[prods[i].ID] = &prods[i]
	}

	return RenderGroup(group, locale, prefix, catsByID, prodsByID), nil
}

// RenderGroup hydrates the group's references into rendered views. It never
// fetches: the caller joins categories and products beforehand; unresolved
// ids are dropped from the view.
func RenderGroup(
	group *model.DiscountGroup,
	locale model.Locale,
	productPrefix string,
	catsByID map[string]*model.Category,
	prodsByID map[string]*model.Product,
) *dto.GroupView {
	view := &dto.GroupView{
		ID:               group.ID,
		Name:             group.Name,
		Placement:        group.Placement,
		ProductsScope:    group.ProductsScope,
		AttachToCats:     []*catdto.CategoryView{},
		AttachToProducts: []*dto.ProductRef{},
		DiscountProducts: make([]dto.DiscountProductView, 0, len(group.DiscountProducts)),
	}

	for _, id := range group.AttachToCatIDs {
		if c, ok := catsByID[id]; ok {
			view.AttachToCats = append(view.AttachToCats, &catdto.CategoryView{
				ID:           c.ID,
				Name:         c.Name.Resolve(locale),
				Slug:         c.Slug.Resolve(locale),
				ParentID:     c.ParentID,
				RewardPayout: c.RewardPayout,
			})
		}
	}
	for _, id := range group.AttachToProductIDs {
		if p, ok := prodsByID[id]; ok {
			view.AttachToProducts = append(view.AttachToProducts, productRef(p, locale, productPrefix))
		}
	}
	for _, e := range group.DiscountProducts {
		dv := dto.DiscountProductView{
			DiscountType:       e.DiscountType,
			DiscountPrice:      e.DiscountPrice,
			DiscountPercentage: e.DiscountPercentage,
		}
		if p, ok := prodsByID[e.ProductID]; ok {
			dv.Product = productRef(p, locale, productPrefix)
		}
		view.DiscountProducts = append(view.DiscountProducts, dv)
	}
	return view
}

func productRef(p *model.Product, locale model.Locale, prefix string) *dto.ProductRef {
	return &dto.ProductRef{
		ID:            p.ID,
		ProductNumber: product.FormatNumber(prefix, p.ProductNumber),
		SKU:           p.SKU,
		Name:          p.Name.Resolve(locale),
		Price:         p.Price,
	}
}
