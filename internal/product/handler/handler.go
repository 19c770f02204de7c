package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirevo/shop-catalog-service/internal/auth"
	"github.com/mirevo/shop-catalog-service/internal/httpx"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/internal/product"
	"github.com/mirevo/shop-catalog-service/internal/product/dto"
	"github.com/mirevo/shop-catalog-service/internal/product/query"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.create)
		r.Post("/search", h.search)
		r.Get("/{id}", h.get)
		r.Get("/{id}/family", h.family)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

type productRequest struct {
	MerchantID         *string                 `json:"merchantId"`
	SKU                string                  `json:"sku"`
	Name               model.LocaleText        `json:"name"`
	Description        model.LocaleText        `json:"description"`
	ShortDescription   model.LocaleText        `json:"shortDescription"`
	Price              float64                 `json:"price"`
	ProductType        model.ProductType       `json:"productType"`
	IsPromotionProduct bool                    `json:"isPromotionProduct"`
	ParentID           *string                 `json:"parentId"`
	Attributes         model.ProductAttributes `json:"attributes"`
	CategoryIDs        []string                `json:"categoryIds"`
	FeaturedMediaID    *string                 `json:"featuredMediaId"`
	GalleryIDs         []string                `json:"galleryIds"`
	DescriptionGallery []string                `json:"descriptionGalleryIds"`
	RelatedProductIDs  []string                `json:"relatedProductIds"`
	RewardPayout       *float64                `json:"rewardPayout"`
	Availability       model.Availability      `json:"availability"`
	StockReadyDate     string                  `json:"stockReadyDate"`
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &dto.CreateProductInput{
		ShopID:             sc.ShopID,
		MerchantID:         req.MerchantID,
		SKU:                req.SKU,
		Name:               req.Name,
		Description:        req.Description,
		ShortDescription:   req.ShortDescription,
		Price:              req.Price,
		ProductType:        req.ProductType,
		IsPromotionProduct: req.IsPromotionProduct,
		ParentID:           req.ParentID,
		Attributes:         req.Attributes,
		CategoryIDs:        req.CategoryIDs,
		FeaturedMediaID:    req.FeaturedMediaID,
		GalleryIDs:         req.GalleryIDs,
		DescriptionGallery: req.DescriptionGallery,
		RelatedProductIDs:  req.RelatedProductIDs,
		RewardPayout:       req.RewardPayout,
		Availability:       req.Availability,
		StockReadyDate:     req.StockReadyDate,
		CreatedBy:          r.Header.Get("X-User-Id"),
	})
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, p)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	p, err := h.uc.GetProduct(r.Context(), sc.ShopID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if p == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *ProductHandler) search(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var filter query.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filter.ShopID = sc.ShopID

	view, err := h.uc.SearchProducts(r.Context(), &filter, sc.Locale, sc.Currency)
	if err != nil {
		h.logger.Error("product search failed", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, view)
}

func (h *ProductHandler) family(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	family, err := h.uc.FindVariationFamily(r.Context(), sc.ShopID, chi.URLParam(r, "id"), sc.Locale, sc.Currency)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, family)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), &dto.UpdateProductInput{
		ID:                 chi.URLParam(r, "id"),
		ShopID:             sc.ShopID,
		MerchantID:         req.MerchantID,
		SKU:                req.SKU,
		Name:               req.Name,
		Description:        req.Description,
		ShortDescription:   req.ShortDescription,
		Price:              req.Price,
		IsPromotionProduct: req.IsPromotionProduct,
		Attributes:         req.Attributes,
		CategoryIDs:        req.CategoryIDs,
		FeaturedMediaID:    req.FeaturedMediaID,
		GalleryIDs:         req.GalleryIDs,
		DescriptionGallery: req.DescriptionGallery,
		RelatedProductIDs:  req.RelatedProductIDs,
		RewardPayout:       req.RewardPayout,
		Availability:       req.Availability,
		StockReadyDate:     req.StockReadyDate,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if err := h.uc.DeleteProduct(r.Context(), sc.ShopID, chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
