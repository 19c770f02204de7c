package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirevo/shop-catalog-service/internal/auth"
	"github.com/mirevo/shop-catalog-service/internal/discount"
	"github.com/mirevo/shop-catalog-service/internal/discount/dto"
	"github.com/mirevo/shop-catalog-service/internal/httpx"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	uc     discount.UseCase
	logger logger.ZapLogger
}

func NewDiscountHandler(uc discount.UseCase, log logger.ZapLogger) *DiscountHandler {
	return &DiscountHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DiscountHandler) RegisterRoutes(r chi.Router) {
	r.Route("/discount-groups", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Get("/{id}/view", h.getView)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

type groupRequest struct {
	Name               string                  `json:"name"`
	Placement          model.DiscountPlacement `json:"placement"`
	ProductsScope      model.ProductsScope     `json:"productsScope"`
	AttachToCatIDs     []string                `json:"attachToCatIds"`
	AttachToProductIDs []string                `json:"attachToProductIds"`
	DiscountProducts   []model.DiscountProduct `json:"discountProducts"`
}

func (h *DiscountHandler) create(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	group, err := h.uc.CreateGroup(r.Context(), &dto.CreateDiscountGroupInput{
		ShopID:             sc.ShopID,
		Name:               req.Name,
		Placement:          req.Placement,
		ProductsScope:      req.ProductsScope,
		AttachToCatIDs:     req.AttachToCatIDs,
		AttachToProductIDs: req.AttachToProductIDs,
		DiscountProducts:   req.DiscountProducts,
		CreatedBy:          r.Header.Get("X-User-Id"),
	})
	if err != nil {
		h.logger.Error("failed to create discount group", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	httpx.Respond(w, http.StatusCreated, group)
}

func (h *DiscountHandler) get(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	group, err := h.uc.GetGroup(r.Context(), sc.ShopID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if group == nil {
		http.Error(w, "discount group not found", http.StatusNotFound)
		return
	}
	httpx.Respond(w, http.StatusOK, group)
}

func (h *DiscountHandler) getView(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	view, err := h.uc.GetGroupView(r.Context(), sc.ShopID, chi.URLParam(r, "id"), sc.Locale)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, view)
}

func (h *DiscountHandler) list(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	groups, err := h.uc.ListGroups(r.Context(), sc.ShopID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]interface{}{"size": len(groups), "items": groups})
}

func (h *DiscountHandler) update(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	group, err := h.uc.UpdateGroup(r.Context(), &dto.UpdateDiscountGroupInput{
		ID:                 chi.URLParam(r, "id"),
		ShopID:             sc.ShopID,
		Name:               req.Name,
		Placement:          req.Placement,
		ProductsScope:      req.ProductsScope,
		AttachToCatIDs:     req.AttachToCatIDs,
		AttachToProductIDs: req.AttachToProductIDs,
		DiscountProducts:   req.DiscountProducts,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, group)
}

func (h *DiscountHandler) delete(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if err := h.uc.DeleteGroup(r.Context(), sc.ShopID, chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
