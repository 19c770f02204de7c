package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mirevo/shop-catalog-service/internal/auth"
	"github.com/mirevo/shop-catalog-service/internal/category"
	"github.com/mirevo/shop-catalog-service/internal/category/dto"
	"github.com/mirevo/shop-catalog-service/internal/httpx"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Post("/import", h.importByCode)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

type createRequest struct {
	Code         string           `json:"code"`
	Name         model.LocaleText `json:"name"`
	Slug         model.LocaleText `json:"slug"`
	ParentID     *string          `json:"parentId"`
	RewardPayout *float64         `json:"rewardPayout"`
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cat, err := h.uc.CreateCategory(r.Context(), &dto.CreateCategoryInput{
		ShopID:       sc.ShopID,
		Code:         req.Code,
		Name:         req.Name,
		Slug:         req.Slug,
		ParentID:     req.ParentID,
		RewardPayout: req.RewardPayout,
		CreatedBy:    r.Header.Get("X-User-Id"),
	})
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}

	httpx.Respond(w, http.StatusCreated, h.uc.Render(cat, sc.Locale))
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	cat, err := h.uc.GetCategory(r.Context(), sc.ShopID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if cat == nil {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}
	httpx.Respond(w, http.StatusOK, h.uc.Render(cat, sc.Locale))
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())

	filters := &dto.CategoryFilters{ShopID: sc.ShopID}
	if parent := r.URL.Query().Get("parentId"); r.URL.Query().Has("parentId") {
		filters.ParentID = &parent
	}
	filters.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filters.PageSize, _ = strconv.Atoi(r.URL.Query().Get("size"))

	cats, count, err := h.uc.ListCategories(r.Context(), filters)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	views := make([]*dto.CategoryView, 0, len(cats))
	for i := range cats {
		views = append(views, h.uc.Render(&cats[i], sc.Locale))
	}
	httpx.Respond(w, http.StatusOK, map[string]interface{}{"size": count, "items": views})
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cat, err := h.uc.UpdateCategory(r.Context(), &dto.UpdateCategoryInput{
		ID:           chi.URLParam(r, "id"),
		ShopID:       sc.ShopID,
		Name:         req.Name,
		Slug:         req.Slug,
		ParentID:     req.ParentID,
		RewardPayout: req.RewardPayout,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, h.uc.Render(cat, sc.Locale))
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if err := h.uc.DeleteCategory(r.Context(), sc.ShopID, chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) importByCode(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var records []dto.ImportCategoryRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := h.uc.ImportByCode(r.Context(), sc.ShopID, r.Header.Get("X-User-Id"), records)
	httpx.Respond(w, http.StatusOK, results)
}
