package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirevo/shop-catalog-service/internal/attribute"
	"github.com/mirevo/shop-catalog-service/internal/attribute/dto"
	"github.com/mirevo/shop-catalog-service/internal/auth"
	"github.com/mirevo/shop-catalog-service/internal/httpx"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type AttributeHandler struct {
	uc     attribute.UseCase
	logger logger.ZapLogger
}

func NewAttributeHandler(uc attribute.UseCase, log logger.ZapLogger) *AttributeHandler {
	return &AttributeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AttributeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/attributes", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

type attributeRequest struct {
	Code string              `json:"code"`
	Name model.LocaleText    `json:"name"`
	Type model.AttributeType `json:"type"`
	Unit *model.LocaleText   `json:"unit"`
}

func (h *AttributeHandler) create(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if sc.ShopID == "" {
		http.Error(w, "missing shop context", http.StatusUnauthorized)
		return
	}

	var req attributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	attr, err := h.uc.CreateAttribute(r.Context(), &dto.CreateAttributeInput{
		ShopID:    sc.ShopID,
		Code:      req.Code,
		Name:      req.Name,
		Type:      req.Type,
		Unit:      req.Unit,
		CreatedBy: r.Header.Get("X-User-Id"),
	})
	if err != nil {
		h.logger.Error("failed to create attribute", zap.Error(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, attr)
}

func (h *AttributeHandler) get(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	attr, err := h.uc.GetAttribute(r.Context(), sc.ShopID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if attr == nil {
		http.Error(w, "attribute not found", http.StatusNotFound)
		return
	}
	httpx.Respond(w, http.StatusOK, attr)
}

func (h *AttributeHandler) list(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	attrs, err := h.uc.ListAttributes(r.Context(), sc.ShopID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, attrs)
}

func (h *AttributeHandler) update(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())

	var req attributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	attr, err := h.uc.UpdateAttribute(r.Context(), &dto.UpdateAttributeInput{
		ID:     chi.URLParam(r, "id"),
		ShopID: sc.ShopID,
		Name:   req.Name,
		Unit:   req.Unit,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, attr)
}

func (h *AttributeHandler) delete(w http.ResponseWriter, r *http.Request) {
	sc := auth.GetShopContext(r.Context())
	if err := h.uc.DeleteAttribute(r.Context(), sc.ShopID, chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
