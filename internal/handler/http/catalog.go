package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"
	"github.com/Nghalu/KingdomFarming/pkg/httputil"
	"github.com/Nghalu/KingdomFarming/pkg/pagination"
	"github.com/Nghalu/KingdomFarming/pkg/validator"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/service"
)

// CatalogHandler handles HTTP requests for product and farm browsing.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Search:      q.Get("search"),
		Category:    domain.ProductCategory(q.Get("category")),
		District:    q.Get("district"),
		OrganicOnly: q.Get("organic") == "true",
		InStockOnly: q.Get("in_stock") == "true",
		FarmerID:    q.Get("farmer_id"),
	}

	result, err := h.service.ListProducts(r.Context(), filter, pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// GetProduct handles GET /api/v1/products/{productID}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListFarms handles GET /api/v1/farms
func (h *CatalogHandler) ListFarms(w http.ResponseWriter, r *http.Request) {
	farms, err := h.service.ListFarms(r.Context(), r.URL.Query().Get("district"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: farms})
}

// GetFarm handles GET /api/v1/farms/{farmID}
func (h *CatalogHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	farm, err := h.service.GetFarm(r.Context(), chi.URLParam(r, "farmID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: farm})
}

// CreateProduct handles POST /api/v1/farmer/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	var req service.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), farmerID, req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}

// UpdateProduct handles PUT /api/v1/farmer/products/{productID}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	var req service.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), farmerID, chi.URLParam(r, "productID"), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}
