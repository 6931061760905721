package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yolimar-textil/storefront-api/internal/catalog"
	"github.com/yolimar-textil/storefront-api/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/product/{productId}
// Returns a single product or:
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if err == catalog.ErrProductNotFound {
			h.logger.Info("product not found", "productId", productID)
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetVariants handles GET /api/product/{productId}/variants
func (h *ProductHandler) GetVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	variants, err := h.service.GetVariants(ctx, productID)
	if err != nil {
		if err == catalog.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("failed to get variants", "productId", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, variants)
}

// productID extracts and validates the productId URL parameter. It writes
// the error response itself when the parameter is unusable.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "productId")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", raw, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}
	return id, true
}
