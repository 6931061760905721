package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yolimar-textil/storefront-api/internal/catalog"
	"github.com/yolimar-textil/storefront-api/internal/pricing"
)

// PriceHandler quotes a price for a garment before it enters the cart. The
// product detail view and the designer both call it with the same contract
// the cart uses internally.
type PriceHandler struct {
	repo   catalog.Repository
	config *catalog.Config
	logger *slog.Logger
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(repo catalog.Repository, config *catalog.Config, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{
		repo:   repo,
		config: config,
		logger: logger,
	}
}

// priceResponse augments the quote with the inputs the UI displays alongside it.
type priceResponse struct {
	pricing.Quote
	BasePrice   int64  `json:"basePrice"`
	MinQuantity int    `json:"minQuantity"`
	Description string `json:"description"`
}

// GetQuote handles GET /api/price
//
// Query parameters:
//   - type, size: catalog lookup key (type ignored when custom=true)
//   - quantity: units of this garment
//   - custom: personalized garment, priced by the design program
//   - totalCustom: cart-wide personalized unit count (custom only)
func (h *PriceHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	quantity, err := strconv.Atoi(query.Get("quantity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	size := query.Get("size")
	isCustom := query.Get("custom") == "true"

	var quote pricing.Quote
	var basePrice int64
	var program pricing.Program

	if isCustom {
		totalCustom := quantity
		if raw := query.Get("totalCustom"); raw != "" {
			totalCustom, err = strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid totalCustom")
				return
			}
		}

		program = h.config.DesignProgram
		base := h.repo.CustomBasePrice(size)
		basePrice = base.Round(0).IntPart()
		quote, err = pricing.ComputeAggregate(base, quantity, program, totalCustom)
	} else {
		program = h.config.CatalogProgram
		base := h.repo.ResolveBasePrice(query.Get("type"), size)
		basePrice = base.Round(0).IntPart()
		quote, err = pricing.Compute(base, quantity, program)
	}

	if err != nil {
		if errors.Is(err, pricing.ErrInvalidQuantity) {
			writeError(w, http.StatusBadRequest, "Quantity must be positive")
			return
		}
		h.logger.Error("failed to compute quote", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{
		Quote:       quote,
		BasePrice:   basePrice,
		MinQuantity: program.MinQuantity,
		Description: program.Description,
	})
}
