package handlers

import (
	"log/slog"
	"net/http"

	"github.com/yolimar-textil/storefront-api/internal/catalog"
)

// AdminHandler exposes the pricing configuration to the admin page. It sits
// behind the API-key middleware.
type AdminHandler struct {
	config *catalog.Config
	logger *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(config *catalog.Config, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		config: config,
		logger: logger,
	}
}

// GetConfig handles GET /api/admin/config
// Returns the price tables and discount programs currently in effect.
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.config)
}
