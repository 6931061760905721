package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yolimar-textil/storefront-api/internal/cart"
	"github.com/yolimar-textil/storefront-api/internal/catalog"
)

// sessionCookie identifies the browser session a cart belongs to.
const sessionCookie = "cart_session"

// CartHandler handles the session cart endpoints.
type CartHandler struct {
	store  *cart.Store
	repo   catalog.Repository
	logger *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store, repo catalog.Repository, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		store:  store,
		repo:   repo,
		logger: logger,
	}
}

// session returns the request's session ID, minting a cookie on first contact.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := cart.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// addItemRequest is the payload for POST /api/cart/items.
type addItemRequest struct {
	ProductID int          `json:"productId"`
	Type      string       `json:"type"`
	Name      string       `json:"name"`
	Color     string       `json:"color"`
	Size      string       `json:"size"`
	Quantity  int          `json:"quantity"`
	Image     string       `json:"image"`
	Design    *cart.Design `json:"design,omitempty"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(h.session(w, r))
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// AddItem handles POST /api/cart/items
// The base price is captured from the catalog at add time; merging with an
// existing line keeps that line's captured price.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	line := cart.Line{
		ProductID: req.ProductID,
		Name:      req.Name,
		Type:      req.Type,
		Color:     req.Color,
		Size:      req.Size,
		Quantity:  req.Quantity,
		Image:     req.Image,
		Design:    req.Design,
	}
	if req.Design != nil {
		line.BasePrice = h.repo.CustomBasePrice(req.Size)
	} else {
		line.BasePrice = h.repo.ResolveBasePrice(req.Type, req.Size)
	}

	c := h.store.Get(h.session(w, r))
	added, err := c.AddLine(line)
	if err != nil {
		switch err {
		case cart.ErrInvalidQuantity:
			writeError(w, http.StatusBadRequest, "Quantity must be positive")
		case cart.ErrInvalidPrice:
			writeError(w, http.StatusBadRequest, "Invalid price")
		default:
			h.logger.Error("failed to add cart line", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.Info("cart line added",
		"line_key", added.Key,
		"quantity", added.Quantity,
		"custom", added.IsCustom(),
	)
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// updateItemRequest is the payload for PATCH /api/cart/items/{lineKey}.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /api/cart/items/{lineKey}
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := h.store.Get(h.session(w, r))
	c.SetQuantity(chi.URLParam(r, "lineKey"), req.Quantity)
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// RemoveItem handles DELETE /api/cart/items/{lineKey}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(h.session(w, r))
	c.RemoveLine(chi.URLParam(r, "lineKey"))
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(h.session(w, r))
	c.Clear()
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// OpenCart handles POST /api/cart/open
func (h *CartHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(h.session(w, r))
	c.Open()
	writeJSON(w, http.StatusOK, c.Snapshot())
}

// CloseCart handles POST /api/cart/close
func (h *CartHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(h.session(w, r))
	c.Close()
	writeJSON(w, http.StatusOK, c.Snapshot())
}
