package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yolimar-textil/storefront-api/internal/cart"
	"github.com/yolimar-textil/storefront-api/internal/models"
	"github.com/yolimar-textil/storefront-api/internal/order"
	"github.com/yolimar-textil/storefront-api/internal/service"
)

// OrderHandler turns the session cart into an order export: the JSON
// summary with its WhatsApp link, or the production PDF.
type OrderHandler struct {
	store        *cart.Store
	orderService *service.OrderService
	notifier     *order.MailNotifier
	company      order.Company
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *cart.Store, orderService *service.OrderService, notifier *order.MailNotifier, company order.Company, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		store:        store,
		orderService: orderService,
		notifier:     notifier,
		company:      company,
		log:          log,
	}
}

// orderResponse is the payload of POST /api/order.
type orderResponse struct {
	Order       *models.OrderSummary `json:"order"`
	Message     string               `json:"message"`
	WhatsAppURL string               `json:"whatsappUrl"`
}

// CreateOrder handles POST /api/order
// The cart is snapshotted once; mutating it afterwards does not change the
// returned summary. The cart itself is left untouched so the client can retry.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.buildSummary(w, r)
	if !ok {
		return
	}

	// best effort: a failed mail must not fail the order
	if h.notifier.Enabled() {
		if err := h.notifier.NotifySeller(r.Context(), summary); err != nil {
			h.log.Warn("seller mail notification failed",
				"order_code", summary.OrderCode, "error", err)
		}
	}

	message := order.WhatsAppMessage(summary, h.company)
	WriteJSON(w, http.StatusOK, orderResponse{
		Order:       summary,
		Message:     message,
		WhatsAppURL: order.WhatsAppURL(h.company, message),
	}, h.log)
	h.log.Info("order created", "order_code", summary.OrderCode, "total_price", summary.TotalPrice)
}

// CreateOrderPDF handles POST /api/order/pdf
// Same contract as CreateOrder, but the response body is the production PDF.
func (h *OrderHandler) CreateOrderPDF(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.buildSummary(w, r)
	if !ok {
		return
	}

	data, err := order.PDF(summary, h.company)
	if err != nil {
		h.log.Error("failed to render order pdf", "order_code", summary.OrderCode, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Pedido_`+summary.OrderCode+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("failed to write pdf response", "error", err)
	}
}

// buildSummary decodes the client info, snapshots the session cart and
// builds the summary, writing the error response itself on failure.
func (h *OrderHandler) buildSummary(w http.ResponseWriter, r *http.Request) (*models.OrderSummary, bool) {
	var client models.ClientInfo
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return nil, false
	}

	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
		return nil, false
	}

	snap := h.store.Get(cookie.Value).Snapshot()
	summary, err := h.orderService.BuildOrder(snap, client)
	if err != nil {
		switch err {
		case service.ErrEmptyCart:
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
		case service.ErrNameRequired:
			WriteError(w, http.StatusBadRequest, "Client name is required", h.log)
		case service.ErrInvalidPhone:
			WriteError(w, http.StatusBadRequest, "Client phone must contain at least 8 digits", h.log)
		case service.ErrInvalidEmail:
			WriteError(w, http.StatusBadRequest, "Client email is not valid", h.log)
		default:
			h.log.Error("failed to build order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return nil, false
	}
	return summary, true
}
