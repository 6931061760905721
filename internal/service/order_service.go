package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yolimar-textil/storefront-api/internal/cart"
	"github.com/yolimar-textil/storefront-api/internal/models"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNameRequired = errors.New("client name is required")
	ErrInvalidPhone = errors.New("client phone must contain at least 8 digits")
	ErrInvalidEmail = errors.New("client email is not valid")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// OrderService freezes cart snapshots into order summaries for export.
type OrderService struct {
	log *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(log *slog.Logger) *OrderService {
	return &OrderService{log: log}
}

// BuildOrder validates the client info and turns the snapshot into an order
// summary. The snapshot must come from a non-empty cart; once built, the
// summary no longer depends on the cart.
func (s *OrderService) BuildOrder(snap cart.Snapshot, client models.ClientInfo) (*models.OrderSummary, error) {
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}

	lines := make([]models.OrderLine, 0, len(snap.Lines))
	var subtotal int64
	for _, pl := range snap.Lines {
		baseTotal := pl.BasePrice.Mul(decimal.NewFromInt(int64(pl.Quantity))).Round(0).IntPart()
		subtotal += baseTotal

		line := models.OrderLine{
			ProductID: pl.ProductID,
			Name:      pl.Name,
			Type:      pl.Type,
			Color:     pl.Color,
			Size:      pl.Size,
			Quantity:  pl.Quantity,
			UnitPrice: pl.UnitPrice,
			BaseTotal: baseTotal,
			LineTotal: pl.LineTotal,
		}
		if pl.IsCustom() {
			line.IsCustom = true
			line.DesignCode = pl.Design.Code
			line.DesignName = pl.Design.Name
			line.DesignPosition = pl.Design.Position
		}
		lines = append(lines, line)
	}

	total := snap.Totals.TotalPrice
	summary := &models.OrderSummary{
		OrderCode:     generateOrderCode(),
		Lines:         lines,
		TotalItems:    snap.Totals.TotalItems,
		Subtotal:      subtotal,
		TotalDiscount: subtotal - total,
		TotalPrice:    total,
		Client:        client,
		CreatedAt:     time.Now(),
	}

	s.log.Info("order summary built",
		"order_code", summary.OrderCode,
		"total_items", summary.TotalItems,
		"total_price", summary.TotalPrice,
	)
	return summary, nil
}

func validateClient(client models.ClientInfo) error {
	if strings.TrimSpace(client.Name) == "" {
		return ErrNameRequired
	}
	if len(nonDigits.ReplaceAllString(client.Phone, "")) < 8 {
		return ErrInvalidPhone
	}
	if client.Email != "" && !emailPattern.MatchString(client.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// generateOrderCode builds a human-readable order code: PED-YYYYMMDD-HHMM-NNN
func generateOrderCode() string {
	now := time.Now()
	return fmt.Sprintf("PED-%s-%s-%03d", now.Format("20060102"), now.Format("1504"), rand.Intn(1000))
}
