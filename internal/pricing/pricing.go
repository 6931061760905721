package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("base price must not be negative")
)

// Program configures one discount rule: a flat amount off every unit once an
// eligibility quantity reaches the threshold. The catalog program compares a
// line's own quantity against the threshold; the design program compares the
// cart-wide count of personalized units.
type Program struct {
	Enabled         bool
	DiscountPerUnit decimal.Decimal
	MinQuantity     int
	Description     string
}

// Validate rejects a program whose discount would drive a unit price to zero
// or below for the given base price. Called at startup for every base price
// the program can be applied to.
func (p Program) Validate(basePrice decimal.Decimal) error {
	if !p.Enabled {
		return nil
	}
	if p.MinQuantity < 1 {
		return fmt.Errorf("min quantity must be at least 1, got %d", p.MinQuantity)
	}
	if p.DiscountPerUnit.GreaterThanOrEqual(basePrice) {
		return fmt.Errorf("discount per unit %s must be smaller than base price %s",
			p.DiscountPerUnit, basePrice)
	}
	return nil
}

// Quote is the priced result of applying a program. Monetary fields are
// whole Bs; DiscountPercentage is informational only and never used to
// recompute a price.
type Quote struct {
	UnitPrice          int64   `json:"unitPrice"`
	TotalPrice         int64   `json:"totalPrice"`
	HasDiscount        bool    `json:"hasDiscount"`
	TotalDiscount      int64   `json:"totalDiscount"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

var hundred = decimal.NewFromInt(100)

// Compute prices a line whose discount eligibility depends on its own
// quantity (catalog program semantics).
func Compute(basePrice decimal.Decimal, quantity int, program Program) (Quote, error) {
	return ComputeAggregate(basePrice, quantity, program, quantity)
}

// ComputeAggregate prices a line whose discount eligibility is decided by
// eligibleQuantity rather than the line's own quantity. The design program
// passes the cart-wide personalized unit count here, so every personalized
// line crosses the threshold at the same moment.
func ComputeAggregate(basePrice decimal.Decimal, quantity int, program Program, eligibleQuantity int) (Quote, error) {
	if quantity <= 0 || eligibleQuantity < 0 {
		return Quote{}, ErrInvalidQuantity
	}
	if basePrice.IsNegative() {
		return Quote{}, ErrInvalidPrice
	}

	qty := decimal.NewFromInt(int64(quantity))

	if !program.Enabled || eligibleQuantity < program.MinQuantity {
		return Quote{
			UnitPrice:  roundBs(basePrice),
			TotalPrice: roundBs(basePrice.Mul(qty)),
		}, nil
	}

	unit := basePrice.Sub(program.DiscountPerUnit)
	// The total is rounded once from the unrounded unit price. Rounding the
	// unit first drifts by up to half a Bs per unit at large quantities.
	total := unit.Mul(qty)

	var pct float64
	if basePrice.IsPositive() {
		pct, _ = program.DiscountPerUnit.Div(basePrice).Mul(hundred).Round(2).Float64()
	}

	return Quote{
		UnitPrice:          roundBs(unit),
		TotalPrice:         roundBs(total),
		HasDiscount:        true,
		TotalDiscount:      roundBs(program.DiscountPerUnit.Mul(qty)),
		DiscountPercentage: pct,
	}, nil
}

// roundBs rounds to the nearest whole Bs, halves away from zero.
func roundBs(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
