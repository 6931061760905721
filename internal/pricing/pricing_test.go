package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testProgram(discountPerUnit string, minQuantity int) Program {
	return Program{
		Enabled:         true,
		DiscountPerUnit: decimal.RequireFromString(discountPerUnit),
		MinQuantity:     minQuantity,
	}
}

func TestCompute_ThresholdMonotonicity(t *testing.T) {
	// Catalog program: 1.5 Bs off per unit from 3 units up.
	program := testProgram("1.5", 3)
	base := decimal.NewFromInt(55)

	tests := []struct {
		name          string
		quantity      int
		wantUnit      int64
		wantTotal     int64
		wantDiscount  bool
		wantTotalDisc int64
	}{
		{
			name:      "below threshold",
			quantity:  2,
			wantUnit:  55,
			wantTotal: 110,
		},
		{
			// 55 - 1.5 = 53.5 -> 54; total round(53.5*3) = round(160.5) = 161
			name:          "at threshold",
			quantity:      3,
			wantUnit:      54,
			wantTotal:     161,
			wantDiscount:  true,
			wantTotalDisc: 5, // round(1.5*3) = round(4.5)
		},
		{
			name:          "above threshold",
			quantity:      4,
			wantUnit:      54,
			wantTotal:     214, // round(53.5*4)
			wantDiscount:  true,
			wantTotalDisc: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(base, tt.quantity, program)
			if err != nil {
				t.Fatalf("Compute() unexpected error = %v", err)
			}
			if q.UnitPrice != tt.wantUnit {
				t.Errorf("UnitPrice = %d, want %d", q.UnitPrice, tt.wantUnit)
			}
			if q.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %d, want %d", q.TotalPrice, tt.wantTotal)
			}
			if q.HasDiscount != tt.wantDiscount {
				t.Errorf("HasDiscount = %v, want %v", q.HasDiscount, tt.wantDiscount)
			}
			if q.TotalDiscount != tt.wantTotalDisc {
				t.Errorf("TotalDiscount = %d, want %d", q.TotalDiscount, tt.wantTotalDisc)
			}
		})
	}
}

func TestCompute_TotalUsesUnroundedUnitPrice(t *testing.T) {
	// base 61, discount 1.5, qty 7: unrounded unit 59.5 rounds to 60, but the
	// total must be round(59.5*7) = round(416.5) = 417, not 60*7 = 420.
	program := testProgram("1.5", 3)
	q, err := Compute(decimal.NewFromInt(61), 7, program)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	if q.UnitPrice != 60 {
		t.Errorf("UnitPrice = %d, want 60", q.UnitPrice)
	}
	if q.TotalPrice != 417 {
		t.Errorf("TotalPrice = %d, want 417 (rounded-unit path would give 420)", q.TotalPrice)
	}
}

func TestCompute_DiscountPercentage(t *testing.T) {
	program := testProgram("1.5", 3)
	q, err := Compute(decimal.NewFromInt(55), 3, program)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	// 1.5/55*100 = 2.7272... rounded to 2 decimals
	if q.DiscountPercentage != 2.73 {
		t.Errorf("DiscountPercentage = %v, want 2.73", q.DiscountPercentage)
	}
}

func TestCompute_DisabledProgram(t *testing.T) {
	program := testProgram("1.5", 3)
	program.Enabled = false

	q, err := Compute(decimal.NewFromInt(55), 10, program)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	if q.HasDiscount {
		t.Error("disabled program must never discount")
	}
	if q.UnitPrice != 55 || q.TotalPrice != 550 {
		t.Errorf("got unit=%d total=%d, want 55/550", q.UnitPrice, q.TotalPrice)
	}
	if q.TotalDiscount != 0 || q.DiscountPercentage != 0 {
		t.Errorf("got totalDiscount=%d pct=%v, want zeros", q.TotalDiscount, q.DiscountPercentage)
	}
}

func TestComputeAggregate_EligibilityFromAggregateQuantity(t *testing.T) {
	// Design program: the line's own quantity stays below the threshold, but
	// the cart-wide personalized count decides eligibility.
	program := testProgram("1.5", 12)
	base := decimal.NewFromInt(60)

	q, err := ComputeAggregate(base, 5, program, 11)
	if err != nil {
		t.Fatalf("ComputeAggregate() unexpected error = %v", err)
	}
	if q.HasDiscount {
		t.Error("11 personalized units must not unlock the design discount")
	}

	q, err = ComputeAggregate(base, 5, program, 12)
	if err != nil {
		t.Fatalf("ComputeAggregate() unexpected error = %v", err)
	}
	if !q.HasDiscount {
		t.Fatal("12 personalized units must unlock the design discount")
	}
	if q.UnitPrice != 59 { // round(58.5)
		t.Errorf("UnitPrice = %d, want 59", q.UnitPrice)
	}
	if q.TotalPrice != 293 { // round(58.5*5) = round(292.5)
		t.Errorf("TotalPrice = %d, want 293", q.TotalPrice)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	program := testProgram("1.5", 3)

	tests := []struct {
		name     string
		base     decimal.Decimal
		quantity int
		eligible int
		wantErr  error
	}{
		{"zero quantity", decimal.NewFromInt(55), 0, 0, ErrInvalidQuantity},
		{"negative quantity", decimal.NewFromInt(55), -2, -2, ErrInvalidQuantity},
		{"negative eligible quantity", decimal.NewFromInt(55), 1, -1, ErrInvalidQuantity},
		{"negative base price", decimal.NewFromInt(-10), 1, 1, ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAggregate(tt.base, tt.quantity, program, tt.eligible)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompute_ZeroBasePriceIsAccepted(t *testing.T) {
	// Zero base price renders a zero quote rather than failing; the catalog
	// never produces one, but the engine stays total over its inputs.
	q, err := Compute(decimal.Zero, 3, Program{})
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	if q.UnitPrice != 0 || q.TotalPrice != 0 {
		t.Errorf("got unit=%d total=%d, want zeros", q.UnitPrice, q.TotalPrice)
	}
}

func TestProgram_Validate(t *testing.T) {
	tests := []struct {
		name    string
		program Program
		base    decimal.Decimal
		wantErr bool
	}{
		{"discount below base", testProgram("1.5", 3), decimal.NewFromInt(50), false},
		{"discount equals base", testProgram("50", 3), decimal.NewFromInt(50), true},
		{"discount above base", testProgram("55", 3), decimal.NewFromInt(50), true},
		{"zero min quantity", testProgram("1.5", 0), decimal.NewFromInt(50), true},
		{"disabled program skips checks", Program{DiscountPerUnit: decimal.NewFromInt(999)}, decimal.NewFromInt(50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.program.Validate(tt.base)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
