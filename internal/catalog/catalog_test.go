package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
)

func testRepo(t *testing.T) *InMemoryRepository {
	t.Helper()
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	return NewInMemoryRepository(cfg, slog.Default())
}

func TestGroupForSize(t *testing.T) {
	tests := []struct {
		size string
		want SizeGroup
	}{
		{"XS", GroupS},
		{"S", GroupS},
		{"M", GroupML},
		{"L", GroupML},
		{"XL", GroupXL},
		{"XXL", GroupXL},
		// alternate labels used by sacos/blusas fall back to ML
		{"G", GroupML},
		{"GG", GroupML},
		{"52", GroupML},
		{"", GroupML},
		{"desconocida", GroupML},
	}

	for _, tt := range tests {
		if got := GroupForSize(tt.size); got != tt.want {
			t.Errorf("GroupForSize(%q) = %s, want %s", tt.size, got, tt.want)
		}
	}
}

func TestConfig_BasePrice(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name    string
		typeKey string
		size    string
		want    int64
		wantOK  bool
	}{
		{"polera M", "polera", "M", 55, true},
		{"polera XL", "polera", "XL", 60, true},
		{"saco alternate label", "saco", "52", 100, true},
		{"saco XL", "saco", "XL", 110, true},
		{"blusa G", "blusa", "G", 50, true},
		{"solera XL", "solera", "XL", 55, true},
		{"unknown type falls back", "gorra", "M", 55, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := cfg.BasePrice(tt.typeKey, tt.size)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !price.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("price = %s, want %d", price, tt.want)
			}
		})
	}
}

func TestConfig_CustomBasePrice(t *testing.T) {
	cfg := Default()

	price, ok := cfg.CustomBasePrice("M")
	if !ok || !price.Equal(decimal.NewFromInt(60)) {
		t.Errorf("custom M = %s ok=%v, want 60 true", price, ok)
	}
	price, ok = cfg.CustomBasePrice("XXL")
	if !ok || !price.Equal(decimal.NewFromInt(65)) {
		t.Errorf("custom XXL = %s ok=%v, want 65 true", price, ok)
	}
}

func TestConfig_ValidateRejectsOversizedDiscount(t *testing.T) {
	cfg := Default()
	cfg.CatalogProgram.DiscountPerUnit = decimal.NewFromInt(50) // reaches blusa/solera base

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for discount >= base price")
	}
}

func TestRepository_Lookups(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	products, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("GetAll() returned %d products, want 5", len(products))
	}
	if products[0].ID != 1 || products[4].ID != 5 {
		t.Error("GetAll() must preserve seed order")
	}

	product, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID(1) error = %v", err)
	}
	if product.Type != "polera" {
		t.Errorf("product 1 type = %s, want polera", product.Type)
	}

	if _, err := repo.GetByID(ctx, 999); err != ErrProductNotFound {
		t.Errorf("GetByID(999) error = %v, want ErrProductNotFound", err)
	}
}

func TestRepository_Availability(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	sizes, err := repo.AvailableSizes(ctx, 1, "blanco")
	if err != nil {
		t.Fatalf("AvailableSizes() error = %v", err)
	}
	if len(sizes) != 3 {
		t.Errorf("blanco sizes = %v, want 3 entries", sizes)
	}

	ok, err := repo.IsAvailable(ctx, 1, "blanco", "M")
	if err != nil || !ok {
		t.Errorf("IsAvailable(blanco/M) = %v, %v; want true", ok, err)
	}

	// BLU-001 rosado GG is seeded with zero stock
	ok, err = repo.IsAvailable(ctx, 4, "rosado", "GG")
	if err != nil || ok {
		t.Errorf("IsAvailable(rosado/GG) = %v, %v; want false", ok, err)
	}

	stock, err := repo.Stock(ctx, 3, "gris", "52")
	if err != nil || stock != 3 {
		t.Errorf("Stock(gris/52) = %d, %v; want 3", stock, err)
	}

	stock, err = repo.Stock(ctx, 3, "gris", "M")
	if err != nil || stock != 0 {
		t.Errorf("Stock of missing variant = %d, %v; want 0", stock, err)
	}
}

func TestRepository_ResolveBasePriceFallbacks(t *testing.T) {
	repo := testRepo(t)

	price := repo.ResolveBasePrice("polera", "XXL")
	if !price.Equal(decimal.NewFromInt(60)) {
		t.Errorf("polera XXL = %s, want 60", price)
	}

	price = repo.ResolveBasePrice("gorra", "M")
	if !price.Equal(decimal.NewFromInt(55)) {
		t.Errorf("unknown type fallback = %s, want 55", price)
	}

	price = repo.CustomBasePrice("XL")
	if !price.Equal(decimal.NewFromInt(65)) {
		t.Errorf("custom XL = %s, want 65", price)
	}
}
