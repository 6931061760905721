package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yolimar-textil/storefront-api/internal/pricing"
)

// SizeGroup is the coarse pricing bucket a literal size label maps to.
type SizeGroup string

const (
	GroupS  SizeGroup = "S"
	GroupML SizeGroup = "ML"
	GroupXL SizeGroup = "XL"
)

// sizeGroups maps literal garment sizes onto pricing groups. Labels absent
// here (alternate labels like "G", "GG" or "52") fall back to GroupML, so
// the mapping is total over whatever the catalog uses.
var sizeGroups = map[string]SizeGroup{
	"XS":  GroupS,
	"S":   GroupS,
	"M":   GroupML,
	"L":   GroupML,
	"XL":  GroupXL,
	"XXL": GroupXL,
}

// GroupForSize resolves the pricing group for a size label.
func GroupForSize(size string) SizeGroup {
	if g, ok := sizeGroups[size]; ok {
		return g
	}
	return GroupML
}

// TypeConfig describes one garment type: the sizes it is offered in and its
// base price per size group.
type TypeConfig struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Description   string                        `json:"description"`
	Sizes         []string                      `json:"sizes"`
	PricesByGroup map[SizeGroup]decimal.Decimal `json:"pricesByGroup"`
}

// Config is the full pricing configuration: the garment types, the
// personalized garment config, and the two discount programs. It is
// immutable after construction and injected wherever prices are resolved.
type Config struct {
	Types          map[string]TypeConfig `json:"types"`
	Custom         TypeConfig            `json:"custom"`
	CatalogProgram pricing.Program       `json:"catalogProgram"`
	DesignProgram  pricing.Program       `json:"designProgram"`

	// FallbackPrice answers lookups for unknown garment types;
	// CustomFallbackPrice answers personalized lookups whose size group has
	// no entry. Both keep the storefront rendering a number instead of
	// failing on a data-entry gap.
	FallbackPrice       decimal.Decimal `json:"fallbackPrice"`
	CustomFallbackPrice decimal.Decimal `json:"customFallbackPrice"`
}

// Default returns the production price tables.
func Default() *Config {
	discountPerUnit := decimal.RequireFromString("1.5")

	bs := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	return &Config{
		Types: map[string]TypeConfig{
			"polera": {
				ID:          "polera",
				Name:        "polera",
				Description: "Poleras básicas de algodón",
				Sizes:       []string{"S", "M", "L", "XL", "XXL"},
				PricesByGroup: map[SizeGroup]decimal.Decimal{
					GroupS: bs(55), GroupML: bs(55), GroupXL: bs(60),
				},
			},
			"saco": {
				ID:          "saco",
				Name:        "saco",
				Description: "Abrigos y sacos formales",
				Sizes:       []string{"M", "G", "GG", "52"},
				PricesByGroup: map[SizeGroup]decimal.Decimal{
					GroupS: bs(100), GroupML: bs(100), GroupXL: bs(110),
				},
			},
			"blusa": {
				ID:          "blusa",
				Name:        "blusa",
				Description: "Blusas y tops elegantes",
				Sizes:       []string{"M", "G", "GG", "52"},
				PricesByGroup: map[SizeGroup]decimal.Decimal{
					GroupS: bs(50), GroupML: bs(50), GroupXL: bs(55),
				},
			},
			"solera": {
				ID:          "solera",
				Name:        "solera",
				Description: "Prendas tradicionales",
				Sizes:       []string{"M", "G", "GG", "52"},
				PricesByGroup: map[SizeGroup]decimal.Decimal{
					GroupS: bs(50), GroupML: bs(50), GroupXL: bs(55),
				},
			},
		},
		Custom: TypeConfig{
			ID:          "custom",
			Name:        "Polera Personalizada",
			Description: "Poleras personalizadas del diseñador",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			PricesByGroup: map[SizeGroup]decimal.Decimal{
				GroupS: bs(60), GroupML: bs(60), GroupXL: bs(65),
			},
		},
		CatalogProgram: pricing.Program{
			Enabled:         true,
			DiscountPerUnit: discountPerUnit,
			MinQuantity:     3,
			Description:     "Descuento por mayor a partir de 3 unidades",
		},
		DesignProgram: pricing.Program{
			Enabled:         true,
			DiscountPerUnit: discountPerUnit,
			MinQuantity:     12,
			Description:     "Descuento por mayor personalizado a partir de 12 prendas",
		},
		FallbackPrice:       bs(55),
		CustomFallbackPrice: bs(60),
	}
}

// Validate checks every discount program against every base price it can be
// subtracted from. A discount that reaches a base price would produce
// non-positive unit prices, so that is a startup error, not a quote error.
func (c *Config) Validate() error {
	for key, tc := range c.Types {
		for group, price := range tc.PricesByGroup {
			if err := c.CatalogProgram.Validate(price); err != nil {
				return fmt.Errorf("catalog program on type %s group %s: %w", key, group, err)
			}
		}
	}
	for group, price := range c.Custom.PricesByGroup {
		if err := c.DesignProgram.Validate(price); err != nil {
			return fmt.Errorf("design program on group %s: %w", group, err)
		}
	}
	return nil
}

// BasePrice resolves the base price for a garment type and size. The second
// return value is false when a fallback answered the lookup.
func (c *Config) BasePrice(typeKey, size string) (decimal.Decimal, bool) {
	tc, ok := c.Types[typeKey]
	if !ok {
		return c.FallbackPrice, false
	}
	price, ok := tc.PricesByGroup[GroupForSize(size)]
	if !ok {
		return c.FallbackPrice, false
	}
	return price, true
}

// CustomBasePrice resolves the base price of a personalized garment by size.
func (c *Config) CustomBasePrice(size string) (decimal.Decimal, bool) {
	price, ok := c.Custom.PricesByGroup[GroupForSize(size)]
	if !ok {
		return c.CustomFallbackPrice, false
	}
	return price, true
}
