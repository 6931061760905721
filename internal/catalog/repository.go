package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/yolimar-textil/storefront-api/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines read access to the product catalog. All lookups are
// side-effect free and always answer; price resolution falls back instead of
// failing.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Variants(ctx context.Context, id int) ([]models.Variant, error)
	AvailableSizes(ctx context.Context, id int, color string) ([]string, error)
	Stock(ctx context.Context, id int, color, size string) (int, error)
	IsAvailable(ctx context.Context, id int, color, size string) (bool, error)

	ResolveBasePrice(typeKey, size string) decimal.Decimal
	CustomBasePrice(size string) decimal.Decimal
}

// InMemoryRepository implements Repository over the static seed data.
type InMemoryRepository struct {
	cfg      *Config
	products map[int]models.Product
	order    []int // listing order matches the seed, maps do not
	log      *slog.Logger
}

// NewInMemoryRepository creates the repository with the production seed data.
func NewInMemoryRepository(cfg *Config, log *slog.Logger) *InMemoryRepository {
	r := &InMemoryRepository{
		cfg:      cfg,
		products: make(map[int]models.Product),
		log:      log,
	}
	for _, p := range seedProducts(cfg) {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// GetAll returns all products in seed order.
func (r *InMemoryRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetByID returns a product by its ID.
func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Variants returns every color/size combination of a product.
func (r *InMemoryRepository) Variants(ctx context.Context, id int) ([]models.Variant, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return product.Variants, nil
}

// AvailableSizes lists the sizes of a color that have stock on display.
func (r *InMemoryRepository) AvailableSizes(ctx context.Context, id int, color string) ([]string, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	var sizes []string
	for _, v := range product.Variants {
		if v.Color == color && v.Stock > 0 {
			sizes = append(sizes, v.Size)
		}
	}
	return sizes, nil
}

// Stock returns the display stock of an exact variant, zero when the variant
// does not exist.
func (r *InMemoryRepository) Stock(ctx context.Context, id int, color, size string) (int, error) {
	product, exists := r.products[id]
	if !exists {
		return 0, ErrProductNotFound
	}
	for _, v := range product.Variants {
		if v.Color == color && v.Size == size {
			return v.Stock, nil
		}
	}
	return 0, nil
}

// IsAvailable reports whether an exact variant exists with stock on display.
func (r *InMemoryRepository) IsAvailable(ctx context.Context, id int, color, size string) (bool, error) {
	stock, err := r.Stock(ctx, id, color, size)
	if err != nil {
		return false, err
	}
	return stock > 0, nil
}

// ResolveBasePrice returns the base price for a garment type and size.
// Fallback hits are logged: they mean a data-entry gap, not a user error.
func (r *InMemoryRepository) ResolveBasePrice(typeKey, size string) decimal.Decimal {
	price, ok := r.cfg.BasePrice(typeKey, size)
	if !ok {
		r.log.Warn("unknown catalog key, using fallback price",
			"type", typeKey, "size", size, "fallback", price)
	}
	return price
}

// CustomBasePrice returns the base price of a personalized garment by size.
func (r *InMemoryRepository) CustomBasePrice(size string) decimal.Decimal {
	price, ok := r.cfg.CustomBasePrice(size)
	if !ok {
		r.log.Warn("no custom price for size group, using fallback price",
			"size", size, "fallback", price)
	}
	return price
}

// seedProducts builds the static catalog, resolving each variant's display
// price through the type/size-group tables.
func seedProducts(cfg *Config) []models.Product {
	price := func(typeKey, size string) int64 {
		p, _ := cfg.BasePrice(typeKey, size)
		return p.Round(0).IntPart()
	}

	return []models.Product{
		{
			ID:          1,
			Type:        "polera",
			Name:        "Polera",
			Code:        "POL-001",
			Description: "Polera Classic de algodón 100% brasilero, suave y duradera",
			Material:    "Algodón 100%",
			Image:       "imagenes/PolerasEstampado/POLESTM1.png",
			Badge:       "TOP VENTA",
			Variants: []models.Variant{
				{Color: "blanco", Size: "M", Stock: 12, Price: price("polera", "M"), SKU: "POL-001-BLA-M"},
				{Color: "blanco", Size: "L", Stock: 12, Price: price("polera", "L"), SKU: "POL-001-BLA-L"},
				{Color: "blanco", Size: "XL", Stock: 12, Price: price("polera", "XL"), SKU: "POL-001-BLA-XL"},
				{Color: "negro", Size: "M", Stock: 12, Price: price("polera", "M"), SKU: "POL-001-NEG-M"},
				{Color: "negro", Size: "L", Stock: 12, Price: price("polera", "L"), SKU: "POL-001-NEG-L"},
				{Color: "rojo", Size: "M", Stock: 12, Price: price("polera", "M"), SKU: "POL-001-ROJ-M"},
				{Color: "azul", Size: "L", Stock: 12, Price: price("polera", "L"), SKU: "POL-001-AZU-L"},
			},
		},
		{
			ID:          2,
			Type:        "polera",
			Name:        "Polera",
			Code:        "POL-002",
			Description: "Polera Poliester deportiva, ideal para sublimación",
			Material:    "Poliester 100%",
			Image:       "imagenes/PolerasEstampado/POLESTM2.png",
			Variants: []models.Variant{
				{Color: "blanco", Size: "S", Stock: 20, Price: price("polera", "S"), SKU: "POL-002-BLA-S"},
				{Color: "blanco", Size: "M", Stock: 18, Price: price("polera", "M"), SKU: "POL-002-BLA-M"},
				{Color: "blanco", Size: "L", Stock: 15, Price: price("polera", "L"), SKU: "POL-002-BLA-L"},
				{Color: "blanco", Size: "XXL", Stock: 8, Price: price("polera", "XXL"), SKU: "POL-002-BLA-XXL"},
			},
		},
		{
			ID:          3,
			Type:        "saco",
			Name:        "Saco",
			Code:        "SAC-001",
			Description: "Saco formal de corte clásico",
			Material:    "Paño de lana",
			Image:       "imagenes/Sacos/SAC1.png",
			Variants: []models.Variant{
				{Color: "negro", Size: "M", Stock: 6, Price: price("saco", "M"), SKU: "SAC-001-NEG-M"},
				{Color: "negro", Size: "G", Stock: 6, Price: price("saco", "G"), SKU: "SAC-001-NEG-G"},
				{Color: "negro", Size: "GG", Stock: 4, Price: price("saco", "GG"), SKU: "SAC-001-NEG-GG"},
				{Color: "gris", Size: "52", Stock: 3, Price: price("saco", "52"), SKU: "SAC-001-GRI-52"},
			},
		},
		{
			ID:          4,
			Type:        "blusa",
			Name:        "Blusa",
			Code:        "BLU-001",
			Description: "Blusa elegante de oficina",
			Material:    "Seda sintética",
			Image:       "imagenes/Blusas/BLU1.png",
			Badge:       "NUEVO",
			Variants: []models.Variant{
				{Color: "blanco", Size: "M", Stock: 10, Price: price("blusa", "M"), SKU: "BLU-001-BLA-M"},
				{Color: "blanco", Size: "G", Stock: 10, Price: price("blusa", "G"), SKU: "BLU-001-BLA-G"},
				{Color: "rosado", Size: "M", Stock: 7, Price: price("blusa", "M"), SKU: "BLU-001-ROS-M"},
				{Color: "rosado", Size: "GG", Stock: 0, Price: price("blusa", "GG"), SKU: "BLU-001-ROS-GG"},
			},
		},
		{
			ID:          5,
			Type:        "solera",
			Name:        "Solera",
			Code:        "SOL-001",
			Description: "Solera tradicional bordada",
			Material:    "Algodón bordado",
			Image:       "imagenes/Soleras/SOL1.png",
			Variants: []models.Variant{
				{Color: "rojo", Size: "M", Stock: 5, Price: price("solera", "M"), SKU: "SOL-001-ROJ-M"},
				{Color: "rojo", Size: "G", Stock: 5, Price: price("solera", "G"), SKU: "SOL-001-ROJ-G"},
				{Color: "verde", Size: "52", Stock: 2, Price: price("solera", "52"), SKU: "SOL-001-VER-52"},
			},
		},
	}
}
