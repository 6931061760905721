package models

// Product represents one garment in the catalog. Prices are not stored on
// the product itself; they resolve through the type/size-group price tables.
type Product struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Material    string    `json:"material"`
	Variants    []Variant `json:"variants"`
	Image       string    `json:"image"`
	Badge       string    `json:"badge,omitempty"`
}

// Variant is a concrete color/size combination. Stock is static display
// data; nothing decrements it on purchase.
type Variant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
	Price int64  `json:"price"`
	SKU   string `json:"sku"`
}
