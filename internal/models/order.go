package models

import "time"

// ClientInfo carries the contact details supplied with an order.
type ClientInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// OrderLine is one priced row of an order summary. BaseTotal is the
// pre-discount amount (base price times quantity); LineTotal is the amount
// actually charged.
type OrderLine struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unitPrice"`
	BaseTotal      int64  `json:"baseTotal"`
	LineTotal      int64  `json:"lineTotal"`
	IsCustom       bool   `json:"isCustom"`
	DesignCode     string `json:"designCode,omitempty"`
	DesignName     string `json:"designName,omitempty"`
	DesignPosition string `json:"designPosition,omitempty"`
}

// OrderSummary is the frozen view of a cart handed to the document
// renderers. Cart mutation after the summary is built does not affect it.
type OrderSummary struct {
	OrderCode     string      `json:"orderCode"`
	Lines         []OrderLine `json:"lines"`
	TotalItems    int         `json:"totalItems"`
	Subtotal      int64       `json:"subtotal"`
	TotalDiscount int64       `json:"totalDiscount"`
	TotalPrice    int64       `json:"totalPrice"`
	Client        ClientInfo  `json:"client"`
	CreatedAt     time.Time   `json:"createdAt"`
}
