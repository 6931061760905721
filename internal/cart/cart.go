package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/yolimar-textil/storefront-api/internal/pricing"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("base price must not be negative")
)

// Design holds the personalization metadata a custom line carries.
type Design struct {
	ID           int    `json:"designId"`
	Code         string `json:"designCode"`
	Name         string `json:"designName"`
	ShirtType    string `json:"shirtType,omitempty"`
	Position     string `json:"designPosition,omitempty"`
	PreviewImage string `json:"previewImage,omitempty"`
}

// Line is one row of the cart. Lines with a non-nil Design are personalized
// garments; only those count toward the design program threshold.
type Line struct {
	Key       string          `json:"key"`
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	BasePrice decimal.Decimal `json:"basePrice"` // unit base price captured at add time
	Image     string          `json:"image,omitempty"`
	Design    *Design         `json:"design,omitempty"`
}

// IsCustom reports whether the line is a personalized garment.
func (l Line) IsCustom() bool { return l.Design != nil }

// LineKey builds the merge identity of a line: product, color, size and
// design (or the literal "catalog" for ready-made garments). Adding a line
// whose key already exists increments the existing line instead.
func LineKey(productID int, color, size string, design *Design) string {
	if design != nil {
		return fmt.Sprintf("%d-%s-%s-%d", productID, color, size, design.ID)
	}
	return fmt.Sprintf("%d-%s-%s-catalog", productID, color, size)
}

// PricedLine pairs a line with its currently applicable prices.
type PricedLine struct {
	Line
	UnitPrice int64 `json:"unitPrice"`
	LineTotal int64 `json:"lineTotal"`
}

// Totals is the derived state of the cart.
type Totals struct {
	TotalItems       int   `json:"totalItems"`
	TotalCustomItems int   `json:"totalCustomItems"`
	TotalPrice       int64 `json:"totalPrice"`
}

// Snapshot is a consistent view of the cart taken under a single critical
// section. Order generation reads one snapshot; cart mutation afterwards
// does not affect an in-flight export.
type Snapshot struct {
	Lines  []PricedLine `json:"lines"`
	Totals Totals       `json:"totals"`
	Open   bool         `json:"open"`
}

// Cart owns one session's lines in insertion order, which is also display
// order. Derived values are recomputed from the full line set on every read:
// crossing the design threshold reprices every personalized line at once, so
// nothing here is cached. The mutex makes mutation and totals reads atomic
// per session, which client-side state got for free.
type Cart struct {
	mu             sync.Mutex
	lines          []*Line
	open           bool
	catalogProgram pricing.Program
	designProgram  pricing.Program
}

// New creates an empty, closed cart governed by the two discount programs.
func New(catalogProgram, designProgram pricing.Program) *Cart {
	return &Cart{
		catalogProgram: catalogProgram,
		designProgram:  designProgram,
	}
}

// AddLine merges the candidate into an existing line with the same key or
// appends it at the tail. The drawer opens as a side effect.
func (c *Cart) AddLine(candidate Line) (Line, error) {
	if candidate.Quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	if candidate.BasePrice.IsNegative() {
		return Line{}, ErrInvalidPrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	candidate.Key = LineKey(candidate.ProductID, candidate.Color, candidate.Size, candidate.Design)
	c.open = true

	for _, l := range c.lines {
		if l.Key == candidate.Key {
			l.Quantity += candidate.Quantity
			return *l, nil
		}
	}

	line := candidate
	c.lines = append(c.lines, &line)
	return line, nil
}

// RemoveLine deletes the line with the given key, no-op when absent.
func (c *Cart) RemoveLine(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

func (c *Cart) removeLocked(key string) {
	for i, l := range c.lines {
		if l.Key == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity. Zero or less removes the line.
func (c *Cart) SetQuantity(key string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 {
		c.removeLocked(key)
		return
	}
	for _, l := range c.lines {
		if l.Key == key {
			l.Quantity = n
			return
		}
	}
}

// Clear empties the cart. The drawer flag is untouched.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Open, Close and Toggle drive the drawer visibility flag. The flag has no
// effect on pricing.
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// UnitPrice routes a line through the program that governs it: personalized
// lines use the design program with the current cart-wide personalized
// count, catalog lines use the catalog program with their own quantity.
func (c *Cart) UnitPrice(line Line) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unitPriceLocked(line)
}

func (c *Cart) unitPriceLocked(line Line) (int64, error) {
	var quote pricing.Quote
	var err error
	if line.IsCustom() {
		quote, err = pricing.ComputeAggregate(line.BasePrice, line.Quantity, c.designProgram, c.customCountLocked())
	} else {
		quote, err = pricing.Compute(line.BasePrice, line.Quantity, c.catalogProgram)
	}
	if err != nil {
		return 0, err
	}
	return quote.UnitPrice, nil
}

func (c *Cart) customCountLocked() int {
	n := 0
	for _, l := range c.lines {
		if l.IsCustom() {
			n += l.Quantity
		}
	}
	return n
}

// LineTotal is the rounded unit price times quantity, the amount a cart row
// displays and the order summary charges.
func (c *Cart) LineTotal(line Line) (int64, error) {
	unit, err := c.UnitPrice(line)
	if err != nil {
		return 0, err
	}
	return unit * int64(line.Quantity), nil
}

// Totals recomputes the cart's derived state from scratch.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalsLocked()
}

func (c *Cart) totalsLocked() Totals {
	var t Totals
	for _, l := range c.lines {
		t.TotalItems += l.Quantity
		if l.IsCustom() {
			t.TotalCustomItems += l.Quantity
		}
	}
	for _, l := range c.lines {
		unit, err := c.unitPriceLocked(*l)
		if err != nil {
			// lines are validated on entry, so pricing cannot fail here
			continue
		}
		t.TotalPrice += unit * int64(l.Quantity)
	}
	return t
}

// Snapshot returns the priced lines and totals as one consistent view.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Lines:  make([]PricedLine, 0, len(c.lines)),
		Totals: c.totalsLocked(),
		Open:   c.open,
	}
	for _, l := range c.lines {
		unit, err := c.unitPriceLocked(*l)
		if err != nil {
			continue
		}
		snap.Lines = append(snap.Lines, PricedLine{
			Line:      *l,
			UnitPrice: unit,
			LineTotal: unit * int64(l.Quantity),
		})
	}
	return snap
}
