package domain

import "errors"

// CartLine is one line of the working order. Name and price are snapshots
// taken when the product was first added, so later catalog edits never
// change an in-progress order.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// WorkingOrder is the single live order being built at the register.
// Product ids are unique across lines; a line is removed when its quantity
// reaches zero.
type WorkingOrder struct {
	Lines           []CartLine `json:"lines"`
	DiscountPercent float64    `json:"discount_percent"`
}

// IsEmpty reports whether the order has no lines.
func (o WorkingOrder) IsEmpty() bool {
	return len(o.Lines) == 0
}

// Line returns the line for a product, or nil when none exists.
func (o *WorkingOrder) Line(productID uint) *CartLine {
	for i := range o.Lines {
		if o.Lines[i].ProductID == productID {
			return &o.Lines[i]
		}
	}
	return nil
}

// Checkout errors.
var (
	// ErrOutOfStock is returned when adding an item whose reservation the
	// ledger refused. The order and the ledger are left untouched.
	ErrOutOfStock = errors.New("out of stock")

	// ErrEmptyCart is returned when finalizing an order with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnknownProduct is returned when adding a product the catalog does
	// not know.
	ErrUnknownProduct = errors.New("unknown product")
)
