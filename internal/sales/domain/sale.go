package domain

import "time"

// SaleItem is a line of a finalized sale: a snapshot of the cart line taken
// at finalization, decoupled from any later catalog edits.
type SaleItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Sale is an immutable record of a completed order. Once appended to the
// sales log it is never mutated or removed.
type Sale struct {
	ID              string     `json:"id"`
	Timestamp       time.Time  `json:"timestamp"`
	Items           []SaleItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	DiscountPercent float64    `json:"discount_percent"`
	DiscountAmount  float64    `json:"discount_amount"`
	Total           float64    `json:"total"`
}

// ItemCount returns the total quantity across all items.
func (s Sale) ItemCount() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// SaleRepository is the append-only sales log. Insertion order is
// chronological order; entries are never edited or discarded.
type SaleRepository interface {
	Append(sale *Sale) error
	FindAll() ([]Sale, error)
	Count() (int, error)
}
