// Package pricing computes order totals. It is pure: no state, no side
// effects, identical inputs always produce identical outputs.
//
// Amounts are carried at full float64 precision; rounding to a displayable
// currency value is the presentation layer's concern.
package pricing

// Line is the priced portion of a cart line.
type Line struct {
	Price    float64
	Quantity int
}

// Totals is the breakdown of an order's price.
type Totals struct {
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`
}

// ComputeTotals prices a set of lines under the given tax rate and discount.
// The discount percentage is clamped to [0, 100] before it is applied.
func ComputeTotals(lines []Line, taxRatePercent, discountPercent float64) Totals {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	tax := subtotal * taxRatePercent / 100
	discountAmount := subtotal * discountPercent / 100

	return Totals{
		Subtotal:        subtotal,
		Tax:             tax,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Total:           subtotal + tax - discountAmount,
	}
}
