package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/drinkspot-pos/internal/pricing"
)

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	t.Run("worked example", func(t *testing.T) {
		t.Parallel()

		lines := []pricing.Line{
			{Price: 2.50, Quantity: 2},
			{Price: 3.50, Quantity: 1},
		}

		totals := pricing.ComputeTotals(lines, 8.5, 10)

		assert.InDelta(t, 8.50, totals.Subtotal, 1e-9)
		assert.InDelta(t, 0.7225, totals.Tax, 1e-9)
		assert.InDelta(t, 0.85, totals.DiscountAmount, 1e-9)
		assert.InDelta(t, 8.3725, totals.Total, 1e-9)
	})

	t.Run("empty lines", func(t *testing.T) {
		t.Parallel()

		totals := pricing.ComputeTotals(nil, 8.5, 10)

		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Tax)
		assert.Zero(t, totals.DiscountAmount)
		assert.Zero(t, totals.Total)
	})

	t.Run("zero tax rate", func(t *testing.T) {
		t.Parallel()

		totals := pricing.ComputeTotals([]pricing.Line{{Price: 5, Quantity: 2}}, 0, 0)

		assert.InDelta(t, 10, totals.Subtotal, 1e-9)
		assert.Zero(t, totals.Tax)
		assert.InDelta(t, 10, totals.Total, 1e-9)
	})

	t.Run("discount clamped below zero", func(t *testing.T) {
		t.Parallel()

		totals := pricing.ComputeTotals([]pricing.Line{{Price: 10, Quantity: 1}}, 0, -25)

		assert.Zero(t, totals.DiscountPercent)
		assert.Zero(t, totals.DiscountAmount)
		assert.InDelta(t, 10, totals.Total, 1e-9)
	})

	t.Run("discount clamped above hundred", func(t *testing.T) {
		t.Parallel()

		totals := pricing.ComputeTotals([]pricing.Line{{Price: 10, Quantity: 1}}, 0, 250)

		assert.InDelta(t, 100, totals.DiscountPercent, 1e-9)
		assert.InDelta(t, 10, totals.DiscountAmount, 1e-9)
		assert.Zero(t, totals.Total)
	})

	t.Run("full discount with tax", func(t *testing.T) {
		t.Parallel()

		totals := pricing.ComputeTotals([]pricing.Line{{Price: 10, Quantity: 1}}, 8.5, 100)

		assert.InDelta(t, 0.85, totals.Total, 1e-9)
	})

	t.Run("pure over repeated calls", func(t *testing.T) {
		t.Parallel()

		lines := []pricing.Line{{Price: 4.75, Quantity: 3}, {Price: 2.25, Quantity: 2}}

		first := pricing.ComputeTotals(lines, 8.5, 15)
		second := pricing.ComputeTotals(lines, 8.5, 15)

		assert.Equal(t, first, second)
	})
}
