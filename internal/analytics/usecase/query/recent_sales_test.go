package query_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/internal/analytics/usecase/query"
	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
)

func TestRecentSales(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC)

	makeSales := func(n int) []salesdomain.Sale {
		sales := make([]salesdomain.Sale, n)
		for i := range sales {
			sales[i] = salesdomain.Sale{
				ID:        fmt.Sprintf("sale-%d", i),
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			}
		}
		return sales
	}

	t.Run("most recent first", func(t *testing.T) {
		t.Parallel()

		handler := query.NewRecentSalesHandler(newSalesRepo(t, makeSales(3)...))

		sales, err := handler.Handle(query.RecentSalesQuery{})
		require.NoError(t, err)

		require.Len(t, sales, 3)
		assert.Equal(t, "sale-2", sales[0].ID)
		assert.Equal(t, "sale-1", sales[1].ID)
		assert.Equal(t, "sale-0", sales[2].ID)
	})

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		handler := query.NewRecentSalesHandler(newSalesRepo(t, makeSales(15)...))

		sales, err := handler.Handle(query.RecentSalesQuery{})
		require.NoError(t, err)

		require.Len(t, sales, query.DefaultRecentLimit)
		assert.Equal(t, "sale-14", sales[0].ID)
	})

	t.Run("explicit limit", func(t *testing.T) {
		t.Parallel()

		handler := query.NewRecentSalesHandler(newSalesRepo(t, makeSales(5)...))

		sales, err := handler.Handle(query.RecentSalesQuery{Limit: 2})
		require.NoError(t, err)

		require.Len(t, sales, 2)
		assert.Equal(t, "sale-4", sales[0].ID)
	})

	t.Run("limit beyond log size", func(t *testing.T) {
		t.Parallel()

		handler := query.NewRecentSalesHandler(newSalesRepo(t, makeSales(2)...))

		sales, err := handler.Handle(query.RecentSalesQuery{Limit: 50})
		require.NoError(t, err)
		assert.Len(t, sales, 2)
	})
}
