package query_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/internal/analytics/usecase/query"
	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
	salesrepo "github.com/tair/drinkspot-pos/internal/sales/repository"
	"github.com/tair/drinkspot-pos/pkg/store"
)

func newSalesRepo(t *testing.T, sales ...salesdomain.Sale) *salesrepo.StoreSaleRepository {
	t.Helper()

	repo, err := salesrepo.NewStoreSaleRepository(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)
	for i := range sales {
		if sales[i].ID == "" {
			sales[i].ID = fmt.Sprintf("sale-%d", i)
		}
		require.NoError(t, repo.Append(&sales[i]))
	}
	return repo
}

func TestGetKPIs(t *testing.T) {
	t.Parallel()

	// Wednesday, so the week window opened on Sunday Aug 23
	now := time.Date(2026, time.August, 26, 15, 0, 0, 0, time.UTC)
	todayStart := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

	t.Run("window boundaries are inclusive at the start", func(t *testing.T) {
		t.Parallel()

		repo := newSalesRepo(t,
			salesdomain.Sale{Timestamp: todayStart, Total: 10},
			salesdomain.Sale{Timestamp: todayStart.Add(-time.Nanosecond), Total: 20},
		)
		handler := query.NewGetKPIsHandler(repo)

		kpis, err := handler.Handle(query.GetKPIsQuery{Now: now})
		require.NoError(t, err)

		assert.Equal(t, 1, kpis.Today.SalesCount)
		assert.InDelta(t, 10, kpis.Today.Revenue, 1e-9)

		// yesterday's sale still falls inside the week and month
		assert.Equal(t, 2, kpis.Week.SalesCount)
		assert.InDelta(t, 30, kpis.Week.Revenue, 1e-9)
	})

	t.Run("week opens on sunday midnight", func(t *testing.T) {
		t.Parallel()

		weekStart := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
		repo := newSalesRepo(t,
			salesdomain.Sale{Timestamp: weekStart, Total: 5},
			salesdomain.Sale{Timestamp: weekStart.Add(-time.Hour), Total: 7},
		)
		handler := query.NewGetKPIsHandler(repo)

		kpis, err := handler.Handle(query.GetKPIsQuery{Now: now})
		require.NoError(t, err)

		assert.Equal(t, 1, kpis.Week.SalesCount)
		assert.InDelta(t, 5, kpis.Week.Revenue, 1e-9)

		// the Saturday sale is still inside the month
		assert.Equal(t, 2, kpis.Month.SalesCount)
	})

	t.Run("month opens on the first", func(t *testing.T) {
		t.Parallel()

		repo := newSalesRepo(t,
			salesdomain.Sale{Timestamp: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), Total: 12},
			salesdomain.Sale{Timestamp: time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC), Total: 99},
		)
		handler := query.NewGetKPIsHandler(repo)

		kpis, err := handler.Handle(query.GetKPIsQuery{Now: now})
		require.NoError(t, err)

		assert.Equal(t, 1, kpis.Month.SalesCount)
		assert.InDelta(t, 12, kpis.Month.Revenue, 1e-9)
	})

	t.Run("average revenue per sale", func(t *testing.T) {
		t.Parallel()

		repo := newSalesRepo(t,
			salesdomain.Sale{Timestamp: now.Add(-time.Hour), Total: 10},
			salesdomain.Sale{Timestamp: now.Add(-2 * time.Hour), Total: 20},
		)
		handler := query.NewGetKPIsHandler(repo)

		kpis, err := handler.Handle(query.GetKPIsQuery{Now: now})
		require.NoError(t, err)

		assert.InDelta(t, 15, kpis.Today.Average, 1e-9)
	})

	t.Run("empty log yields zeroes", func(t *testing.T) {
		t.Parallel()

		handler := query.NewGetKPIsHandler(newSalesRepo(t))

		kpis, err := handler.Handle(query.GetKPIsQuery{Now: now})
		require.NoError(t, err)

		assert.Zero(t, kpis.Today.SalesCount)
		assert.Zero(t, kpis.Today.Revenue)
		assert.Zero(t, kpis.Today.Average)
	})
}
