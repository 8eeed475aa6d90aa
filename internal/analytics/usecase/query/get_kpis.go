package query

import (
	"fmt"
	"time"

	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
)

// GetKPIsQuery represents the query to compute revenue rollups
type GetKPIsQuery struct {
	Now time.Time
}

// WindowKPIs holds the rollup for one calendar-aligned window.
type WindowKPIs struct {
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"sales_count"`
	Average    float64 `json:"average"`
}

// KPIs groups the day/week/month rollups.
type KPIs struct {
	Today WindowKPIs `json:"today"`
	Week  WindowKPIs `json:"week"`
	Month WindowKPIs `json:"month"`
}

// GetKPIsHandler handles get KPIs query
type GetKPIsHandler struct {
	repo salesdomain.SaleRepository
}

// NewGetKPIsHandler creates a new get KPIs handler
func NewGetKPIsHandler(repo salesdomain.SaleRepository) *GetKPIsHandler {
	return &GetKPIsHandler{repo: repo}
}

// Handle executes the get KPIs query, recomputing over the full sales log.
// Window starts are inclusive: a sale stamped exactly at midnight belongs to
// that day.
func (h *GetKPIsHandler) Handle(query GetKPIsQuery) (*KPIs, error) {
	sales, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var kpis KPIs
	for _, sale := range sales {
		if !sale.Timestamp.Before(todayStart) {
			kpis.Today.Revenue += sale.Total
			kpis.Today.SalesCount++
		}
		if !sale.Timestamp.Before(weekStart) {
			kpis.Week.Revenue += sale.Total
			kpis.Week.SalesCount++
		}
		if !sale.Timestamp.Before(monthStart) {
			kpis.Month.Revenue += sale.Total
			kpis.Month.SalesCount++
		}
	}

	kpis.Today.Average = average(kpis.Today.Revenue, kpis.Today.SalesCount)
	kpis.Week.Average = average(kpis.Week.Revenue, kpis.Week.SalesCount)
	kpis.Month.Average = average(kpis.Month.Revenue, kpis.Month.SalesCount)

	return &kpis, nil
}

func average(revenue float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return revenue / float64(count)
}
