package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/drinkspot-pos/internal/analytics/usecase/query"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// AnalyticsHandler handles HTTP requests for the dashboard rollups
type AnalyticsHandler struct {
	kpiHandler      *query.GetKPIsHandler
	lowStockHandler *query.LowStockHandler
	recentHandler   *query.RecentSalesHandler
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	kpiHandler *query.GetKPIsHandler,
	lowStockHandler *query.LowStockHandler,
	recentHandler *query.RecentSalesHandler,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		kpiHandler:      kpiHandler,
		lowStockHandler: lowStockHandler,
		recentHandler:   recentHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all analytics routes
func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/analytics/kpis", h.GetKPIs).Methods("GET")
	router.HandleFunc("/api/analytics/low-stock", h.GetLowStock).Methods("GET")
	router.HandleFunc("/api/analytics/recent-sales", h.GetRecentSales).Methods("GET")
}

// GetKPIs handles GET /api/analytics/kpis
func (h *AnalyticsHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.kpiHandler.Handle(query.GetKPIsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute KPIs")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute KPIs"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: kpis})
}

// GetLowStock handles GET /api/analytics/low-stock
func (h *AnalyticsHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.lowStockHandler.Handle(query.LowStockQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute low stock")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute low stock"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetRecentSales handles GET /api/analytics/recent-sales
func (h *AnalyticsHandler) GetRecentSales(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid limit"})
			return
		}
		limit = parsed
	}

	sales, err := h.recentHandler.Handle(query.RecentSalesQuery{Limit: limit})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load recent sales")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to load recent sales"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sales})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
