package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/drinkspot-pos/internal/sales/usecase/query"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// SalesHandler handles HTTP requests for the sales history
type SalesHandler struct {
	searchHandler *query.SearchSalesHandler
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(searchHandler *query.SearchSalesHandler) *SalesHandler {
	return &SalesHandler{searchHandler: searchHandler}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all sales routes
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.ListSales).Methods("GET")
	router.HandleFunc("/api/sales/search", h.SearchSales).Methods("GET")
}

// ListSales handles GET /api/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.searchHandler.Handle(query.SearchSalesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load sales")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to load sales"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sales})
}

// SearchSales handles GET /api/sales/search
func (h *SalesHandler) SearchSales(w http.ResponseWriter, r *http.Request) {
	q := query.SearchSalesQuery{Term: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		q.From = from
	}

	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		q.To = to
	}

	sales, err := h.searchHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to search sales")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to search sales"})
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
