package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/drinkspot-pos/internal/inventory/usecase/command"
	"github.com/tair/drinkspot-pos/internal/inventory/usecase/query"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// InventoryHandler handles HTTP requests for the stock ledger
type InventoryHandler struct {
	// Command handlers
	adjustHandler    *command.AdjustStockHandler
	setRecordHandler *command.SetRecordHandler

	// Query handlers
	getHandler  *query.GetRecordHandler
	listHandler *query.ListRecordsHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	adjustHandler *command.AdjustStockHandler,
	setRecordHandler *command.SetRecordHandler,
	getHandler *query.GetRecordHandler,
	listHandler *query.ListRecordsHandler,
) *InventoryHandler {
	return &InventoryHandler{
		adjustHandler:    adjustHandler,
		setRecordHandler: setRecordHandler,
		getHandler:       getHandler,
		listHandler:      listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/inventory", h.ListRecords).Methods("GET")
	router.HandleFunc("/api/inventory/{product_id}", h.GetRecord).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/inventory/{product_id}/stock", AdminMiddleware(h.AdjustStock)).Methods("PATCH")
	router.HandleFunc("/api/inventory/{product_id}", AdminMiddleware(h.SetRecord)).Methods("PUT")
}

// ListRecords handles GET /api/inventory
func (h *InventoryHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.listHandler.Handle(query.ListRecordsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list inventory"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: records})
}

// GetRecord handles GET /api/inventory/{product_id}
func (h *InventoryHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDVar(w, r)
	if !ok {
		return
	}

	rec, err := h.getHandler.Handle(query.GetRecordQuery{ProductID: productID})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: rec})
}

// AdjustStock handles PATCH /api/inventory/{product_id}/stock
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDVar(w, r)
	if !ok {
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	rec, err := h.adjustHandler.Handle(r.Context(), command.AdjustStockCommand{
		ProductID: productID,
		Delta:     req.Delta,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock adjusted",
		Data:    rec,
	})
}

// SetRecord handles PUT /api/inventory/{product_id}
func (h *InventoryHandler) SetRecord(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDVar(w, r)
	if !ok {
		return
	}

	var req struct {
		Stock     int `json:"stock"`
		Threshold int `json:"threshold"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	rec, err := h.setRecordHandler.Handle(r.Context(), command.SetRecordCommand{
		ProductID: productID,
		Stock:     req.Stock,
		Threshold: req.Threshold,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory record updated",
		Data:    rec,
	})
}

func productIDVar(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["product_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
