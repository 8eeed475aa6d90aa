package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/drinkspot-pos/internal/checkout/domain"
	"github.com/tair/drinkspot-pos/internal/checkout/usecase/command"
	"github.com/tair/drinkspot-pos/internal/checkout/usecase/query"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the working order using CQRS pattern
type CheckoutHandler struct {
	// Command handlers
	addItemHandler     *command.AddItemHandler
	setQuantityHandler *command.SetQuantityHandler
	removeItemHandler  *command.RemoveItemHandler
	clearHandler       *command.ClearOrderHandler
	setDiscountHandler *command.SetDiscountHandler
	finalizeHandler    *command.FinalizeSaleHandler

	// Query handlers
	getOrderHandler *query.GetOrderHandler

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	salesTotal      prometheus.Counter
	revenueTotal    prometheus.Counter
	outOfStockTotal prometheus.Counter
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	addItemHandler *command.AddItemHandler,
	setQuantityHandler *command.SetQuantityHandler,
	removeItemHandler *command.RemoveItemHandler,
	clearHandler *command.ClearOrderHandler,
	setDiscountHandler *command.SetDiscountHandler,
	finalizeHandler *command.FinalizeSaleHandler,
	getOrderHandler *query.GetOrderHandler,
) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_checkout_requests_total",
			Help: "Total number of checkout requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	salesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_total",
		Help: "Number of finalized sales",
	})

	revenueTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_revenue_total",
		Help: "Revenue across finalized sales",
	})

	outOfStockTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_out_of_stock_total",
		Help: "Number of add-to-order attempts refused for lack of stock",
	})

	prometheus.MustRegister(requestCounter, requestLatency, salesTotal, revenueTotal, outOfStockTotal)

	return &CheckoutHandler{
		addItemHandler:     addItemHandler,
		setQuantityHandler: setQuantityHandler,
		removeItemHandler:  removeItemHandler,
		clearHandler:       clearHandler,
		setDiscountHandler: setDiscountHandler,
		finalizeHandler:    finalizeHandler,
		getOrderHandler:    getOrderHandler,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		salesTotal:         salesTotal,
		revenueTotal:       revenueTotal,
		outOfStockTotal:    outOfStockTotal,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/order", h.metricsMiddleware("/api/order", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/order", h.metricsMiddleware("/api/order", h.ClearOrder)).Methods("DELETE")
	router.HandleFunc("/api/order/items", h.metricsMiddleware("/api/order/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/order/items/{product_id}", h.metricsMiddleware("/api/order/items/{product_id}", h.SetQuantity)).Methods("PATCH")
	router.HandleFunc("/api/order/items/{product_id}", h.metricsMiddleware("/api/order/items/{product_id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/order/discount", h.metricsMiddleware("/api/order/discount", h.SetDiscount)).Methods("PATCH")
	router.HandleFunc("/api/order/checkout", h.metricsMiddleware("/api/order/checkout", h.Checkout)).Methods("POST")
}

// GetOrder handles GET /api/order
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.getOrderHandler.Handle(query.GetOrderQuery{})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to read order"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// AddItem handles POST /api/order/items
func (h *CheckoutHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	err := h.addItemHandler.Handle(r.Context(), command.AddItemCommand{ProductID: req.ProductID})
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			h.outOfStockTotal.Inc()
		}
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item added to order"})
}

// SetQuantity handles PATCH /api/order/items/{product_id}
func (h *CheckoutHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDVar(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	err := h.setQuantityHandler.Handle(r.Context(), command.SetQuantityCommand{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Quantity updated"})
}

// RemoveItem handles DELETE /api/order/items/{product_id}
func (h *CheckoutHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDVar(w, r)
	if !ok {
		return
	}

	err := h.removeItemHandler.Handle(r.Context(), command.RemoveItemCommand{ProductID: productID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item removed"})
}

// ClearOrder handles DELETE /api/order
func (h *CheckoutHandler) ClearOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearOrderCommand{}); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Order cleared"})
}

// SetDiscount handles PATCH /api/order/discount
func (h *CheckoutHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Percent float64 `json:"percent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if err := h.setDiscountHandler.Handle(r.Context(), command.SetDiscountCommand{Percent: req.Percent}); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Discount updated"})
}

// Checkout handles POST /api/order/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sale, err := h.finalizeHandler.Handle(r.Context(), command.FinalizeSaleCommand{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.salesTotal.Inc()
	h.revenueTotal.Add(sale.Total)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale recorded",
		Data:    sale,
	})
}

// respondError maps domain errors to HTTP statuses
func (h *CheckoutHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrOutOfStock), errors.Is(err, invdomain.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownProduct):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Checkout operation failed")
	}

	respondJSON(w, status, Response{Success: false, Error: err.Error()})
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
