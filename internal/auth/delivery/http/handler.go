package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/drinkspot-pos/pkg/auth"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// AuthHandler handles cashier sign-in
type AuthHandler struct {
	adminPINHash string
	cashierID    string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminPINHash, cashierID string) *AuthHandler {
	return &AuthHandler{adminPINHash: adminPINHash, cashierID: cashierID}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// LoginRequest represents the request to sign in with a PIN
type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	CashierID string `json:"cashier_id"`
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
}

// Login handles POST /api/auth/login. A PIN matching the configured admin
// hash yields an admin token; any other PIN yields a cashier token so the
// register keeps working without back-office credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.PIN == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "PIN is required"})
		return
	}

	role := auth.RoleCashier
	if h.adminPINHash != "" && auth.CheckPIN(h.adminPINHash, req.PIN) {
		role = auth.RoleAdmin
	}

	token, err := auth.GenerateToken(h.cashierID, role)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate token")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to generate token"})
		return
	}

	logger.Info(r.Context()).Str("cashier_id", h.cashierID).Str("role", role).Msg("Cashier signed in")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Signed in",
		Data:    LoginResponse{Token: token, Role: role, CashierID: h.cashierID},
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
