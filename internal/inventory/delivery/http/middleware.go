package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/drinkspot-pos/pkg/auth"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

type contextKey string

const (
	CashierIDKey contextKey = "cashier_id"
	RoleKey      contextKey = "role"
)

// AuthMiddleware validates the bearer JWT and stores its claims on the
// request context
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Logger.Warn().Msg("Missing authorization header")
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authorization header required"})
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid authorization header format"})
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Token validation failed")
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), CashierIDKey, claims.CashierID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware requires a valid token carrying the admin role
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != auth.RoleAdmin {
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
