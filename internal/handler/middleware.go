package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware verifies the bearer token and injects the user ID into
// the request context. Every protected handler reads identity from here,
// never from a global.
func AuthMiddleware(auth *service.AuthService, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			userID, err := auth.ParseToken(parts[1])
			if err != nil {
				logger.WithError(err).Debug("Rejected token")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID set by AuthMiddleware
func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// userID is the per-request shortcut used inside handlers; it writes the
// 401 itself and reports whether the caller should continue
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := UserIDFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return 0, false
	}
	return id, true
}
