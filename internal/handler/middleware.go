package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/saarthi-app/saarthi/internal/domain"
	"github.com/saarthi-app/saarthi/internal/service"
)

// CORS marks every response as callable from any origin; the browser client
// is served separately from the API. Preflight requests are answered
// directly and never reach the mux.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring authentication.
// It extracts the bearer token from the Authorization header, validates the
// JWT, loads the user from the store, and injects it into the request
// context. A valid token whose user no longer exists is rejected outright;
// downstream handlers never see a nil identity. Verification failures are
// logged with the real reason while clients get a generic message.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		userID, err := auth.ValidateToken(token)
		if err != nil {
			slog.Warn("token verification failed", "error", err)
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		user, err := auth.GetUserByID(r.Context(), userID)
		if err != nil {
			slog.Warn("token user lookup failed", "user_id", userID, "error", err)
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		// The PIN hash stays behind the auth service boundary.
		user.PinHash = ""

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
