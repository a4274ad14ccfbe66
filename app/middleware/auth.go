package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogapi/app/models"
	"blogapi/app/services"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireAuth guards mutating routes: it extracts the bearer token,
// verifies its signature and expiry, and confirms the embedded user
// still exists. The authenticated user is placed in the request
// context.
func RequireAuth(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized.")
				return
			}
			token := strings.TrimSpace(header[len("Bearer "):])

			user, err := auth.VerifyToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized.")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user placed in the context by
// RequireAuth, or nil for unguarded routes.
func UserFrom(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}
