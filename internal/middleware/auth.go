package middleware

import (
	"context"
	"net/http"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/httputil"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// Authenticated gates a route behind a valid bearer token. Every failure
// (missing header, bad signature, expiry, garbage) answers with the same
// 401 before any core logic runs.
func Authenticated(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				httputil.WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated account id placed by Authenticated.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDContextKey).(uint)
	return id, ok
}
