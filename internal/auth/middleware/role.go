package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/assetmagnets/platform/internal/models"
)

// RoleMiddleware validates the bearer token and checks the user's role is in allowed
//
// A missing or invalid token yields 401, a valid token with another role yields 403.
func RoleMiddleware(validator TokenValidator, allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := authenticate(w, r, validator)
			if !ok {
				return
			}

			if !slices.Contains(allowed, claims.Role) {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
