package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/web"
)

type contextKey int

const claimsKey contextKey = iota

// ClaimsFrom returns the verified claims stored by RequireRole, if any.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RequireRole guards a route subtree: requests must carry a valid Bearer
// token asserting the given role. Missing, invalid or expired tokens fail
// closed with 401; a valid identity without the role gets 403.
func RequireRole(tokens *TokenManager, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				web.RespondError(w, r, apperr.Authentication("Missing authorization token"))
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				web.RespondError(w, r, apperr.Authentication("Invalid authorization header"))
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				web.RespondError(w, r, err)
				return
			}

			if !hasRole(claims.Roles, role) {
				web.RespondError(w, r, apperr.Authorization("Insufficient privileges"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
