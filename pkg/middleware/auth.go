package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/damassweet/damas/pkg/auth"
	"github.com/damassweet/damas/pkg/response"
)

type claimsKey struct{}

// CookieName is the cookie the login endpoint sets and Auth reads.
const CookieName = "token"

// Auth validates the JWT from the "token" cookie or the Authorization
// header and stores the claims in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// ClaimsFromCtx returns the authenticated user's claims, if present.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// UserIDFromCtx returns the authenticated user's ID.
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromCtx(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
