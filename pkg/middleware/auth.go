package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Austinkuria/E-commerce-Site/pkg/auth"
	"github.com/Austinkuria/E-commerce-Site/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// Auth validates the Bearer token and stores the caller's user ID and role
// in the request context. Cart and checkout routes require it: an anonymous
// caller gets a 401 before any handler runs.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(w)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, roleKey{}, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx returns the authenticated user's ID stored by Auth.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey{}).(uint)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role stored by Auth.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey{}).(string)
	return role, ok
}
