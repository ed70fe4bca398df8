// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"
)

// TokenVerifier turns a bearer token into a user id
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type userIDKey struct{}

// WithUserID returns ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id set by RequireAuth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// RequireAuth verifies the Authorization bearer token before calling next.
// Missing token → 401, invalid or expired → 403.
func RequireAuth(verifier TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := verifier.Verify(bearerToken(r.Header.Get("Authorization")))
		if err != nil {
			WriteError(w, err)
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

// bearerToken returns "" unless header is "Bearer <token>"
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
