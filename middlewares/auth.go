// Package middlewares contains the request-level auth gate.
package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"taskman-api/auth"
)

type identityKey struct{}

// RequireAuth returns a middleware that verifies the bearer token and
// attaches the resulting identity to the request context. Handlers behind it
// trust that identity without re-verifying the token.
func RequireAuth(tokens *auth.TokenManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, "No token, authorization denied")
				return
			}
			identity, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w, "Token is not valid")
				return
			}
			next(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, prefix)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// WithIdentity stores a verified identity in ctx.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the identity attached by RequireAuth.
func GetIdentity(r *http.Request) (auth.Identity, bool) {
	identity, ok := r.Context().Value(identityKey{}).(auth.Identity)
	return identity, ok
}
