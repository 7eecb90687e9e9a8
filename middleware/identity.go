// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/beefmusic/api/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, resolved from the bearer token.
type Identity struct {
	Role     string
	UserID   string
	Username string
}

// RequireUser rejects requests without a valid user token and puts the
// caller's identity into the request context.
func RequireUser(secret string, next http.HandlerFunc) http.HandlerFunc {
	return requireRole(secret, auth.RoleUser, next)
}

// RequireAdmin rejects requests without a valid admin token.
func RequireAdmin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return requireRole(secret, auth.RoleAdmin, next)
}

func requireRole(secret, role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			ErrorResponse(w, http.StatusUnauthorized, "No autorizado")
			return
		}

		claims, err := auth.ParseToken(secret, raw)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Token no válido o expirado")
			return
		}
		if claims.Role != role {
			ErrorResponse(w, http.StatusForbidden, "Permisos insuficientes")
			return
		}

		ident := Identity{Role: claims.Role, UserID: claims.UserID, Username: claims.Username}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
	}
}

// IdentityFrom returns the authenticated identity stored by RequireUser
// or RequireAdmin.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

// OptionalIdentity resolves a user identity if the request carries a valid
// user token, or nil for anonymous callers. Used by public endpoints that
// personalize their response (the catalog's userVote field).
func OptionalIdentity(r *http.Request, secret string) *Identity {
	raw := bearerToken(r)
	if raw == "" {
		return nil
	}

	claims, err := auth.ParseToken(secret, raw)
	if err != nil || claims.Role != auth.RoleUser {
		return nil
	}
	return &Identity{Role: claims.Role, UserID: claims.UserID, Username: claims.Username}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
