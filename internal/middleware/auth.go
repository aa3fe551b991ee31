package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/api_context"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/handler/api"
	authSvc "github.com/fhuszti/videos-ms-go/internal/usecase/auth"
)

// WithAuth validates a Bearer HS256 token and stores the requester's id and
// role in the request context. Requests without a valid token are rejected.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := authenticate(r, secret)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithOptionalAuth decodes a Bearer token when one is present but lets
// anonymous requests through untouched, so public videos stay reachable
// without an account. An invalid token is still rejected rather than silently
// downgraded to anonymous.
func WithOptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx, err := authenticate(r, secret)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(r *http.Request, secret string) (context.Context, error) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	claims := &authSvc.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim")
	}

	ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, db.UUID(sub))
	ctx = context.WithValue(ctx, api_context.AuthRoleKey, claims.Role)
	return ctx, nil
}
