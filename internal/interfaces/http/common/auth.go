package common

import (
	"context"

	"github.com/zhyrafyk/park-services/api/internal/auth"
)

type contextKey string

const adminClaimsContextKey contextKey = "adminClaims"

// ContextWithAdmin stores verified admin claims into the request context.
func ContextWithAdmin(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminClaimsContextKey, claims)
}

// AdminFromContext extracts admin claims placed by the auth middleware.
func AdminFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(adminClaimsContextKey).(*auth.Claims)
	return claims, ok
}
