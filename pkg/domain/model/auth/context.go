package auth

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type ctxKey struct{}

// WithIdentity returns a context carrying the authenticated identity
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}

// IdentityFromContext returns the authenticated identity, if any
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(*model.Identity)
	return identity, ok && identity != nil
}

// RoleFromContext resolves the effective role of the current actor.
// Requests without an authenticated identity are anonymous.
func RoleFromContext(ctx context.Context) types.Role {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.Role
	}
	return types.RoleAnonymous
}
