package middleware

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// contextKey is a private key type to avoid collisions in contexts.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the
// request context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetRoleFromCtx retrieves the authenticated user's role from the
// request context. It defaults to the unprivileged role when absent.
func GetRoleFromCtx(ctx context.Context) domain.UserRole {
	if role, ok := ctx.Value(userRoleKey).(domain.UserRole); ok {
		return role
	}
	return domain.RoleUser
}

// GetCapabilityFromCtx derives the mutation capability of the request's
// principal. Handlers pass this value into every mutating service call.
func GetCapabilityFromCtx(ctx context.Context) domain.Capability {
	return GetRoleFromCtx(ctx).Capability()
}
