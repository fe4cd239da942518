package middleware

import (
	"context"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

type contextKey string

const ctxUser contextKey = "current_user"

// UserFromContext returns the authenticated user, or nil for anonymous
// requests.
func UserFromContext(ctx context.Context) *models.User {
	if ctx == nil {
		return nil
	}
	if user, ok := ctx.Value(ctxUser).(*models.User); ok {
		return user
	}
	return nil
}

// WithUser injects the resolved user into the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}
