package auth

import (
	"context"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
)

// Context keys for authentication data
type contextKey string

// ContextKeyIdentityID is the context key for the caller's identity-provider ID
const ContextKeyIdentityID contextKey = "identity_id"

// WithIdentityID adds the caller's identity ID to the context
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, ContextKeyIdentityID, identityID)
}

// IdentityIDFromContext retrieves the caller's identity ID from the context
func IdentityIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyIdentityID).(string)
	return id, ok && id != ""
}

// RequireIdentityID returns the caller's identity ID or an invalid_request error when it is missing
func RequireIdentityID(ctx context.Context) (string, error) {
	id, ok := IdentityIDFromContext(ctx)
	if !ok {
		return "", apperrors.BadRequestError(nil, apperrors.KindInvalidRequest)
	}
	return id, nil
}
