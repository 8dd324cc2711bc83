package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// IdentityProvider resolves the caller from a bearer credential.
type IdentityProvider interface {
	// CurrentUser verifies the token. It returns ErrUnauthorized when the token is missing or invalid.
	CurrentUser(ctx context.Context, token string) (*entity.Identity, error)
}
