package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found for the caller.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the user already favorited the product.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUserAndProduct retrieves the user's favorite for a product.
	FindByUserAndProduct(ctx context.Context, userID string, productID uint64) (*entity.Favorite, error)

	// ListByUser returns the user's favorites with their products.
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)

	// Delete hard-deletes a favorite owned by the user.
	Delete(ctx context.Context, userID string, uid uuid.UUID) error
}
