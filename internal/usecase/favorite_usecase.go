package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ToggleFavoriteInput flips a product's favorite state for the caller.
type ToggleFavoriteInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	// FavoriteID is the existing favorite to remove. Empty means add.
	FavoriteID string `json:"favoriteId" validate:"omitempty,uuid"`
	// PathName is the page to revalidate afterwards.
	PathName string `json:"pathName"`
}

// FavoriteUsecase manages a user's favorite products.
type FavoriteUsecase interface {
	// ToggleFavorite adds or removes a favorite and returns a confirmation message.
	ToggleFavorite(ctx context.Context, userID string, input *ToggleFavoriteInput) (string, error)

	// FindFavoriteID returns the caller's favorite id for a product, or "" if none.
	FindFavoriteID(ctx context.Context, userID, productID string) (string, error)

	// ListUserFavorites returns the caller's favorites with their products.
	ListUserFavorites(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
