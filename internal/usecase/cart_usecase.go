// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID string `json:"productId" form:"productId" validate:"required,uuid"`
	Quantity  int    `json:"amount" form:"amount" validate:"min=1"`
}

// ValidationMessages overrides the default failure messages.
func (AddCartItemInput) ValidationMessages() map[string]string {
	return map[string]string{
		"productId.required": "Product ID cannot be empty",
		"amount.min":         "amount must be at least 1",
	}
}

// SetCartItemQuantityInput defines the data required to overwrite a line quantity.
type SetCartItemQuantityInput struct {
	Quantity int `json:"amount" form:"amount" validate:"min=0"`
}

// ValidationMessages overrides the default failure messages.
func (SetCartItemQuantityInput) ValidationMessages() map[string]string {
	return map[string]string{
		"amount.min": "amount must be a positive number",
	}
}

// CartUsecase owns the cart aggregate. Every mutation recomputes the derived
// totals inside the same transaction and returns the updated cart with items.
type CartUsecase interface {
	// GetOrCreateCart fetches the user's cart, creating an empty one unless failIfMissing is set.
	GetOrCreateCart(ctx context.Context, userID string, failIfMissing bool) (*entity.Cart, error)

	// GetCart returns the user's cart with items and product snapshots, creating it if absent.
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)

	// CountItems returns the number of units in the user's cart, 0 without a cart.
	CountItems(ctx context.Context, userID string) (int, error)

	// AddItem adds quantity of a product, merging with an existing line.
	AddItem(ctx context.Context, userID string, input *AddCartItemInput) (*entity.Cart, error)

	// RemoveItem deletes a line from the caller's cart.
	RemoveItem(ctx context.Context, userID string, itemID uuid.UUID) (*entity.Cart, error)

	// SetItemQuantity overwrites a line's quantity. Zero removes the line.
	SetItemQuantity(ctx context.Context, userID string, itemID uuid.UUID, input *SetCartItemQuantityInput) (*entity.Cart, error)

	// Recompute reloads the cart's items and rewrites its derived totals.
	Recompute(ctx context.Context, cart *entity.Cart) ([]*entity.CartItem, *entity.Cart, error)
}
