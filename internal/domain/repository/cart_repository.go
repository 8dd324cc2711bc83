package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when the user has no cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrDuplicateCart is returned when a second cart is created for the same user.
	ErrDuplicateCart = errors.New("cart already exists")
	// ErrCartItemNotFound is returned when a line item does not exist in the given cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists the cart aggregate. Cart items are only reachable through their cart.
type CartRepository interface {
	// FindByUserID retrieves the user's cart without its items.
	FindByUserID(ctx context.Context, userID string) (*entity.Cart, error)

	// FindByUID retrieves a cart by its public identifier without its items.
	FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Cart, error)

	// Create persists a new cart. Returns ErrDuplicateCart if the user already has one.
	Create(ctx context.Context, cart *entity.Cart) error

	// UpdateTotals writes the cart's derived fields.
	UpdateTotals(ctx context.Context, cart *entity.Cart) error

	// Delete removes a cart and all of its items.
	Delete(ctx context.Context, cartID uint64) error

	// ListItems returns the cart's items with their products, in insertion order.
	ListItems(ctx context.Context, cartID uint64) ([]*entity.CartItem, error)

	// UpsertItem inserts a line or atomically adds quantity to the existing (cart, product) line.
	UpsertItem(ctx context.Context, cartID, productID uint64, quantity int) error

	// UpdateItemQuantity overwrites the quantity of a line item in the given cart.
	UpdateItemQuantity(ctx context.Context, cartID uint64, itemUID uuid.UUID, quantity int) error

	// DeleteItem removes a line item from the given cart.
	DeleteItem(ctx context.Context, cartID uint64, itemUID uuid.UUID) error
}
