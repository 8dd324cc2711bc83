// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the public identifier.
	ErrProductNotFound = errors.New("product not found")
)

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	// Search matches name or company, case-insensitively. Empty matches everything.
	Search string
	// FeaturedOnly restricts the listing to featured products.
	FeaturedOnly bool
	Sort         entity.ProductSort
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// FindByUID retrieves a product by its public identifier.
	FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Product, error)

	// List returns products matching the filter in the requested order.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product and fills its generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites the editable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its public identifier.
	Delete(ctx context.Context, uid uuid.UUID) error
}
