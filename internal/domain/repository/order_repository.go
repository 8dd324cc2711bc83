package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new unpaid order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUID retrieves an order by its public identifier.
	FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Order, error)

	// MarkPaid sets is_paid on the order. Marking a paid order again is a no-op.
	MarkPaid(ctx context.Context, uid uuid.UUID) error

	// ListByUser returns the user's paid orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListPaid returns every paid order, newest first.
	ListPaid(ctx context.Context) ([]*entity.Order, error)
}
