package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase creates and lists orders.
type OrderUsecase interface {
	// CreateOrder snapshots the caller's cart into a new unpaid order.
	CreateOrder(ctx context.Context, userID, email string) (*entity.Order, error)

	// ListOrders returns the caller's paid orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAllOrders returns every paid order, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}
