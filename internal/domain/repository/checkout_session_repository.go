package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for checkout session persistence.
var (
	// ErrCheckoutSessionNotFound is returned when no session row matches the provider id.
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	// ErrDuplicateCheckoutSession is returned when a provider session id is recorded twice.
	ErrDuplicateCheckoutSession = errors.New("checkout session already exists")
)

// CheckoutSessionRepository records the lifecycle of payment sessions.
type CheckoutSessionRepository interface {
	// Create records a new session.
	Create(ctx context.Context, session *entity.CheckoutSession) error

	// FindByProviderID retrieves a session by the payment provider's identifier.
	FindByProviderID(ctx context.Context, providerSessionID string) (*entity.CheckoutSession, error)

	// UpdateStatus moves a session to a new status.
	UpdateStatus(ctx context.Context, providerSessionID string, status entity.CheckoutStatus) error

	// Requeue moves a session that is still pending to the back of the reconciliation order.
	// Sessions in any other status are left untouched.
	Requeue(ctx context.Context, providerSessionID string) error

	// ListPendingBefore returns pending sessions created before the cutoff, least recently
	// updated first.
	ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.CheckoutSession, error)
}
