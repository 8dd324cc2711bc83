package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStatus is the local state of a provider checkout session.
type CheckoutStatus string

const (
	// CheckoutStatusPending means a session was requested and not yet resolved.
	CheckoutStatusPending CheckoutStatus = "pending"
	// CheckoutStatusPaid means the provider reported the session complete.
	CheckoutStatusPaid CheckoutStatus = "paid"
	// CheckoutStatusAbandoned means the provider reported the session expired.
	CheckoutStatusAbandoned CheckoutStatus = "abandoned"
	// CheckoutStatusFailed means the session completed but can never be applied locally,
	// e.g. its order is gone or its metadata does not match the recorded session.
	CheckoutStatusFailed CheckoutStatus = "failed"
)

// IsFinal reports whether no further transition is possible.
func (s CheckoutStatus) IsFinal() bool {
	return s == CheckoutStatusPaid || s == CheckoutStatusAbandoned || s == CheckoutStatusFailed
}

// CheckoutSession correlates a provider session with the order and cart it pays for.
type CheckoutSession struct {
	ID                uint64
	UID               uuid.UUID
	ProviderSessionID string
	OrderUID          uuid.UUID
	CartUID           uuid.UUID
	UserID            string
	Status            CheckoutStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
