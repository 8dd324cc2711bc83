package service

import (
	"context"
	"time"
)

// CheckoutEvent is a checkout lifecycle event published for downstream consumers
type CheckoutEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Name       string    `json:"name"`
	SessionID  string    `json:"session_id"`
	OrderID    string    `json:"order_id,omitempty"`
	CartID     string    `json:"cart_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Reason     string    `json:"reason,omitempty"` // Set on failure events
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckoutEvent publishes a checkout event
	PublishCheckoutEvent(ctx context.Context, event *CheckoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
