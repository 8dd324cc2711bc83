package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/service"
)

// CreateCheckoutSessionInput identifies the order and cart to pay for.
type CreateCheckoutSessionInput struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	CartID  string `json:"cartId" validate:"required,uuid"`
	// Origin is the scheme and host the embedded checkout returns to.
	Origin string `json:"-" validate:"required"`
}

// ValidationMessages overrides the default failure messages.
func (CreateCheckoutSessionInput) ValidationMessages() map[string]string {
	return map[string]string{
		"orderId.required": "Order ID cannot be empty",
		"cartId.required":  "Cart ID cannot be empty",
	}
}

// CreateCheckoutSessionOutput carries the secret the embedded checkout needs.
type CreateCheckoutSessionOutput struct {
	ClientSecret string `json:"clientSecret"`
	SessionID    string `json:"-"`
}

// ConfirmResult reports what a confirmation did. It is never an error for the caller.
type ConfirmResult struct {
	SessionID      string
	ProviderStatus service.ProviderSessionStatus
	OrderPaid      bool
	CartCleared    bool
	// Failure is set when a complete session could not be applied.
	Failure string
}

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	Checked   int
	Paid      int
	Abandoned int
	Failed    int
}

// CheckoutUsecase drives the payment session lifecycle.
type CheckoutUsecase interface {
	// CreateSession opens a provider session for the caller's order and cart and returns its client secret.
	CreateSession(ctx context.Context, userID string, input *CreateCheckoutSessionInput) (*CreateCheckoutSessionOutput, error)

	// ConfirmSession applies a provider session's outcome. Re-invocation is safe.
	ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error)

	// ReconcilePending re-checks pending sessions older than the threshold.
	ReconcilePending(ctx context.Context, olderThan time.Duration) (*ReconcileReport, error)
}
