package service

// Checkout confirmation outcomes reported to metrics.
const (
	ConfirmOutcomePaid      = "paid"
	ConfirmOutcomeOpen      = "open"
	ConfirmOutcomeAbandoned = "abandoned"
	ConfirmOutcomeFailed    = "failed"
)

// CheckoutMetrics records checkout activity for monitoring.
type CheckoutMetrics interface {
	// SessionCreated counts a successfully opened payment session.
	SessionCreated()

	// ConfirmationOutcome counts one confirmation attempt by outcome.
	ConfirmationOutcome(outcome string)
}
