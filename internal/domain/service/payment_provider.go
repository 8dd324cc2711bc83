package service

import (
	"context"
)

// ProviderSessionStatus is the payment provider's view of a checkout session.
type ProviderSessionStatus string

const (
	ProviderSessionOpen     ProviderSessionStatus = "open"
	ProviderSessionComplete ProviderSessionStatus = "complete"
	ProviderSessionExpired  ProviderSessionStatus = "expired"
)

// Checkout session metadata keys carried through the provider round trip.
const (
	MetadataOrderID = "orderId"
	MetadataCartID  = "cartId"
)

// CheckoutLineItem is one priced line sent to the payment provider.
type CheckoutLineItem struct {
	Name       string
	Image      string
	UnitAmount int64 // smallest currency unit
	Quantity   int64
}

// CheckoutSessionRequest describes an embedded checkout session to open.
type CheckoutSessionRequest struct {
	LineItems []CheckoutLineItem
	Metadata  map[string]string
	ReturnURL string
}

// ProviderSession is a newly created checkout session.
type ProviderSession struct {
	ID           string
	ClientSecret string
}

// ProviderSessionState is the retrieved state of an existing checkout session.
type ProviderSessionState struct {
	ID       string
	Status   ProviderSessionStatus
	Metadata map[string]string
}

// PaymentProvider abstracts the hosted checkout of the payment processor.
//
// Implementations return domain errors: ErrConfiguration when credentials are
// missing, ErrProviderTimeout when the call deadline passes, ErrProviderFailed otherwise.
type PaymentProvider interface {
	// CreateCheckoutSession opens an embedded payment session.
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*ProviderSession, error)

	// RetrieveSession fetches the status and metadata of a session.
	RetrieveSession(ctx context.Context, sessionID string) (*ProviderSessionState, error)
}
