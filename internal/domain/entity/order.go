package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a purchase snapshot taken from a cart. It is paid once the payment
// provider confirms the checkout session.
type Order struct {
	ID         uint64          `json:"-"`
	UID        uuid.UUID       `json:"id"`
	UserID     string          `json:"user_id"`
	Email      string          `json:"email"`
	Products   int             `json:"products"`
	OrderTotal decimal.Decimal `json:"order_total"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	IsPaid     bool            `json:"is_paid"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
