package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	UID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	UserID     string          `gorm:"type:varchar(255);not null;index"`
	Email      string          `gorm:"type:varchar(255);not null"`
	Products   int             `gorm:"not null;default:0"`
	OrderTotal decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Shipping   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IsPaid     bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// CheckoutSessionModel is the GORM-specific struct for the 'checkout_sessions' table.
// It tracks a payment provider session from creation until it is paid or abandoned.
type CheckoutSessionModel struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	UID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProviderSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	OrderUID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CartUID           uuid.UUID `gorm:"type:uuid;not null"`
	UserID            string    `gorm:"type:varchar(255);not null"`
	Status            string    `gorm:"type:varchar(20);not null;index:idx_checkout_sessions_status_created"`
	CreatedAt         time.Time `gorm:"index:idx_checkout_sessions_status_created"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutSessionModel) TableName() string {
	return "checkout_sessions"
}
