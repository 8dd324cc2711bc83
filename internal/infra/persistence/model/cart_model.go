package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// The totals columns are a projection of cart_items and are rewritten on every item mutation.
type CartModel struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	UID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	UserID     string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	TaxRate    decimal.Decimal `gorm:"type:numeric(6,4);not null;default:0.1"`
	Shipping   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:5"`
	NumItems   int             `gorm:"not null;default:0"`
	CartTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OrderTotal decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
type CartItemModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CartID    uint64    `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
