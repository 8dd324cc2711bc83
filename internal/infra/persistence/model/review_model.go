package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The (user_id, product_id) unique index enforces one review per user and product.
type ReviewModel struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_reviews_user_product"`
	ProductID      uint64    `gorm:"not null;uniqueIndex:idx_reviews_user_product;index"`
	AuthorName     string    `gorm:"type:varchar(255);not null"`
	AuthorImageURL string    `gorm:"type:text;not null"`
	Rating         int       `gorm:"not null"`
	Comment        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
type FavoriteModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// All lists every storefront model in dependency order for AutoMigrate and code generation.
func All() []any {
	return []any{
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&CheckoutSessionModel{},
		&ReviewModel{},
		&FavoriteModel{},
	}
}
