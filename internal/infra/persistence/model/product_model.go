package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Company     string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       int64     `gorm:"not null;default:0"`
	Image       string    `gorm:"type:text;not null"`
	Featured    bool      `gorm:"not null;default:false;index"`
	CreatedBy   string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
