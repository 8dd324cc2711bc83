// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// minorUnitsPerUnit converts whole currency units to the provider's smallest unit.
const minorUnitsPerUnit = 100

// Product is a catalog entry. Price is stored in whole currency units.
type Product struct {
	ID          uint64    `json:"-"`           // Internal storage key, never exposed.
	UID         uuid.UUID `json:"id"`          // Opaque public identifier.
	Name        string    `json:"name"`        // Display name.
	Company     string    `json:"company"`     // Manufacturer or brand.
	Description string    `json:"description"` // Long description.
	Price       int64     `json:"price"`       // Whole currency units.
	Image       string    `json:"image"`       // Public image URL.
	Featured    bool      `json:"featured"`    // Shown on the landing page.
	CreatedBy   string    `json:"-"`           // Identity of the admin who created it.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnitAmount returns the price in the smallest currency unit.
func (p *Product) UnitAmount() int64 {
	return p.Price * minorUnitsPerUnit
}

// ProductSort enumerates catalog listing orders.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortName      ProductSort = "name"
)

// IsValid reports whether s is a known sort order.
func (s ProductSort) IsValid() bool {
	switch s {
	case ProductSortNewest, ProductSortPriceAsc, ProductSortPriceDesc, ProductSortName:
		return true
	default:
		return false
	}
}

// ParseProductSort falls back to newest for empty or unknown values.
func ParseProductSort(s string) ProductSort {
	sort := ProductSort(s)
	if !sort.IsValid() {
		return ProductSortNewest
	}

	return sort
}
