package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Review is a user's rating of a product. A user has at most one review per product.
type Review struct {
	ID             uint64    `json:"-"`
	UID            uuid.UUID `json:"id"`
	UserID         string    `json:"user_id"`
	ProductID      uint64    `json:"-"`
	Product        *Product  `json:"product,omitempty"`
	AuthorName     string    `json:"author_name"`
	AuthorImageURL string    `json:"author_image_url"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProductRating is the aggregate of a product's reviews.
type ProductRating struct {
	Rating decimal.Decimal `json:"rating"`
	Count  int             `json:"count"`
}

// NewProductRating rounds an average to one decimal place. A zero count yields a zero rating.
func NewProductRating(sum, count int) ProductRating {
	if count == 0 {
		return ProductRating{Rating: decimal.Zero}
	}

	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count)))

	return ProductRating{Rating: avg.Round(1), Count: count}
}
