package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product as favorited by a user. Presence is the state.
type Favorite struct {
	ID        uint64    `json:"-"`
	UID       uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID uint64    `json:"-"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
