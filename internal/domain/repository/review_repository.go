package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found for the caller.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (user, product) unique index rejects an insert.
	ErrDuplicateReview = errors.New("review already exists")
)

// RatingAggregate is the raw sum and count of a product's ratings.
type RatingAggregate struct {
	Sum   int64
	Count int64
}

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByUserAndProduct retrieves the user's review of a product.
	FindByUserAndProduct(ctx context.Context, userID string, productID uint64) (*entity.Review, error)

	// ListByProduct returns a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID uint64) ([]*entity.Review, error)

	// ListByUser returns the user's reviews with product name and image.
	ListByUser(ctx context.Context, userID string) ([]*entity.Review, error)

	// AggregateRating sums the ratings of a product.
	AggregateRating(ctx context.Context, productID uint64) (RatingAggregate, error)

	// Delete removes a review owned by the user.
	Delete(ctx context.Context, userID string, uid uuid.UUID) error
}
