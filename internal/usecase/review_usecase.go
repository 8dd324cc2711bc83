package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewInput defines the data required to review a product.
type ReviewInput struct {
	ProductID      string `json:"productId" form:"productId" validate:"required"`
	AuthorName     string `json:"authorName" form:"authorName" validate:"required"`
	AuthorImageURL string `json:"authorImageUrl" form:"authorImageUrl" validate:"required"`
	Rating         int    `json:"rating" form:"rating" validate:"min=1,max=5"`
	Comment        string `json:"comment" form:"comment" validate:"min=10,max=1000"`
}

// ValidationMessages overrides the default failure messages.
func (ReviewInput) ValidationMessages() map[string]string {
	return map[string]string{
		"productId.required":      "Product ID cannot be empty",
		"authorName.required":     "Author name cannot be empty",
		"authorImageUrl.required": "Author image URL cannot be empty",
		"rating.min":              "Rating must be at least 1",
		"rating.max":              "Rating must be at most 5",
		"comment.min":             "Comment must be at least 10 characters long",
		"comment.max":             "Comment must be at most 1000 characters long",
	}
}

// ReviewUsecase manages product reviews and ratings.
type ReviewUsecase interface {
	// SubmitReview records the caller's single review of a product.
	SubmitReview(ctx context.Context, userID string, input *ReviewInput) (*entity.Review, error)

	// ListProductReviews returns a product's reviews, newest first.
	ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error)

	// ListUserReviews returns the caller's reviews with product name and image.
	ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error)

	// DeleteReview removes one of the caller's reviews.
	DeleteReview(ctx context.Context, userID, reviewID string) error

	// ComputeRating returns the product's average rating and review count.
	ComputeRating(ctx context.Context, productID string) (*entity.ProductRating, error)
}
