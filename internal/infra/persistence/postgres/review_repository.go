package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.UID == uuid.Nil {
		review.UID = uuid.New()
	}
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("review violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByUserAndProduct retrieves the user's review of a product.
func (repo *reviewRepository) FindByUserAndProduct(ctx context.Context, userID string, productID uint64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByProduct returns a product's reviews, newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uint64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return toReviewDomains(reviewModels), nil
}

// ListByUser returns the user's reviews with product name and image.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return toReviewDomains(reviewModels), nil
}

// AggregateRating sums the ratings of a product.
func (repo *reviewRepository) AggregateRating(ctx context.Context, productID uint64) (repository.RatingAggregate, error) {
	var agg repository.RatingAggregate

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(SUM(rating), 0) AS sum, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return repository.RatingAggregate{}, errors.Wrap(err, "failed to aggregate product rating")
	}

	return agg, nil
}

// Delete removes a review owned by the user.
func (repo *reviewRepository) Delete(ctx context.Context, userID string, uid uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ? AND user_id = ?", uid, userID).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomains(reviewModels []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		UID:            data.UID,
		UserID:         data.UserID,
		ProductID:      data.ProductID,
		Product:        toProductDomain(data.Product),
		AuthorName:     data.AuthorName,
		AuthorImageURL: data.AuthorImageURL,
		Rating:         data.Rating,
		Comment:        data.Comment,
		CreatedAt:      data.CreatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		UID:            data.UID,
		UserID:         data.UserID,
		ProductID:      data.ProductID,
		AuthorName:     data.AuthorName,
		AuthorImageURL: data.AuthorImageURL,
		Rating:         data.Rating,
		Comment:        data.Comment,
	}
}
