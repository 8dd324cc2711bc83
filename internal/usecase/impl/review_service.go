package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	pageCache   service.PageCache
	validator   *validation.Validator
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	PageCache   service.PageCache
	Validator   *validation.Validator
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		pageCache:   params.PageCache,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// SubmitReview records the caller's single review of a product.
func (srv *reviewService) SubmitReview(ctx context.Context, userID string, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	_, err = srv.reviewRepo.FindByUserAndProduct(ctx, userID, product.ID)
	if err == nil {
		return nil, domainerrors.ErrReviewAlreadyExists
	}
	if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	review := &entity.Review{
		UID:            uuid.New(),
		UserID:         userID,
		ProductID:      product.ID,
		Product:        product,
		AuthorName:     input.AuthorName,
		AuthorImageURL: input.AuthorImageURL,
		Rating:         input.Rating,
		Comment:        input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review submitted",
		slog.String("userID", userID),
		slog.String("productID", product.UID.String()),
		slog.Int("rating", review.Rating),
	)
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.ProductPath(product.UID.String()))

	return review, nil
}

// ListProductReviews returns a product's reviews, newest first.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// ListUserReviews returns the caller's reviews with product name and image.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// DeleteReview removes one of the caller's reviews.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	uid, err := parseUID(reviewID, domainerrors.ErrReviewNotFound)
	if err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, userID, uid); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.String("userID", userID), slog.String("reviewID", uid.String()))
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathReviews)

	return nil
}

// ComputeRating returns the product's average rating and review count.
func (srv *reviewService) ComputeRating(ctx context.Context, productID string) (*entity.ProductRating, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	agg, err := srv.reviewRepo.AggregateRating(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}
	rating := entity.NewProductRating(int(agg.Sum), int(agg.Count))

	return &rating, nil
}
