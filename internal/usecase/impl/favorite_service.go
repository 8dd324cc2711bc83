package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
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

const (
	favoriteAddedMessage   = "added to favorites"
	favoriteRemovedMessage = "removed from favorites"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	productRepo  repository.ProductRepository
	favoriteRepo repository.FavoriteRepository
	pageCache    service.PageCache
	validator    *validation.Validator
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	FavoriteRepo repository.FavoriteRepository
	PageCache    service.PageCache
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		productRepo:  params.ProductRepo,
		favoriteRepo: params.FavoriteRepo,
		pageCache:    params.PageCache,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite adds or removes a favorite and returns a confirmation message.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID string, input *usecase.ToggleFavoriteInput) (string, error) {
	if err := srv.validator.Struct(input); err != nil {
		return "", err
	}

	var message string
	if input.FavoriteID != "" {
		uid, err := parseUID(input.FavoriteID, domainerrors.ErrFavoriteNotFound)
		if err != nil {
			return "", err
		}
		if err := srv.favoriteRepo.Delete(ctx, userID, uid); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return "", domainerrors.ErrFavoriteNotFound
			}

			return "", errors.Wrap(err, "failed to delete favorite")
		}
		message = favoriteRemovedMessage
	} else {
		product, err := srv.findProduct(ctx, input.ProductID)
		if err != nil {
			return "", err
		}
		favorite := &entity.Favorite{
			UID:       uuid.New(),
			UserID:    userID,
			ProductID: product.ID,
		}
		// A concurrent double add leaves the single existing favorite in place.
		if err := srv.favoriteRepo.Create(ctx, favorite); err != nil && !errors.Is(err, repository.ErrDuplicateFavorite) {
			return "", errors.Wrap(err, "failed to create favorite")
		}
		message = favoriteAddedMessage
	}

	srv.log(ctx).Info("Favorite toggled", slog.String("userID", userID), slog.String("productID", input.ProductID), slog.String("result", message))
	if input.PathName != "" {
		revalidate(ctx, srv.pageCache, srv.log(ctx), input.PathName)
	}

	return message, nil
}

func (srv *favoriteService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
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

// FindFavoriteID returns the caller's favorite id for a product, or "" if none.
func (srv *favoriteService) FindFavoriteID(ctx context.Context, userID, productID string) (string, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return "", err
	}

	favorite, err := srv.favoriteRepo.FindByUserAndProduct(ctx, userID, product.ID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find favorite")
	}

	return favorite.UID.String(), nil
}

// ListUserFavorites returns the caller's favorites with their products.
func (srv *favoriteService) ListUserFavorites(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
