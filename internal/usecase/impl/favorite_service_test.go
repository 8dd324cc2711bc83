package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	productRepo  *mockRepo.MockProductRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	pageCache    *mockSvc.MockPageCache
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	pageCache := mockSvc.NewMockPageCache(t)

	return favoriteServiceFixtures{
		service: NewFavoriteService(FavoriteServiceParams{
			ProductRepo:  productRepo,
			FavoriteRepo: favoriteRepo,
			PageCache:    pageCache,
			Validator:    validation.New(),
			Logger:       testLogger(),
		}),
		productRepo:  productRepo,
		favoriteRepo: favoriteRepo,
		pageCache:    pageCache,
	}
}

func TestFavoriteService_ToggleFavorite_Add(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 9, UID: uuid.New()}

	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *entity.Favorite) bool {
			return f.UserID == "user-1" && f.ProductID == product.ID
		})).
		Return(nil)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, "/products").Return(nil)

	msg, err := fx.service.ToggleFavorite(ctx, "user-1", &usecase.ToggleFavoriteInput{
		ProductID: product.UID.String(),
		PathName:  "/products",
	})
	require.NoError(t, err)
	assert.Equal(t, "added to favorites", msg)
}

func TestFavoriteService_ToggleFavorite_Remove(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	favoriteUID := uuid.New()

	fx.favoriteRepo.EXPECT().Delete(ctx, "user-1", favoriteUID).Return(nil)

	msg, err := fx.service.ToggleFavorite(ctx, "user-1", &usecase.ToggleFavoriteInput{
		ProductID:  uuid.NewString(),
		FavoriteID: favoriteUID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "removed from favorites", msg)
}

func TestFavoriteService_ToggleFavorite_RemoveForeign(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	favoriteUID := uuid.New()

	fx.favoriteRepo.EXPECT().Delete(ctx, "user-1", favoriteUID).Return(repository.ErrFavoriteNotFound)

	_, err := fx.service.ToggleFavorite(ctx, "user-1", &usecase.ToggleFavoriteInput{
		ProductID:  uuid.NewString(),
		FavoriteID: favoriteUID.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_FindFavoriteID(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 9, UID: uuid.New()}
	favorite := &entity.Favorite{UID: uuid.New()}

	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.favoriteRepo.EXPECT().FindByUserAndProduct(ctx, "user-1", product.ID).Return(favorite, nil)
	fx.favoriteRepo.EXPECT().FindByUserAndProduct(ctx, "user-2", product.ID).Return(nil, repository.ErrFavoriteNotFound)

	id, err := fx.service.FindFavoriteID(ctx, "user-1", product.UID.String())
	require.NoError(t, err)
	assert.Equal(t, favorite.UID.String(), id)

	id, err = fx.service.FindFavoriteID(ctx, "user-2", product.UID.String())
	require.NoError(t, err)
	assert.Empty(t, id)
}
