package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	pageCache   *mockSvc.MockPageCache
	qrService   *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	pageCache := mockSvc.NewMockPageCache(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			PageCache:   pageCache,
			QRService:   qrService,
			Logger:      testLogger(),
		}),
		productRepo: productRepo,
		pageCache:   pageCache,
		qrService:   qrService,
	}
}

func TestCatalogService_GetProduct_CacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 1, UID: uuid.New(), Name: "Lamp"}
	path := constants.ProductPath(product.UID.String())

	fx.pageCache.EXPECT().Get(ctx, path, mock.AnythingOfType("*entity.Product")).Return(false, nil)
	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.pageCache.EXPECT().Set(ctx, path, product).Return(nil)

	got, err := fx.service.GetProduct(ctx, product.UID.String())
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	uid := uuid.New()

	fx.pageCache.EXPECT().
		Get(ctx, constants.ProductPath(uid.String()), mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, _ string, dest any) {
			*dest.(*entity.Product) = entity.Product{UID: uid, Name: "Cached"}
		}).
		Return(true, nil)

	got, err := fx.service.GetProduct(ctx, uid.String())
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Name)
}

func TestCatalogService_GetProduct_CacheErrorFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 1, UID: uuid.New()}

	fx.pageCache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.pageCache.EXPECT().Set(ctx, mock.Anything, product).Return(errors.New("redis down"))

	got, err := fx.service.GetProduct(ctx, product.UID.String())
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.GetProduct(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	uid := uuid.New()
	fx.pageCache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(false, nil)
	fx.productRepo.EXPECT().FindByUID(ctx, uid).Return(nil, repository.ErrProductNotFound)

	_, err = fx.service.GetProduct(ctx, uid.String())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{{Name: "Desk"}}

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Search: "desk", Sort: entity.ProductSortNewest}).
		Return(products, nil)
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Sort: entity.ProductSortPriceDesc}).
		Return(products, nil)

	got, err := fx.service.Search(ctx, &usecase.SearchProductsInput{Search: "desk", Sort: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, products, got)

	_, err = fx.service.Search(ctx, &usecase.SearchProductsInput{Sort: "price_desc"})
	require.NoError(t, err)
}

func TestCatalogService_ListFeatured(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{FeaturedOnly: true}).Return([]*entity.Product{}, nil)

	got, err := fx.service.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogService_ProductQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	uid := uuid.New()

	fx.productRepo.EXPECT().FindByUID(ctx, uid).Return(&entity.Product{UID: uid}, nil)
	fx.qrService.EXPECT().GenerateProductQR(uid).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ProductQR(ctx, uid.String())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
