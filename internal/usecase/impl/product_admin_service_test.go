package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productAdminFixtures struct {
	service     usecase.ProductAdminUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockObjectStorage
	pageCache   *mockSvc.MockPageCache
}

func createTestProductAdminService(t *testing.T) productAdminFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	pageCache := mockSvc.NewMockPageCache(t)

	return productAdminFixtures{
		service: NewProductAdminService(ProductAdminServiceParams{
			ProductRepo: productRepo,
			Storage:     storage,
			PageCache:   pageCache,
			Validator:   validation.New(),
			Config:      testConfig(),
			Logger:      testLogger(),
		}),
		productRepo: productRepo,
		storage:     storage,
		pageCache:   pageCache,
	}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Walnut Desk",
		Company:     "Woodworks",
		Description: "a solid walnut desk with two drawers and a cable tray built in",
		Price:       349,
		Featured:    true,
	}
}

func pngUpload() *usecase.ImageUpload {
	return &usecase.ImageUpload{
		FileName:    "desk.png",
		ContentType: "image/png",
		Size:        2048,
		Content:     strings.NewReader("png-bytes"),
	}
}

func TestProductAdminService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	image := pngUpload()

	fx.storage.EXPECT().PutObject(ctx, "desk.png", "image/png", image.Content).Return("https://cdn/uploads/1-desk.png", nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathAdminProducts).Return(nil)

	product, err := fx.service.CreateProduct(ctx, "admin-1", validProductInput(), image)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/uploads/1-desk.png", product.Image)
	assert.Equal(t, "admin-1", product.CreatedBy)
	assert.Equal(t, int64(349), product.Price)
	assert.True(t, product.Featured)
}

func TestProductAdminService_CreateProduct_ValidationMessages(t *testing.T) {
	fx := createTestProductAdminService(t)

	input := &usecase.ProductInput{Name: "X", Company: "", Description: "too short", Price: -1}
	_, err := fx.service.CreateProduct(context.Background(), "admin-1", input, pngUpload())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t,
		"name must be at least 2 characters, Company is required, description must be between 10 and 1000 words, price must be a positive number",
		appErr.Message())
}

func TestProductAdminService_CreateProduct_ImageRules(t *testing.T) {
	fx := createTestProductAdminService(t)

	big := pngUpload()
	big.Size = 2 * validation.MaxImageBytes
	big.ContentType = "application/pdf"

	_, err := fx.service.CreateProduct(context.Background(), "admin-1", validProductInput(), big)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "file size must be less than 1MB, file must be an image", appErr.Message())

	_, err = fx.service.CreateProduct(context.Background(), "admin-1", validProductInput(), nil)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "expected a file", appErr.Message())
}

func TestProductAdminService_CreateProduct_RemovesUploadOnFailure(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	image := pngUpload()

	fx.storage.EXPECT().PutObject(ctx, "desk.png", "image/png", image.Content).Return("https://cdn/uploads/1-desk.png", nil)
	fx.productRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().DeleteObject(ctx, "https://cdn/uploads/1-desk.png").Return(nil)

	_, err := fx.service.CreateProduct(ctx, "admin-1", validProductInput(), image)
	assert.Error(t, err)
}

func TestProductAdminService_UpdateProductImage_ReplacesObject(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 1, UID: uuid.New(), Image: "https://cdn/uploads/old.png"}
	image := pngUpload()

	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.storage.EXPECT().PutObject(ctx, "desk.png", "image/png", image.Content).Return("https://cdn/uploads/new.png", nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
	fx.storage.EXPECT().DeleteObject(ctx, "https://cdn/uploads/old.png").Return(nil)
	fx.pageCache.EXPECT().Revalidate(mock.Anything,
		constants.PathAdminProducts,
		constants.AdminProductEditPath(product.UID.String()),
		constants.ProductPath(product.UID.String()),
	).Return(nil)

	updated, err := fx.service.UpdateProductImage(ctx, product.UID.String(), image)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/uploads/new.png", updated.Image)
}

func TestProductAdminService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	uid := uuid.New()

	fx.productRepo.EXPECT().FindByUID(ctx, uid).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, uid.String(), validProductInput())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductAdminService_DeleteProduct_ImageDeleteIsBestEffort(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 1, UID: uuid.New(), Image: "https://cdn/uploads/old.png"}

	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.UID).Return(nil)
	fx.storage.EXPECT().DeleteObject(ctx, product.Image).Return(errors.New("bucket unavailable"))
	fx.pageCache.EXPECT().Revalidate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := fx.service.DeleteProduct(ctx, product.UID.String())
	assert.NoError(t, err)
}

func TestProductAdminService_RequestUploadURL(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	signed := &service.UploadURL{ObjectName: "uploads/1-desk.png", URL: "https://signed"}

	fx.storage.EXPECT().RequestUploadURL(ctx, "desk.png", "image/png").Return(signed, nil)

	got, err := fx.service.RequestUploadURL(ctx, &usecase.UploadURLInput{FileName: "desk.png", ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, signed, got)

	_, err = fx.service.RequestUploadURL(ctx, &usecase.UploadURLInput{FileName: "notes.txt", ContentType: "text/plain"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
