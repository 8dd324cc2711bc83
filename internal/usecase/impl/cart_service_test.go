package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Cart: &config.CartConfig{TaxRate: "0.1", Shipping: "5"},
		Checkout: &config.CheckoutConfig{
			ReturnPath: "/api/confirm?session_id={CHECKOUT_SESSION_ID}",
		},
	}
}

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	pageCache   *mockSvc.MockPageCache
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	pageCache := mockSvc.NewMockPageCache(t)

	service, err := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		PageCache: pageCache,
		Validator: validation.New(),
		Config:    testConfig(),
		Logger:    testLogger(),
	})
	require.NoError(t, err)

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pageCache:   pageCache,
	}
}

// expectTx runs the transaction body against the fixture's repository factory.
func (fx cartServiceFixtures) expectTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo).Maybe()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo).Maybe()
}

func testCart(userID string) *entity.Cart {
	return &entity.Cart{
		ID:         7,
		UID:        uuid.New(),
		UserID:     userID,
		TaxRate:    decimal.RequireFromString("0.1"),
		Shipping:   decimal.NewFromInt(5),
		CartTotal:  decimal.Zero,
		Tax:        decimal.Zero,
		OrderTotal: decimal.Zero,
	}
}

func TestCartService_NewCartService_InvalidPricing(t *testing.T) {
	cfg := testConfig()
	cfg.Cart.TaxRate = "ten percent"

	_, err := NewCartService(CartServiceParams{Config: cfg, Validator: validation.New(), Logger: testLogger()})
	assert.Error(t, err)
}

func TestCartService_GetOrCreateCart_CreatesWithDefaults(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.GetOrCreateCart(ctx, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Equal(t, "0.1", cart.TaxRate.String())
	assert.Equal(t, "5", cart.Shipping.String())
	assert.Equal(t, 0, cart.NumItems)
	assert.True(t, cart.OrderTotal.IsZero())
	assert.NotEqual(t, uuid.Nil, cart.UID)
}

func TestCartService_GetOrCreateCart_FailIfMissing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetOrCreateCart(ctx, "user-1", true)
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_GetOrCreateCart_ConcurrentCreate(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	existing := testCart("user-1")

	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCartNotFound).Once()
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(repository.ErrDuplicateCart)
	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(existing, nil).Once()

	cart, err := fx.service.GetOrCreateCart(ctx, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, existing, cart)
}

func TestCartService_CountItems(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cart := testCart("user-1")
	cart.NumItems = 4

	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(cart, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-2").Return(nil, repository.ErrCartNotFound)

	count, err := fx.service.CountItems(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = fx.service.CountItems(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCartService_AddItem_MergesIntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cart := testCart("user-1")
	product := &entity.Product{ID: 3, UID: uuid.New(), Name: "Lamp", Price: 10}

	fx.expectTx()
	fx.productRepo.EXPECT().FindByUID(ctx, product.UID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(cart, nil)
	fx.cartRepo.EXPECT().UpsertItem(ctx, cart.ID, product.ID, 3).Return(nil)
	fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return([]*entity.CartItem{
		{ID: 1, UID: uuid.New(), CartID: cart.ID, ProductID: product.ID, Product: product, Quantity: 5},
	}, nil)
	fx.cartRepo.EXPECT().UpdateTotals(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathCart).Return(nil)

	updated, err := fx.service.AddItem(ctx, "user-1", &usecase.AddCartItemInput{
		ProductID: product.UID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, 5, updated.Items[0].Quantity)
	assert.Equal(t, 5, updated.NumItems)
	assert.Equal(t, "50", updated.CartTotal.String())
	assert.Equal(t, "5", updated.Tax.String())
	assert.Equal(t, "60", updated.OrderTotal.String())
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	cart, err := fx.service.AddItem(context.Background(), "user-1", &usecase.AddCartItemInput{
		ProductID: uuid.NewString(),
		Quantity:  0,
	})
	assert.Nil(t, cart)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "amount must be at least 1", appErr.Message())
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	productUID := uuid.New()

	fx.expectTx()
	fx.productRepo.EXPECT().FindByUID(ctx, productUID).Return(nil, repository.ErrProductNotFound)

	cart, err := fx.service.AddItem(ctx, "user-1", &usecase.AddCartItemInput{ProductID: productUID.String(), Quantity: 1})
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveItem_ForeignItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cart := testCart("user-1")
	foreignItem := uuid.New()

	fx.expectTx()
	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(cart, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, cart.ID, foreignItem).Return(repository.ErrCartItemNotFound)

	updated, err := fx.service.RemoveItem(ctx, "user-1", foreignItem)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	fx.cartRepo.AssertNotCalled(t, "UpdateTotals", mock.Anything, mock.Anything)
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.expectTx()
	fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.RemoveItem(ctx, "user-1", uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_SetItemQuantity(t *testing.T) {
	product := &entity.Product{ID: 3, UID: uuid.New(), Price: 10}

	t.Run("overwrites quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		cart := testCart("user-1")
		itemID := uuid.New()

		fx.expectTx()
		fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(cart, nil)
		fx.cartRepo.EXPECT().UpdateItemQuantity(ctx, cart.ID, itemID, 2).Return(nil)
		fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return([]*entity.CartItem{
			{UID: itemID, Product: product, Quantity: 2},
		}, nil)
		fx.cartRepo.EXPECT().UpdateTotals(ctx, cart).Return(nil)
		fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathCart).Return(nil)

		updated, err := fx.service.SetItemQuantity(ctx, "user-1", itemID, &usecase.SetCartItemQuantityInput{Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.NumItems)
		assert.Equal(t, "27", updated.OrderTotal.String())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		cart := testCart("user-1")
		itemID := uuid.New()

		fx.expectTx()
		fx.cartRepo.EXPECT().FindByUserID(ctx, "user-1").Return(cart, nil)
		fx.cartRepo.EXPECT().DeleteItem(ctx, cart.ID, itemID).Return(nil)
		fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return([]*entity.CartItem{}, nil)
		fx.cartRepo.EXPECT().UpdateTotals(ctx, cart).Return(nil)
		fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathCart).Return(nil)

		updated, err := fx.service.SetItemQuantity(ctx, "user-1", itemID, &usecase.SetCartItemQuantityInput{Quantity: 0})
		require.NoError(t, err)
		assert.True(t, updated.IsEmpty())
		assert.True(t, updated.OrderTotal.IsZero())
		assert.True(t, updated.Tax.IsZero())
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.SetItemQuantity(context.Background(), "user-1", uuid.New(), &usecase.SetCartItemQuantityInput{Quantity: -1})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCartService_Recompute_Idempotent(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cart := testCart("user-1")
	items := []*entity.CartItem{
		{Product: &entity.Product{Price: 12}, Quantity: 2},
		{Product: &entity.Product{Price: 3}, Quantity: 1},
	}

	fx.expectTx()
	fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return(items, nil)
	fx.cartRepo.EXPECT().UpdateTotals(ctx, cart).Return(nil)

	_, first, err := fx.service.Recompute(ctx, cart)
	require.NoError(t, err)
	snapshot := *first

	_, second, err := fx.service.Recompute(ctx, cart)
	require.NoError(t, err)

	assert.Equal(t, snapshot.NumItems, second.NumItems)
	assert.True(t, snapshot.CartTotal.Equal(second.CartTotal))
	assert.True(t, snapshot.Tax.Equal(second.Tax))
	assert.True(t, snapshot.OrderTotal.Equal(second.OrderTotal))
	assert.Equal(t, "32.7", second.OrderTotal.String())
}
