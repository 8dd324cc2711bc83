package impl

import (
	"context"
	"testing"
	"time"

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

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     *checkoutService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	sessionRepo *mockRepo.MockCheckoutSessionRepository
	payments    *mockSvc.MockPaymentProvider
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockCheckoutMetrics
	pageCache   *mockSvc.MockPageCache
}

var checkoutNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		sessionRepo: mockRepo.NewMockCheckoutSessionRepository(t),
		payments:    mockSvc.NewMockPaymentProvider(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     mockSvc.NewMockCheckoutMetrics(t),
		pageCache:   mockSvc.NewMockPageCache(t),
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:   fx.txManager,
		OrderRepo:   fx.orderRepo,
		CartRepo:    fx.cartRepo,
		SessionRepo: fx.sessionRepo,
		Payments:    fx.payments,
		Publisher:   fx.publisher,
		Metrics:     fx.metrics,
		PageCache:   fx.pageCache,
		Validator:   validation.New(),
		Config:      testConfig(),
		Logger:      testLogger(),
	})
	fx.service = svc.(*checkoutService)
	fx.service.now = func() time.Time { return checkoutNow }

	return fx
}

func (fx checkoutServiceFixtures) expectTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo).Maybe()
	fx.factory.EXPECT().NewCheckoutSessionRepository().Return(fx.sessionRepo).Maybe()
}

func (fx checkoutServiceFixtures) expectEvent(name string) {
	fx.publisher.EXPECT().
		PublishCheckoutEvent(mock.Anything, mock.MatchedBy(func(e *service.CheckoutEvent) bool {
			return e.Name == name
		})).
		Return(nil)
}

func checkoutFixtureData(userID string) (*entity.Order, *entity.Cart) {
	order := &entity.Order{ID: 11, UID: uuid.New(), UserID: userID}
	cart := testCart(userID)

	return order, cart
}

func TestCheckoutService_CreateSession_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")
	lamp := &entity.Product{ID: 1, Name: "Lamp", Image: "https://cdn/lamp.png", Price: 25}
	desk := &entity.Product{ID: 2, Name: "Desk", Image: "https://cdn/desk.png", Price: 140}

	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return([]*entity.CartItem{
		{Product: lamp, Quantity: 2},
		{Product: desk, Quantity: 1},
	}, nil)
	fx.payments.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CheckoutSessionRequest")).
		RunAndReturn(func(_ context.Context, req *service.CheckoutSessionRequest) (*service.ProviderSession, error) {
			require.Len(t, req.LineItems, 2)
			assert.Equal(t, service.CheckoutLineItem{Name: "Lamp", Image: "https://cdn/lamp.png", UnitAmount: 2500, Quantity: 2}, req.LineItems[0])
			assert.Equal(t, int64(14000), req.LineItems[1].UnitAmount)
			assert.Equal(t, order.UID.String(), req.Metadata[service.MetadataOrderID])
			assert.Equal(t, cart.UID.String(), req.Metadata[service.MetadataCartID])
			assert.Equal(t, "https://shop.example.com/api/confirm?session_id={CHECKOUT_SESSION_ID}", req.ReturnURL)

			return &service.ProviderSession{ID: "cs_1", ClientSecret: "secret_1"}, nil
		})
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.ProviderSessionID == "cs_1" && s.Status == entity.CheckoutStatusPending && s.OrderUID == order.UID
		})).
		Return(nil)
	fx.metrics.EXPECT().SessionCreated().Return()
	fx.expectEvent(constants.EventCheckoutSessionCreated)

	out, err := fx.service.CreateSession(ctx, "user-1", &usecase.CreateCheckoutSessionInput{
		OrderID: order.UID.String(),
		CartID:  cart.UID.String(),
		Origin:  "https://shop.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "secret_1", out.ClientSecret)
	assert.Equal(t, "cs_1", out.SessionID)
}

func TestCheckoutService_CreateSession_ForeignOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("someone-else")

	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)

	out, err := fx.service.CreateSession(ctx, "user-1", &usecase.CreateCheckoutSessionInput{
		OrderID: order.UID.String(),
		CartID:  cart.UID.String(),
		Origin:  "https://shop.example.com",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_CreateSession_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return(nil, nil)

	_, err := fx.service.CreateSession(ctx, "user-1", &usecase.CreateCheckoutSessionInput{
		OrderID: order.UID.String(),
		CartID:  cart.UID.String(),
		Origin:  "https://shop.example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_CreateSession_ProviderTimeout(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().ListItems(ctx, cart.ID).Return([]*entity.CartItem{
		{Product: &entity.Product{Name: "Lamp", Price: 25}, Quantity: 1},
	}, nil)
	fx.payments.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(nil, domainerrors.ErrProviderTimeout)

	_, err := fx.service.CreateSession(ctx, "user-1", &usecase.CreateCheckoutSessionInput{
		OrderID: order.UID.String(),
		CartID:  cart.UID.String(),
		Origin:  "https://shop.example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProviderTimeout)
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateSession_MissingIDs(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.CreateSession(context.Background(), "user-1", &usecase.CreateCheckoutSessionInput{Origin: "https://shop.example.com"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Order ID cannot be empty, Cart ID cannot be empty", appErr.Message())
}

func completeSession(order *entity.Order, cart *entity.Cart) *service.ProviderSessionState {
	return &service.ProviderSessionState{
		ID:     "cs_1",
		Status: service.ProviderSessionComplete,
		Metadata: map[string]string{
			service.MetadataOrderID: order.UID.String(),
			service.MetadataCartID:  cart.UID.String(),
		},
	}
}

func recordedSession(id string, order *entity.Order, cart *entity.Cart) *entity.CheckoutSession {
	return &entity.CheckoutSession{
		ProviderSessionID: id,
		OrderUID:          order.UID,
		CartUID:           cart.UID,
		UserID:            order.UserID,
		Status:            entity.CheckoutStatusPending,
	}
}

func TestCheckoutService_ConfirmSession_CompleteTwice(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	fx.expectTx()
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(completeSession(order, cart), nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_1").Return(recordedSession("cs_1", order, cart), nil)
	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, order.UID).Return(nil).Twice()
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil).Once()
	fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil).Once()
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(nil, repository.ErrCartNotFound).Once()
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusPaid).Return(nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomePaid).Return().Twice()
	fx.expectEvent(constants.EventCheckoutOrderPaid)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathOrders, constants.PathCart).Return(nil)

	first, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.True(t, first.OrderPaid)
	assert.True(t, first.CartCleared)
	assert.Empty(t, first.Failure)

	second, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.True(t, second.OrderPaid)
	assert.False(t, second.CartCleared)
	assert.Empty(t, second.Failure)
}

func TestCheckoutService_ConfirmSession_TamperedMetadata(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(&service.ProviderSessionState{
		ID:       "cs_1",
		Status:   service.ProviderSessionComplete,
		Metadata: map[string]string{service.MetadataOrderID: "not-a-uuid"},
	}, nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.publisher.EXPECT().
		PublishCheckoutEvent(ctx, mock.MatchedBy(func(e *service.CheckoutEvent) bool {
			return e.Name == constants.EventCheckoutConfirmationFailed &&
				e.SessionID == "cs_1" &&
				e.Reason == "invalid order metadata" &&
				e.OccurredAt.Equal(checkoutNow)
		})).
		Return(nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusFailed).Return(nil)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, result.OrderPaid)
	assert.Equal(t, "invalid order metadata", result.Failure)
}

func TestCheckoutService_ConfirmSession_MetadataDoesNotMatchRecord(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")
	otherOrder, _ := checkoutFixtureData("user-1")

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(completeSession(order, cart), nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_1").Return(recordedSession("cs_1", otherOrder, cart), nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.expectEvent(constants.EventCheckoutConfirmationFailed)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusFailed).Return(nil)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, result.OrderPaid)
	assert.Equal(t, "metadata does not match recorded session", result.Failure)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_ConfirmSession_UnrecordedSessionStillApplies(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	fx.expectTx()
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(completeSession(order, cart), nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_1").Return(nil, repository.ErrCheckoutSessionNotFound)
	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, order.UID).Return(nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusPaid).Return(repository.ErrCheckoutSessionNotFound)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomePaid).Return()
	fx.expectEvent(constants.EventCheckoutOrderPaid)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathOrders, constants.PathCart).Return(nil)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.True(t, result.OrderPaid)
	assert.True(t, result.CartCleared)
}

func TestCheckoutService_ConfirmSession_SessionLookupErrorLeavesPending(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(completeSession(order, cart), nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_1").Return(nil, errors.New("connection reset"))
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.expectEvent(constants.EventCheckoutConfirmationFailed)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, result.OrderPaid)
	assert.Contains(t, result.Failure, "connection reset")
	fx.sessionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_ConfirmSession_CartOwnedByAnotherUser(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, _ := checkoutFixtureData("user-1")
	foreignCart := testCart("user-2")

	fx.expectTx()
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(completeSession(order, foreignCart), nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_1").Return(recordedSession("cs_1", order, foreignCart), nil)
	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, order.UID).Return(nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, foreignCart.UID).Return(foreignCart, nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.expectEvent(constants.EventCheckoutConfirmationFailed)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusFailed).Return(nil)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, result.OrderPaid)
	assert.False(t, result.CartCleared)
	assert.NotEmpty(t, result.Failure)
	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCheckoutService_ConfirmSession_Expired(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(&service.ProviderSessionState{
		ID:     "cs_1",
		Status: service.ProviderSessionExpired,
	}, nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_1", entity.CheckoutStatusAbandoned).Return(nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeAbandoned).Return()
	fx.expectEvent(constants.EventCheckoutSessionAbandoned)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, service.ProviderSessionExpired, result.ProviderStatus)
	assert.False(t, result.OrderPaid)
}

func TestCheckoutService_ConfirmSession_Open(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(&service.ProviderSessionState{
		ID:     "cs_1",
		Status: service.ProviderSessionOpen,
	}, nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeOpen).Return()

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, result.OrderPaid)
	assert.Empty(t, result.Failure)
}

func TestCheckoutService_ConfirmSession_ProviderError(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_1").Return(nil, domainerrors.ErrProviderFailed)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.expectEvent(constants.EventCheckoutConfirmationFailed)

	result, err := fx.service.ConfirmSession(ctx, "cs_1")
	assert.ErrorIs(t, err, domainerrors.ErrProviderFailed)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Failure)
}

func TestCheckoutService_ReconcilePending(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")

	pending := []*entity.CheckoutSession{
		{ProviderSessionID: "cs_paid"},
		{ProviderSessionID: "cs_expired"},
		{ProviderSessionID: "cs_unreachable"},
	}
	paidState := completeSession(order, cart)
	paidState.ID = "cs_paid"

	fx.expectTx()
	fx.sessionRepo.EXPECT().ListPendingBefore(ctx, checkoutNow.Add(-30*time.Minute), reconcileBatchSize).Return(pending, nil)
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_paid").Return(paidState, nil)
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_expired").Return(&service.ProviderSessionState{ID: "cs_expired", Status: service.ProviderSessionExpired}, nil)
	fx.payments.EXPECT().RetrieveSession(ctx, "cs_unreachable").Return(nil, domainerrors.ErrProviderTimeout)
	fx.sessionRepo.EXPECT().Requeue(ctx, "cs_unreachable").Return(nil)

	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_paid").Return(recordedSession("cs_paid", order, cart), nil)
	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, order.UID).Return(nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_paid", entity.CheckoutStatusPaid).Return(nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_expired", entity.CheckoutStatusAbandoned).Return(nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomePaid).Return()
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeAbandoned).Return()
	fx.expectEvent(constants.EventCheckoutOrderPaid)
	fx.expectEvent(constants.EventCheckoutSessionAbandoned)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathOrders, constants.PathCart).Return(nil)

	report, err := fx.service.ReconcilePending(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReconcileReport{Checked: 3, Paid: 1, Abandoned: 1, Failed: 1}, report)
}

func TestCheckoutService_ReconcilePending_FailedSessionDoesNotBlockLaterOnes(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order, cart := checkoutFixtureData("user-1")
	goneOrder, goneCart := checkoutFixtureData("user-1")

	pending := []*entity.CheckoutSession{
		{ProviderSessionID: "cs_gone"},
		{ProviderSessionID: "cs_open"},
		{ProviderSessionID: "cs_paid"},
	}
	goneState := completeSession(goneOrder, goneCart)
	goneState.ID = "cs_gone"
	paidState := completeSession(order, cart)
	paidState.ID = "cs_paid"

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Twice()
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo)
	fx.factory.EXPECT().NewCheckoutSessionRepository().Return(fx.sessionRepo)

	fx.sessionRepo.EXPECT().ListPendingBefore(ctx, checkoutNow.Add(-time.Hour), reconcileBatchSize).Return(pending, nil)

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_gone").Return(goneState, nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_gone").Return(recordedSession("cs_gone", goneOrder, goneCart), nil)
	fx.orderRepo.EXPECT().FindByUID(ctx, goneOrder.UID).Return(nil, repository.ErrOrderNotFound)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_gone", entity.CheckoutStatusFailed).Return(nil)
	fx.sessionRepo.EXPECT().Requeue(ctx, "cs_gone").Return(nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeFailed).Return()
	fx.expectEvent(constants.EventCheckoutConfirmationFailed)

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_open").Return(&service.ProviderSessionState{ID: "cs_open", Status: service.ProviderSessionOpen}, nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomeOpen).Return()
	fx.sessionRepo.EXPECT().Requeue(ctx, "cs_open").Return(nil)

	fx.payments.EXPECT().RetrieveSession(ctx, "cs_paid").Return(paidState, nil)
	fx.sessionRepo.EXPECT().FindByProviderID(ctx, "cs_paid").Return(recordedSession("cs_paid", order, cart), nil)
	fx.orderRepo.EXPECT().FindByUID(ctx, order.UID).Return(order, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, order.UID).Return(nil)
	fx.cartRepo.EXPECT().FindByUID(ctx, cart.UID).Return(cart, nil)
	fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil)
	fx.sessionRepo.EXPECT().UpdateStatus(ctx, "cs_paid", entity.CheckoutStatusPaid).Return(nil)
	fx.metrics.EXPECT().ConfirmationOutcome(service.ConfirmOutcomePaid).Return()
	fx.expectEvent(constants.EventCheckoutOrderPaid)
	fx.pageCache.EXPECT().Revalidate(mock.Anything, constants.PathOrders, constants.PathCart).Return(nil)

	report, err := fx.service.ReconcilePending(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReconcileReport{Checked: 3, Paid: 1, Failed: 1}, report)
}
