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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	pageCache service.PageCache
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	PageCache service.PageCache
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		pageCache: params.PageCache,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder snapshots the caller's cart into a new unpaid order.
func (srv *orderService) CreateOrder(ctx context.Context, userID, email string) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.NewCartRepository().FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		order = &entity.Order{
			UID:        uuid.New(),
			UserID:     userID,
			Email:      email,
			Products:   cart.NumItems,
			OrderTotal: cart.OrderTotal,
			Tax:        cart.Tax,
			Shipping:   cart.ShippingCharge(),
		}

		return errors.Wrap(repoFactory.NewOrderRepository().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("userID", userID),
		slog.String("orderID", order.UID.String()),
		slog.String("orderTotal", order.OrderTotal.StringFixed(2)),
	)
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathOrders)

	return order, nil
}

// ListOrders returns the caller's paid orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every paid order, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListPaid(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}
