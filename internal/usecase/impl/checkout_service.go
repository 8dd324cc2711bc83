package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
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

// reconcileBatchSize caps how many pending sessions one pass re-checks.
const reconcileBatchSize = 100

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	sessionRepo repository.CheckoutSessionRepository
	payments    service.PaymentProvider
	publisher   service.EventPublisher
	metrics     service.CheckoutMetrics
	pageCache   service.PageCache
	validator   *validation.Validator
	returnPath  string
	logger      *slog.Logger
	now         func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	SessionRepo repository.CheckoutSessionRepository
	Payments    service.PaymentProvider
	Publisher   service.EventPublisher
	Metrics     service.CheckoutMetrics
	PageCache   service.PageCache
	Validator   *validation.Validator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		cartRepo:    params.CartRepo,
		sessionRepo: params.SessionRepo,
		payments:    params.Payments,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		pageCache:   params.PageCache,
		validator:   params.Validator,
		returnPath:  params.Config.Checkout.ReturnPath,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession opens a provider session for the caller's order and cart and returns its client secret.
func (srv *checkoutService) CreateSession(ctx context.Context, userID string, input *usecase.CreateCheckoutSessionInput) (*usecase.CreateCheckoutSessionOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	orderUID, err := parseUID(input.OrderID, domainerrors.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}
	cartUID, err := parseUID(input.CartID, domainerrors.ErrCartNotFound)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByUID(ctx, orderUID)
	if errors.Is(err, repository.ErrOrderNotFound) || (err == nil && order.UserID != userID) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	cart, err := srv.cartRepo.FindByUID(ctx, cartUID)
	if errors.Is(err, repository.ErrCartNotFound) || (err == nil && cart.UserID != userID) {
		return nil, domainerrors.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	items, err := srv.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}
	lineItems := buildLineItems(items)
	if len(lineItems) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	session, err := srv.payments.CreateCheckoutSession(ctx, &service.CheckoutSessionRequest{
		LineItems: lineItems,
		Metadata: map[string]string{
			service.MetadataOrderID: order.UID.String(),
			service.MetadataCartID:  cart.UID.String(),
		},
		ReturnURL: strings.TrimRight(input.Origin, "/") + srv.returnPath,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session",
			slog.String("orderID", order.UID.String()),
			slog.String("cartID", cart.UID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	record := &entity.CheckoutSession{
		ProviderSessionID: session.ID,
		OrderUID:          order.UID,
		CartUID:           cart.UID,
		UserID:            userID,
		Status:            entity.CheckoutStatusPending,
	}
	if err := srv.sessionRepo.Create(ctx, record); err != nil {
		// Confirmation works from provider metadata alone; only reconciliation loses sight of it.
		srv.log(ctx).Error("Failed to record checkout session",
			slog.String("sessionID", session.ID),
			slog.Any("error", err),
		)
	}

	srv.metrics.SessionCreated()
	srv.publish(ctx, &service.CheckoutEvent{
		Name:      constants.EventCheckoutSessionCreated,
		SessionID: session.ID,
		OrderID:   order.UID.String(),
		CartID:    cart.UID.String(),
		UserID:    userID,
	})

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.ID),
		slog.String("orderID", order.UID.String()),
		slog.Int("lineItems", len(lineItems)),
	)

	return &usecase.CreateCheckoutSessionOutput{
		ClientSecret: session.ClientSecret,
		SessionID:    session.ID,
	}, nil
}

// buildLineItems prices each line at the product's current catalog price.
func buildLineItems(items []*entity.CartItem) []service.CheckoutLineItem {
	lineItems := make([]service.CheckoutLineItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Quantity <= 0 {
			continue
		}
		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:       item.Product.Name,
			Image:      item.Product.Image,
			UnitAmount: item.Product.UnitAmount(),
			Quantity:   int64(item.Quantity),
		})
	}

	return lineItems
}

// ConfirmSession applies a provider session's outcome. Re-invocation is safe.
func (srv *checkoutService) ConfirmSession(ctx context.Context, sessionID string) (*usecase.ConfirmResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		result := &usecase.ConfirmResult{Failure: "missing session id"}
		srv.reportFailure(ctx, &service.CheckoutEvent{}, result.Failure)

		return result, domainerrors.NewValidationError("session_id is required")
	}

	state, err := srv.payments.RetrieveSession(ctx, sessionID)
	if err != nil {
		result := &usecase.ConfirmResult{SessionID: sessionID, Failure: err.Error()}
		srv.reportFailure(ctx, &service.CheckoutEvent{SessionID: sessionID}, "retrieve session: "+err.Error())

		return result, err
	}

	return srv.settle(ctx, state), nil
}

// settle applies a retrieved provider state to the local records.
func (srv *checkoutService) settle(ctx context.Context, state *service.ProviderSessionState) *usecase.ConfirmResult {
	result := &usecase.ConfirmResult{
		SessionID:      state.ID,
		ProviderStatus: state.Status,
	}

	switch state.Status {
	case service.ProviderSessionComplete:
		srv.applyPaid(ctx, state, result)
	case service.ProviderSessionExpired:
		srv.applyAbandoned(ctx, state)
	default:
		srv.metrics.ConfirmationOutcome(service.ConfirmOutcomeOpen)
		srv.log(ctx).Info("Checkout session not complete", slog.String("sessionID", state.ID), slog.String("status", string(state.Status)))
	}

	return result
}

func (srv *checkoutService) applyPaid(ctx context.Context, state *service.ProviderSessionState, result *usecase.ConfirmResult) {
	event := &service.CheckoutEvent{
		SessionID: state.ID,
		OrderID:   state.Metadata[service.MetadataOrderID],
		CartID:    state.Metadata[service.MetadataCartID],
	}

	orderUID, err := uuid.Parse(event.OrderID)
	if err != nil {
		srv.failPermanently(ctx, event, result, "invalid order metadata")

		return
	}
	cartUID, err := uuid.Parse(event.CartID)
	if err != nil {
		srv.failPermanently(ctx, event, result, "invalid cart metadata")

		return
	}

	recorded, err := srv.sessionRepo.FindByProviderID(ctx, state.ID)
	switch {
	case errors.Is(err, repository.ErrCheckoutSessionNotFound):
		// Sessions are recorded best effort at creation.
	case err != nil:
		result.Failure = errors.Wrap(err, "failed to find checkout session").Error()
		srv.reportFailure(ctx, event, result.Failure)

		return
	case recorded.OrderUID != orderUID || recorded.CartUID != cartUID:
		srv.failPermanently(ctx, event, result, "metadata does not match recorded session")

		return
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		cartRepo := repoFactory.NewCartRepository()

		order, err := orderRepo.FindByUID(ctx, orderUID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		event.UserID = order.UserID

		if err := orderRepo.MarkPaid(ctx, orderUID); err != nil {
			return errors.Wrap(err, "failed to mark order paid")
		}

		cart, err := cartRepo.FindByUID(ctx, cartUID)
		switch {
		case errors.Is(err, repository.ErrCartNotFound):
			// Already cleared by an earlier confirmation.
		case err != nil:
			return errors.Wrap(err, "failed to find cart")
		case cart.UserID != order.UserID:
			return domainerrors.ErrCartNotFound.WithDetails("cart does not belong to the order owner")
		default:
			if err := cartRepo.Delete(ctx, cart.ID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to delete cart")
			}
			result.CartCleared = true
		}

		err = repoFactory.NewCheckoutSessionRepository().UpdateStatus(ctx, state.ID, entity.CheckoutStatusPaid)
		if err != nil && !errors.Is(err, repository.ErrCheckoutSessionNotFound) {
			return errors.Wrap(err, "failed to mark checkout session paid")
		}

		return nil
	})
	if err != nil {
		result.CartCleared = false
		if errors.Is(err, domainerrors.ErrOrderNotFound) || errors.Is(err, domainerrors.ErrCartNotFound) {
			srv.failPermanently(ctx, event, result, err.Error())

			return
		}
		result.Failure = err.Error()
		srv.reportFailure(ctx, event, result.Failure)

		return
	}

	result.OrderPaid = true
	srv.metrics.ConfirmationOutcome(service.ConfirmOutcomePaid)
	event.Name = constants.EventCheckoutOrderPaid
	srv.publish(ctx, event)
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathOrders, constants.PathCart)

	srv.log(ctx).Info("Checkout confirmed",
		slog.String("sessionID", state.ID),
		slog.String("orderID", event.OrderID),
		slog.Bool("cartCleared", result.CartCleared),
	)
}

func (srv *checkoutService) applyAbandoned(ctx context.Context, state *service.ProviderSessionState) {
	err := srv.sessionRepo.UpdateStatus(ctx, state.ID, entity.CheckoutStatusAbandoned)
	if err != nil && !errors.Is(err, repository.ErrCheckoutSessionNotFound) {
		srv.log(ctx).Warn("Failed to mark checkout session abandoned", slog.String("sessionID", state.ID), slog.Any("error", err))
	}

	srv.metrics.ConfirmationOutcome(service.ConfirmOutcomeAbandoned)
	srv.publish(ctx, &service.CheckoutEvent{
		Name:      constants.EventCheckoutSessionAbandoned,
		SessionID: state.ID,
		OrderID:   state.Metadata[service.MetadataOrderID],
		CartID:    state.Metadata[service.MetadataCartID],
	})
}

// failPermanently reports a confirmation that can never apply and takes its session out of reconciliation.
func (srv *checkoutService) failPermanently(ctx context.Context, event *service.CheckoutEvent, result *usecase.ConfirmResult, reason string) {
	result.Failure = reason
	srv.reportFailure(ctx, event, reason)

	err := srv.sessionRepo.UpdateStatus(ctx, event.SessionID, entity.CheckoutStatusFailed)
	if err != nil && !errors.Is(err, repository.ErrCheckoutSessionNotFound) {
		srv.log(ctx).Warn("Failed to mark checkout session failed", slog.String("sessionID", event.SessionID), slog.Any("error", err))
	}
}

// reportFailure emits the monitorable signal for a confirmation that did not apply.
func (srv *checkoutService) reportFailure(ctx context.Context, event *service.CheckoutEvent, reason string) {
	srv.log(ctx).Error("Checkout confirmation failed",
		slog.String("sessionID", event.SessionID),
		slog.String("orderID", event.OrderID),
		slog.String("cartID", event.CartID),
		slog.String("reason", reason),
	)

	srv.metrics.ConfirmationOutcome(service.ConfirmOutcomeFailed)
	event.Name = constants.EventCheckoutConfirmationFailed
	event.Reason = reason
	srv.publish(ctx, event)
}

func (srv *checkoutService) publish(ctx context.Context, event *service.CheckoutEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now().UTC()

	if err := srv.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish checkout event",
			slog.String("event", event.Name),
			slog.String("sessionID", event.SessionID),
			slog.Any("error", err),
		)
	}
}

// ReconcilePending re-checks pending sessions older than the threshold.
func (srv *checkoutService) ReconcilePending(ctx context.Context, olderThan time.Duration) (*usecase.ReconcileReport, error) {
	cutoff := srv.now().Add(-olderThan)

	sessions, err := srv.sessionRepo.ListPendingBefore(ctx, cutoff, reconcileBatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending checkout sessions")
	}

	report := &usecase.ReconcileReport{}
	for _, session := range sessions {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}
		report.Checked++

		state, err := srv.payments.RetrieveSession(ctx, session.ProviderSessionID)
		if err != nil {
			report.Failed++
			srv.log(ctx).Warn("Failed to retrieve pending checkout session",
				slog.String("sessionID", session.ProviderSessionID),
				slog.Any("error", err),
			)
			srv.requeue(ctx, session.ProviderSessionID)

			continue
		}

		result := srv.settle(ctx, state)
		switch {
		case result.Failure != "":
			report.Failed++
			srv.requeue(ctx, session.ProviderSessionID)
		case result.OrderPaid:
			report.Paid++
		case state.Status == service.ProviderSessionExpired:
			report.Abandoned++
		default:
			srv.requeue(ctx, session.ProviderSessionID)
		}
	}

	srv.log(ctx).Info("Checkout reconciliation finished",
		slog.Int("checked", report.Checked),
		slog.Int("paid", report.Paid),
		slog.Int("abandoned", report.Abandoned),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// requeue moves a session that stayed pending behind the rest of the backlog.
func (srv *checkoutService) requeue(ctx context.Context, sessionID string) {
	if err := srv.sessionRepo.Requeue(ctx, sessionID); err != nil {
		srv.log(ctx).Warn("Failed to requeue checkout session", slog.String("sessionID", sessionID), slog.Any("error", err))
	}
}
