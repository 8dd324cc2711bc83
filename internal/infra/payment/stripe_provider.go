// Package payment adapts the Stripe embedded checkout to the PaymentProvider contract.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/fx"
)

const (
	defaultBreakerMinRequests  = 5
	defaultBreakerFailureRatio = 0.6
	defaultBreakerOpenTimeout  = 30 * time.Second
)

type stripeProvider struct {
	cfg     config.StripeConfig
	breaker *gobreaker.CircuitBreaker[*stripe.CheckoutSession]
	logger  *slog.Logger

	mu     sync.Mutex
	client *client.API
}

// Params holds dependencies for the payment provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Stripe payment provider. The API client is built on first use
// so a missing secret only fails checkout calls, not start-up.
func New(params Params) service.PaymentProvider {
	var cfg config.StripeConfig
	if params.Config.Stripe != nil {
		cfg = *params.Config.Stripe
	}

	return NewStripeProvider(cfg, params.Logger)
}

// NewStripeProvider creates the provider from explicit settings
func NewStripeProvider(cfg config.StripeConfig, logger *slog.Logger) service.PaymentProvider {
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyUSD)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &stripeProvider{
		cfg:     cfg,
		breaker: newBreaker(cfg.Breaker, logger),
		logger:  logger,
	}
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*stripe.CheckoutSession] {
	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = defaultBreakerMinRequests
	}
	failureRatio := cfg.FailureRatio
	if failureRatio <= 0 {
		failureRatio = defaultBreakerFailureRatio
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpenTimeout
	}

	var st gobreaker.Settings
	st.Name = "stripe"
	st.Timeout = openTimeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		ratio := float64(counts.TotalFailures) / float64(counts.Requests)

		return counts.Requests >= minRequests && ratio >= failureRatio
	}
	// Rejected requests say nothing about the provider's health.
	st.IsSuccessful = func(err error) bool {
		if err == nil {
			return true
		}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return stripeErr.HTTPStatusCode >= http.StatusBadRequest &&
				stripeErr.HTTPStatusCode < http.StatusInternalServerError &&
				stripeErr.HTTPStatusCode != http.StatusTooManyRequests
		}

		return false
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("Circuit breaker state changed",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	}

	return gobreaker.NewCircuitBreaker[*stripe.CheckoutSession](st)
}

// api returns the lazily constructed client, reused across calls.
func (p *stripeProvider) api() (*client.API, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.cfg.SecretKey == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("stripe secret key is not set")
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: p.cfg.Timeout},
		LeveledLogger:     &slogLeveledLogger{logger: p.logger},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if p.cfg.APIBaseURL != "" {
		backendConfig.URL = stripe.String(p.cfg.APIBaseURL)
	}

	api := &client.API{}
	api.Init(p.cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})
	p.client = api

	return api, nil
}

// CreateCheckoutSession opens an embedded payment session
func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, req *service.CheckoutSessionRequest) (*service.ProviderSession, error) {
	api, err := p.api()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		UIMode:    stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		ReturnURL: stripe.String(req.ReturnURL),
		Metadata:  req.Metadata,
	}
	params.Context = ctx
	for _, item := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = []*string{stripe.String(item.Image)}
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(p.cfg.Currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
		})
	}

	session, err := p.breaker.Execute(func() (*stripe.CheckoutSession, error) {
		return api.CheckoutSessions.New(params)
	})
	if err != nil {
		return nil, p.mapError(ctx, "create checkout session", err)
	}

	return &service.ProviderSession{
		ID:           session.ID,
		ClientSecret: session.ClientSecret,
	}, nil
}

// RetrieveSession fetches the status and metadata of a session
func (p *stripeProvider) RetrieveSession(ctx context.Context, sessionID string) (*service.ProviderSessionState, error) {
	api, err := p.api()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := p.breaker.Execute(func() (*stripe.CheckoutSession, error) {
		return api.CheckoutSessions.Get(sessionID, params)
	})
	if err != nil {
		return nil, p.mapError(ctx, "retrieve checkout session", err)
	}

	return &service.ProviderSessionState{
		ID:       session.ID,
		Status:   sessionStatus(session.Status),
		Metadata: session.Metadata,
	}, nil
}

func sessionStatus(status stripe.CheckoutSessionStatus) service.ProviderSessionStatus {
	switch status {
	case stripe.CheckoutSessionStatusComplete:
		return service.ProviderSessionComplete
	case stripe.CheckoutSessionStatusExpired:
		return service.ProviderSessionExpired
	default:
		return service.ProviderSessionOpen
	}
}

// mapError converts transport, breaker and API failures into domain errors.
func (p *stripeProvider) mapError(ctx context.Context, op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		p.logger.Error("Payment provider timed out", slog.String("op", op), slog.Any("error", err))

		return domainerrors.ErrProviderTimeout.WithDetails(op)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		p.logger.Warn("Payment provider circuit open", slog.String("op", op))

		return domainerrors.ErrProviderFailed.WithDetails(op + ": circuit open")
	default:
		p.logger.Error("Payment provider request failed", slog.String("op", op), slog.Any("error", err))

		return domainerrors.ErrProviderFailed.WithDetails(op + ": " + err.Error())
	}
}

// slogLeveledLogger routes the Stripe client's diagnostics through slog.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug("stripe", slog.String("msg", fmt.Sprintf(format, v...)))
}

func (l *slogLeveledLogger) Infof(format string, v ...interface{}) {
	l.logger.Debug("stripe", slog.String("msg", fmt.Sprintf(format, v...)))
}

func (l *slogLeveledLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn("stripe", slog.String("msg", fmt.Sprintf(format, v...)))
}

func (l *slogLeveledLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error("stripe", slog.String("msg", fmt.Sprintf(format, v...)))
}
