// Package metrics exposes Prometheus instrumentation for HTTP traffic and checkout.
package metrics

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const defaultNamespace = "storefront"

// Metrics owns a dedicated registry so the process can run several instances in tests.
type Metrics struct {
	namespace string
	registry  *prometheus.Registry

	sessionsCreated prometheus.Counter
	confirmations   *prometheus.CounterVec
}

// NewMetrics registers the checkout collectors together with Go runtime and process collectors
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	registry := prometheus.NewRegistry()

	sessionsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "sessions_created_total",
		Help:      "Total number of payment sessions opened.",
	})
	confirmations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "checkout",
		Name:      "confirmations_total",
		Help:      "Checkout confirmation attempts by outcome.",
	}, []string{"outcome"})

	registry.MustRegister(
		sessionsCreated,
		confirmations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Pre-create outcome series so dashboards see zeros.
	for _, outcome := range []string{
		service.ConfirmOutcomePaid,
		service.ConfirmOutcomeOpen,
		service.ConfirmOutcomeAbandoned,
		service.ConfirmOutcomeFailed,
	} {
		confirmations.WithLabelValues(outcome)
	}

	return &Metrics{
		namespace:       namespace,
		registry:        registry,
		sessionsCreated: sessionsCreated,
		confirmations:   confirmations,
	}
}

// SessionCreated counts a successfully opened payment session
func (m *Metrics) SessionCreated() {
	m.sessionsCreated.Inc()
}

// ConfirmationOutcome counts one confirmation attempt by outcome
func (m *Metrics) ConfirmationOutcome(outcome string) {
	m.confirmations.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latencies
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  m.namespace,
		Subsystem:  "http",
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	})
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Params holds dependencies for metrics, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the metrics from configuration
func New(params Params) *Metrics {
	var namespace string
	if params.Config.Metrics != nil {
		namespace = params.Config.Metrics.Namespace
	}

	return NewMetrics(namespace)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.CheckoutMetrics { return m },
	),
)
