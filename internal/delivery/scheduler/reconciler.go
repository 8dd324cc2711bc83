// Package scheduler runs the periodic checkout reconciliation job.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const jobName = "checkout-reconcile"

type reconciler struct {
	scheduler  gocron.Scheduler
	checkoutUC usecase.CheckoutUsecase
	every      time.Duration
	olderThan  time.Duration
	logger     *slog.Logger
}

// Params holds dependencies for the reconciler, injected by Fx
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	CheckoutUC usecase.CheckoutUsecase
}

// NewReconciler creates the scheduled job that settles stale pending checkout sessions
func NewReconciler(params Params) (delivery.Delivery, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, errors.Wrap(err, "create scheduler")
	}

	cfg := params.Config.Checkout
	r := &reconciler{
		scheduler:  scheduler,
		checkoutUC: params.CheckoutUC,
		every:      cfg.ReconcileEvery,
		olderThan:  cfg.ReconcileAfter,
		logger:     params.Logger.With(slog.String("job", jobName)),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.logger.Info("Stopping checkout reconciler")

			return errors.WithStack(r.scheduler.Shutdown())
		},
	})

	return r, nil
}

// Serve registers the job and starts the scheduler. It returns immediately.
func (r *reconciler) Serve(ctx context.Context) error {
	_, err := r.scheduler.NewJob(
		gocron.DurationJob(r.every),
		gocron.NewTask(r.run, ctx),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errors.Wrap(err, "register reconcile job")
	}

	r.logger.Info("Starting checkout reconciler",
		slog.Duration("every", r.every),
		slog.Duration("older_than", r.olderThan),
	)
	r.scheduler.Start()

	return nil
}

func (r *reconciler) run(ctx context.Context) {
	requestID := uuid.New().String()
	logger := r.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	report, err := r.checkoutUC.ReconcilePending(ctx, r.olderThan)
	if err != nil {
		logger.Error("Checkout reconciliation failed", slog.Any("error", err))

		return
	}

	logger.Info("Checkout reconciliation finished",
		slog.Int("checked", report.Checked),
		slog.Int("paid", report.Paid),
		slog.Int("abandoned", report.Abandoned),
		slog.Int("failed", report.Failed),
	)
}
