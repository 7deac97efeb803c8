package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordermanager/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SuspensionWatchdogJob periodically surfaces orders suspended beyond a
// threshold. It observes and logs only; cancelling a stuck submission is the
// external scheduler's call, never this core's.
type SuspensionWatchdogJob struct {
	handler   queries.GetSuspendedOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSuspensionWatchdogJob creates a watchdog over the suspended-orders
// query. The threshold is the suspension age above which an order is
// reported.
func NewSuspensionWatchdogJob(
	handler queries.GetSuspendedOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *SuspensionWatchdogJob {
	return &SuspensionWatchdogJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "suspension_watchdog_job"),
	}
}

// Start begins the watchdog to run every minute.
func (j *SuspensionWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		suspended, err := j.handler.Handle(ctx, queries.NewGetSuspendedOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Suspension watchdog sweep failed", "error", err)
			return
		}

		now := time.Now().UTC()
		for _, order := range suspended {
			age := order.SuspendedFor(now)
			if age < j.threshold {
				continue
			}
			j.logger.WarnContext(ctx, "Order suspended beyond threshold",
				"orderId", order.OrderID,
				"userId", order.UserID,
				"orderState", order.State,
				"suspendedFor", age.Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Suspension watchdog started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *SuspensionWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Suspension watchdog stopped")
}
