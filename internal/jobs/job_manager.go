package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordermanager/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	suspensionWatchdogJob *SuspensionWatchdogJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	suspendedOrdersHandler queries.GetSuspendedOrdersQueryHandler,
	watchdogThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		suspensionWatchdogJob: NewSuspensionWatchdogJob(suspendedOrdersHandler, watchdogThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.suspensionWatchdogJob.Start(); err != nil {
		return fmt.Errorf("failed to start suspension watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.suspensionWatchdogJob.Stop()
}
