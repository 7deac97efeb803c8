// Package jobs provides scheduled background tasks for the order workflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(suspendedOrdersHandler, threshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is SuspensionWatchdogJob, which sweeps once a minute and
// logs every order suspended beyond the configured threshold. It deliberately
// does not cancel anything: timeout policy belongs to the external scheduler.
package jobs
