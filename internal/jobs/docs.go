// Package jobs provides scheduled background tasks for the checkout system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the checkout service.
//
// # Available Jobs
//
// 1. AbandonedCheckoutJob - Periodically cancels checkouts idle beyond the configured window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleHandler, "0 */5 * * * *", 2*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// takes the service down.
package jobs
