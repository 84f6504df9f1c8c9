// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the track service.
//
// # Available Jobs
//
// 1. DelayMonitorJob - Runs every minute to record delay events for hub
// transits past their estimated delivery time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recordHubDelaysHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The delay monitor uses the cron expression "0 * * * * *" which means it
// runs at the top of every minute. Delay events are recorded at most once
// per segment, so the scan stays idempotent across runs.
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
