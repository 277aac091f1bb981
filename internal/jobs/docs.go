// Package jobs provides scheduled background tasks for the packing workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the warehouse service.
//
// # Available Jobs
//
// 1. SessionSweeperJob - Runs every minute to close packing sessions that have been idle past their TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeStaleSessionsHandler, sessionTTL, logger)
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
// The sweeper uses the cron expression "* * * * *" which means it runs every
// minute. Stale sessions are detected by their last activity timestamp, so a
// sweep that finds nothing to close is a no-op.
//
// # Error Handling
//
// - Sweeper failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
