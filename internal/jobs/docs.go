// Package jobs provides scheduled background tasks for the shipping
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path should not pay for.
//
// # Available Jobs
//
// 1. AccountCleanupJob - Runs hourly to purge expired one-time codes and
// remove accounts that never completed email verification
// 2. TokenCleanupJob - Runs hourly to delete expired bearer tokens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(cleanupHandler, tokenStore, logger)
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
// Job failures are logged and the schedule keeps running; a failed tick
// is retried naturally on the next one. Failed job starts will stop any
// already running jobs.
package jobs
