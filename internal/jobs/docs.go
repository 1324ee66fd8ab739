// Package jobs provides scheduled background tasks for the pharmacy service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment workflow.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every five seconds to hand pending outbox
// notifications to the external delivery mechanism
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
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
// Dispatch failures are logged and the affected outbox rows stay pending, so
// the next tick retries them. Failed job starts report an error to the caller.
package jobs
