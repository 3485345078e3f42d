// Package jobs provides scheduled background tasks for the tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for shipment monitoring.
//
// # Available Jobs
//
// 1. ExceptionMonitorJob - Runs every minute to surface shipment units
// stuck in the EXCEPTION status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listUnitsByStatusHandler, logger)
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
// The exception monitor uses the cron expression "0 * * * * *", firing at
// the top of every minute. Exception states change slowly, so a minute of
// latency is acceptable and keeps query load negligible.
//
// # Error Handling
//
// Query failures are logged and the tick is skipped; the schedule keeps
// running. A tick that finds no exception units logs nothing.
package jobs
