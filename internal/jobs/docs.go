// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. RestaurantRatingJob - Runs every minute to roll menu item ratings up
// into the per-restaurant rating used by listing queries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The rating job uses the cron expression "0 * * * * *" (every minute).
// Restaurant ratings are derived data, so a short lag is acceptable; item
// ratings themselves update atomically when reviews are recorded.
//
// # Error Handling
//
// - Rating refresh errors are logged and retried on the next tick
package jobs
