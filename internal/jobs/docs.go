// Package jobs provides scheduled background tasks for the workshop.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderResyncJob - recomputes the status of every order still in
// production from its tasks. Event-driven synchronization runs after each
// task write; the resync pass catches orders it missed.
//
// # Usage
//
//	resync := jobs.NewOrderResyncJob(resyncHandler, "@every 5m", 4, logger)
//	jobManager := jobs.NewJobManager(resync)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from RESYNC_SCHEDULE. Five-field cron expressions, a
// leading seconds field and descriptors like "@every 5m" or "@hourly" are
// accepted. Overlapping passes are skipped rather than queued.
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Failures of single
// orders are counted in the pass result and never abort the pass.
package jobs
