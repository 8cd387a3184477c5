// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager.
//
// # Available Jobs
//
// GeometryRepairJob resolves geocodes and driving routes for deliveries that
// were created or had an address edited. Those writes set geometry_dirty and
// leave provider calls to this job; tracking reads still repair on a miss.
//
// # Usage
//
//	repair := jobs.NewGeometryRepairJob(handler, "@every 30s", 20, logger)
//	jobManager := jobs.NewJobManager(repair)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is logged and retried on the next tick. Per-delivery failures
// are handled inside the repair command and never stop the batch.
package jobs
