// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// ReportJob loads the configured order source on every tick, builds a report,
// logs its summary and records run metrics.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing load or build is logged and counted; the next tick retries. Per-order
// findings are never errors and only show up in the logged summary.
package jobs
