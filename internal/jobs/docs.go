// Package jobs provides the scheduled background tasks of the logistics core.
//
// Jobs are built on github.com/robfig/cron/v3 with the six field (seconds)
// cron format and log through zerolog.
//
// # Available Jobs
//
//  1. DelayReportJob - appends a DELAY_REPORTED movement, authored by the
//     system, to every operation that passed its expected delivery time
//     without reaching a terminal status. Each operation is reported once.
//
// # Usage
//
//	delayJob := jobs.NewDelayReportJob(reportDelaysHandler, "0 */5 * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(delayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Failed runs are logged at error level and counted in the
//     logistics_delay_report_runs_total metric; the next tick runs normally
//   - Overlapping ticks are skipped and panics are recovered
//   - A failed start stops the jobs that were already started
package jobs
