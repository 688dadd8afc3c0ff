// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderStatsJob counts stored orders per status and publishes the counts to
// the orders_by_status gauge served on /metrics. It only reads the store.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, gauge, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
package jobs
