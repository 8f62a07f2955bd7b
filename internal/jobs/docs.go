// Package jobs provides scheduled background tasks for the workshop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required on the shop floor.
//
// # Available Jobs
//
// 1. WorkshopReportJob - Runs hourly to log aggregate shop-floor figures
// 2. UnsignedDeliveriesJob - Runs every morning to flag delivered notes still awaiting a customer signature
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statisticsHandler, deliveryStatisticsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and retry on their next scheduled run; they never
// crash the process. Failed job starts will stop any already running jobs.
package jobs
