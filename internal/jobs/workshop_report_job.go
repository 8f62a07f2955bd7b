package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// WorkshopReportJob logs aggregate shop-floor figures once an hour: job
// counts per lifecycle stage, active assignments and open delivery paperwork.
type WorkshopReportJob struct {
	handler queries.GetWorkshopStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkshopReportJob creates a job reporting workshop statistics hourly.
func NewWorkshopReportJob(handler queries.GetWorkshopStatisticsQueryHandler, logger *slog.Logger) *WorkshopReportJob {
	return &WorkshopReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "workshop_report_job"),
	}
}

// Start begins the workshop report job to run at the top of every hour.
func (j *WorkshopReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetWorkshopStatisticsQuery()

		statistics, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Workshop report job failed", "error", err)
			return
		}

		attrs := []any{
			"total_jobs", statistics.TotalJobs,
			"active_assignments", statistics.ActiveAssignments,
			"unsigned_delivered_notes", statistics.UnsignedDeliveredNotes,
		}
		for _, stageCount := range statistics.JobsByStage {
			attrs = append(attrs, "stage_"+stageCount.Stage, stageCount.Count)
		}

		j.logger.InfoContext(ctx, "Workshop report", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workshop report job started (running hourly)")
	return nil
}

// Stop stops the workshop report job.
func (j *WorkshopReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Workshop report job stopped")
}
