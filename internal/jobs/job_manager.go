package jobs

import (
	"fmt"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workshopReportJob     *WorkshopReportJob
	unsignedDeliveriesJob *UnsignedDeliveriesJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	statisticsHandler queries.GetWorkshopStatisticsQueryHandler,
	deliveryStatisticsHandler queries.GetDeliveryStatisticsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workshopReportJob:     NewWorkshopReportJob(statisticsHandler, logger),
		unsignedDeliveriesJob: NewUnsignedDeliveriesJob(deliveryStatisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workshopReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start workshop report job: %w", err)
	}

	if err := jm.unsignedDeliveriesJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.workshopReportJob.Stop()
		return fmt.Errorf("failed to start unsigned deliveries job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workshopReportJob.Stop()
	jm.unsignedDeliveriesJob.Stop()
}
