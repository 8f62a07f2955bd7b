package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnsignedDeliveriesJob reminds the dispatch desk every morning about
// delivered notes still missing a customer signature. Paperwork that stays
// unsigned blocks invoicing.
type UnsignedDeliveriesJob struct {
	handler queries.GetDeliveryStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnsignedDeliveriesJob creates a job flagging unsigned deliveries daily.
func NewUnsignedDeliveriesJob(handler queries.GetDeliveryStatisticsQueryHandler, logger *slog.Logger) *UnsignedDeliveriesJob {
	return &UnsignedDeliveriesJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "unsigned_deliveries_job"),
	}
}

// Start begins the unsigned deliveries job to run every morning at 07:00.
func (j *UnsignedDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc("0 7 * * *", func() {
		ctx := context.Background()
		query := queries.NewGetDeliveryStatisticsQuery()

		statistics, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unsigned deliveries job failed", "error", err)
			return
		}

		if statistics.Delivered == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Delivered notes awaiting customer signature",
			"count", statistics.Delivered,
			"total_notes", statistics.TotalNotes,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unsigned deliveries job started (running daily at 07:00)")
	return nil
}

// Stop stops the unsigned deliveries job.
func (j *UnsignedDeliveriesJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unsigned deliveries job stopped")
}
