// Package notify provides outbound notification adapters for job stage
// changes. Notifications are best effort: the transaction that produced the
// changes has already committed when these adapters run.
package notify

import (
	"context"
	"log/slog"

	"workshop/internal/core/domain/model/job"
)

// SlogNotifier publishes stage changes to the application log. Downstream
// systems that need the events can tail the structured log stream; the shop
// floor itself reads them off the kanban board.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "stage_change_notifier"),
	}
}

// PublishStageChanges logs each stage change in the order it occurred.
func (n *SlogNotifier) PublishStageChanges(ctx context.Context, changes []job.StageChange) {
	for _, change := range changes {
		n.logger.InfoContext(ctx, "Job stage changed",
			"job_id", change.JobID.String(),
			"from", change.From.String(),
			"to", change.To.String(),
			"at", change.At,
		)
	}
}

// NopNotifier discards all stage changes. Used in tests and tools that do not
// care about notifications.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing.
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// PublishStageChanges discards the given changes.
func (n *NopNotifier) PublishStageChanges(_ context.Context, _ []job.StageChange) {}
