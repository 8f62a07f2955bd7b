package ports

import (
	"context"

	"workshop/internal/core/domain/model/job"
)

// Notifier publishes job stage changes to interested parties after the
// transaction that produced them commits. Implementations must tolerate
// being called with an empty slice and must not fail the calling command:
// delivery of notifications is best effort.
type Notifier interface {
	// PublishStageChanges delivers the stage change events of a committed
	// transaction, in the order they occurred.
	PublishStageChanges(ctx context.Context, changes []job.StageChange)
}
