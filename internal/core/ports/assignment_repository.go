package ports

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for worker
// assignments. Active assignments are those in Assigned or Started status;
// Completed and Removed rows stay in storage as history.
type AssignmentRepository interface {
	// Add persists a new assignment to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetAllByJob retrieves every assignment of a job, including completed
	// and removed ones, newest first.
	GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllActiveByJob retrieves the active assignments of a job.
	GetAllActiveByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllActiveByWorker retrieves the active assignments of a worker
	// across all jobs.
	GetAllActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]*assignment.Assignment, error)

	// GetActiveByJobAndWorker retrieves the active assignment of a worker on
	// a specific job, or an ObjectNotFoundError when the worker is not
	// actively assigned to the job.
	GetActiveByJobAndWorker(ctx context.Context, jobID, workerID kernel.UUID) (*assignment.Assignment, error)
}
