// Package ports defines repository and outbound interfaces for the workshop
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate retrieves a job aggregate and takes a row-level write lock
	// on it for the duration of the surrounding transaction. Commands that
	// derive the job's stage from related records (sign-offs, assignments)
	// load the job through this method so concurrent commands on the same job
	// serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetByNumber retrieves a job aggregate by its human-readable job number.
	GetByNumber(ctx context.Context, jobNumber string) (*job.Job, error)
}
