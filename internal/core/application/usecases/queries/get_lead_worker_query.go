package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetLeadWorkerQueryIsNotConstructed = errors.New(
	"GetLeadWorkerQuery must be created via NewGetLeadWorkerQuery constructor",
)

// GetLeadWorkerQuery retrieves the current lead worker of a job: the one
// assignment with the lead role that is still active. Used by the dispatch
// desk to find who answers for the job on the floor.
type GetLeadWorkerQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLeadWorkerQuery creates a query for a job's current lead worker.
func NewGetLeadWorkerQuery(jobID kernel.UUID) (GetLeadWorkerQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetLeadWorkerQuery{}, err
	}

	return GetLeadWorkerQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLeadWorkerQuery) Validate() error {
	return q.guard.Validate(ErrGetLeadWorkerQueryIsNotConstructed)
}

// JobID returns the job ID from the query.
func (q GetLeadWorkerQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetLeadWorkerQueryResponse is the active lead assignment of a job.
type GetLeadWorkerQueryResponse struct {
	AssignmentID kernel.UUID
	WorkerID     kernel.UUID
	Status       string
	AssignedAt   time.Time
	StartedAt    *time.Time
}
