package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetJobAssignmentsQueryIsNotConstructed = errors.New(
	"GetJobAssignmentsQuery must be created via NewGetJobAssignmentsQuery constructor",
)

// GetJobAssignmentsQuery retrieves the full assignment history of one job,
// removed and completed records included.
//
// Example:
//
//	query, err := NewGetJobAssignmentsQuery(jobID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetJobAssignmentsQueryHandler(db)
//	assignments, err := handler.Handle(ctx, query)
type GetJobAssignmentsQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobAssignmentsQuery creates a query for a job's assignments.
func NewGetJobAssignmentsQuery(jobID kernel.UUID) (GetJobAssignmentsQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobAssignmentsQuery{}, err
	}

	return GetJobAssignmentsQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobAssignmentsQueryIsNotConstructed)
}

// JobID returns the job ID from the query.
func (q GetJobAssignmentsQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobAssignmentsQueryResponse is one assignment record in the read model.
type GetJobAssignmentsQueryResponse struct {
	AssignmentID kernel.UUID
	WorkerID     kernel.UUID
	AssignedBy   kernel.UUID
	Role         string
	Status       string
	AssignedAt   time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
}
