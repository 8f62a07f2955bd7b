package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkerAssignmentsQueryIsNotConstructed = errors.New(
	"GetWorkerAssignmentsQuery must be created via a NewGetWorkerAssignmentsQuery* constructor",
)

// GetWorkerAssignmentsQuery retrieves a worker's assignments together with the
// jobs they belong to. The active form answers "what is this worker on right
// now" at the dispatch desk; the all form adds the finished assignments for
// the worker's history.
type GetWorkerAssignmentsQuery struct {
	workerID        kernel.UUID
	includeFinished bool

	guard guard.ConstructorGuard
}

// NewGetWorkerAssignmentsQuery creates a query for a worker's active
// assignments.
func NewGetWorkerAssignmentsQuery(workerID kernel.UUID) (GetWorkerAssignmentsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerAssignmentsQuery{}, err
	}

	return GetWorkerAssignmentsQuery{workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetWorkerAssignmentsQueryAll creates a query for a worker's full
// assignment history, completed and removed assignments included.
func NewGetWorkerAssignmentsQueryAll(workerID kernel.UUID) (GetWorkerAssignmentsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerAssignmentsQuery{}, err
	}

	return GetWorkerAssignmentsQuery{
		workerID:        workerID,
		includeFinished: true,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerAssignmentsQueryIsNotConstructed)
}

// WorkerID returns the worker ID from the query.
func (q GetWorkerAssignmentsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// IncludeFinished reports whether finished assignments are part of the result.
func (q GetWorkerAssignmentsQuery) IncludeFinished() bool {
	return q.includeFinished
}

// GetWorkerAssignmentsQueryResponse is one assignment of the worker, joined
// with the job it belongs to.
type GetWorkerAssignmentsQueryResponse struct {
	AssignmentID   kernel.UUID
	JobID          kernel.UUID
	JobNumber      string
	JobDescription string
	JobStage       string
	Role           string
	Status         string
	AssignedAt     time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
}
