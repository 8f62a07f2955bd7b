// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetQcProgressQueryIsNotConstructed = errors.New(
	"GetQcProgressQuery must be created via NewGetQcProgressQuery constructor",
)

// GetQcProgressQuery retrieves the quality control state of one job: the full
// sign-off checklist plus the aggregate completion figures.
//
// Example:
//
//	query, err := NewGetQcProgressQuery(jobID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetQcProgressQueryHandler(db)
//	progress, err := handler.Handle(ctx, query)
type GetQcProgressQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQcProgressQuery creates a query for a job's QC progress.
func NewGetQcProgressQuery(jobID kernel.UUID) (GetQcProgressQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetQcProgressQuery{}, err
	}

	return GetQcProgressQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQcProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetQcProgressQueryIsNotConstructed)
}

// JobID returns the job ID from the query.
func (q GetQcProgressQuery) JobID() kernel.UUID {
	return q.jobID
}

// SignoffItem is one checklist row in the QC progress read model.
type SignoffItem struct {
	SignoffID        kernel.UUID
	HoldingPointID   kernel.UUID
	HoldingPointName string
	SequenceNumber   int
	Status           string
	SignedBy         *kernel.UUID
	SignedAt         *time.Time
	Notes            string
}

// GetQcProgressQueryResponse is the aggregate QC read model of a job.
// PercentComplete counts passed sign-offs against the completable total
// (excluding NotApplicable); IsComplete means nothing pending and nothing
// failed. NextPending names the lowest-sequence holding point still awaiting
// inspection, nil when none.
type GetQcProgressQueryResponse struct {
	JobID           kernel.UUID
	Total           int
	Passed          int
	Failed          int
	Pending         int
	NotApplicable   int
	PercentComplete int
	IsComplete      bool
	NextPending     *SignoffItem
	Signoffs        []SignoffItem
}
