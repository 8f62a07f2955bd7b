package queries

import (
	"errors"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetDeliveryNotesQueryIsNotConstructed = errors.New(
	"GetDeliveryNotesQuery must be created via NewGetDeliveryNotesQuery or NewGetDeliveryNotesQueryByStatus constructor",
)

// maxDeliveryNotesPageSize caps the listing so a client cannot pull the whole
// table in one request.
const maxDeliveryNotesPageSize = 100

// GetDeliveryNotesQuery lists delivery notes, most recent first, optionally
// filtered to a single status.
type GetDeliveryNotesQuery struct {
	status *delivery.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewGetDeliveryNotesQuery creates a query listing the most recent notes across
// all statuses.
func NewGetDeliveryNotesQuery(limit int) (GetDeliveryNotesQuery, error) {
	if limit < 1 || limit > maxDeliveryNotesPageSize {
		return GetDeliveryNotesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxDeliveryNotesPageSize)
	}

	return GetDeliveryNotesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// NewGetDeliveryNotesQueryByStatus creates a query listing the most recent
// notes in the given status.
func NewGetDeliveryNotesQueryByStatus(status delivery.Status, limit int) (GetDeliveryNotesQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveryNotesQuery{}, err
	}
	if limit < 1 || limit > maxDeliveryNotesPageSize {
		return GetDeliveryNotesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxDeliveryNotesPageSize)
	}

	return GetDeliveryNotesQuery{status: &status, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryNotesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNotesQueryIsNotConstructed)
}

// Status returns the status filter, nil when listing across all statuses.
func (q GetDeliveryNotesQuery) Status() *delivery.Status {
	return q.status
}

// Limit returns the maximum number of notes to return.
func (q GetDeliveryNotesQuery) Limit() int {
	return q.limit
}
