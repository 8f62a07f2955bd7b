package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetDeliveryNoteQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteQuery must be created via a NewGetDeliveryNoteQueryBy* constructor",
)

// GetDeliveryNoteQuery retrieves one delivery note, looked up by its own ID,
// by the job it belongs to, or by the note number printed on the paperwork.
//
// Example:
//
//	query, err := NewGetDeliveryNoteQueryByNumber("DN-25-0042")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetDeliveryNoteQueryHandler(db)
//	note, err := handler.Handle(ctx, query)
type GetDeliveryNoteQuery struct {
	noteID *kernel.UUID
	jobID  *kernel.UUID
	number string

	guard guard.ConstructorGuard
}

// NewGetDeliveryNoteQueryByID creates a query that looks the note up by its ID.
func NewGetDeliveryNoteQueryByID(noteID kernel.UUID) (GetDeliveryNoteQuery, error) {
	if err := noteID.Validate(); err != nil {
		return GetDeliveryNoteQuery{}, err
	}

	return GetDeliveryNoteQuery{noteID: &noteID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetDeliveryNoteQueryByJob creates a query that looks the note up by job.
func NewGetDeliveryNoteQueryByJob(jobID kernel.UUID) (GetDeliveryNoteQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetDeliveryNoteQuery{}, err
	}

	return GetDeliveryNoteQuery{jobID: &jobID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetDeliveryNoteQueryByNumber creates a query that looks the note up by
// its number.
func NewGetDeliveryNoteQueryByNumber(number string) (GetDeliveryNoteQuery, error) {
	if number == "" {
		return GetDeliveryNoteQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetDeliveryNoteQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryNoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteQueryIsNotConstructed)
}

// NoteID returns the note ID from the query, nil unless the lookup is by ID.
func (q GetDeliveryNoteQuery) NoteID() *kernel.UUID {
	return q.noteID
}

// JobID returns the job ID from the query, nil unless the lookup is by job.
func (q GetDeliveryNoteQuery) JobID() *kernel.UUID {
	return q.jobID
}

// Number returns the note number from the query, empty when the lookup is
// by job.
func (q GetDeliveryNoteQuery) Number() string {
	return q.number
}

// GetDeliveryNoteQueryResponse is the delivery note read model, joined with
// the job it accompanies.
type GetDeliveryNoteQueryResponse struct {
	NoteID            kernel.UUID
	JobID             kernel.UUID
	JobNumber         string
	Number            string
	Status            string
	DeliveredBy       string
	VehicleInfo       string
	ReceivedBy        string
	CustomerSignature string
	Notes             string
	CreatedAt         time.Time
	DispatchedAt      *time.Time
	DeliveredAt       *time.Time
	SignedAt          *time.Time
}
