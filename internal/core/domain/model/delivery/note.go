package delivery

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrNoteIsNotConstructed is returned when a Note was not created through
	// NewNote or RestoreNote.
	ErrNoteIsNotConstructed = errors.New("Note must be created via NewNote or RestoreNote constructor")
)

// Note is the delivery record issued once a job clears QC. At most one note
// exists per job; the generate use case enforces the uniqueness by returning
// the existing note instead of creating a second.
type Note struct {
	id     kernel.UUID
	jobID  kernel.UUID
	number string
	status Status

	deliveredBy       string
	vehicleInfo       string
	receivedBy        string
	customerSignature string
	notes             string

	createdAt    time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time
	signedAt     *time.Time

	isConstructed bool
}

// NewNote creates a delivery note in the Generated status.
func NewNote(id, jobID kernel.UUID, number string, createdAt time.Time) (*Note, error) {
	n := &Note{
		status:        Generated,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setJobID(jobID),
		n.setNumber(number),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNote reconstructs a delivery note from persistence.
func RestoreNote(
	id, jobID kernel.UUID,
	number string,
	status Status,
	deliveredBy, vehicleInfo, receivedBy, customerSignature, notes string,
	createdAt time.Time,
	dispatchedAt, deliveredAt, signedAt *time.Time,
) (*Note, error) {
	n := &Note{
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setJobID(jobID),
		n.setNumber(number),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	n.status = status
	n.deliveredBy = deliveredBy
	n.vehicleInfo = vehicleInfo
	n.receivedBy = receivedBy
	n.customerSignature = customerSignature
	n.notes = notes
	n.createdAt = createdAt
	n.dispatchedAt = dispatchedAt
	n.deliveredAt = deliveredAt
	n.signedAt = signedAt
	return n, nil
}

// Validate ensures the Note was created through a constructor.
func (n *Note) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNoteIsNotConstructed
	}
	return nil
}

// ID returns the note's unique identifier.
func (n *Note) ID() kernel.UUID {
	return n.id
}

// JobID returns the job this note was issued for.
func (n *Note) JobID() kernel.UUID {
	return n.jobID
}

// Number returns the human-readable delivery note number.
func (n *Note) Number() string {
	return n.number
}

// Status returns the note's position in the dispatch chain.
func (n *Note) Status() Status {
	return n.status
}

// DeliveredBy returns the driver or clerk who took the goods out.
func (n *Note) DeliveredBy() string {
	return n.deliveredBy
}

// VehicleInfo returns the vehicle details recorded at dispatch.
func (n *Note) VehicleInfo() string {
	return n.vehicleInfo
}

// ReceivedBy returns who received the goods at the destination.
func (n *Note) ReceivedBy() string {
	return n.receivedBy
}

// CustomerSignature returns the stored signature payload.
func (n *Note) CustomerSignature() string {
	return n.customerSignature
}

// Notes returns the free-text notes on the record.
func (n *Note) Notes() string {
	return n.notes
}

// CreatedAt returns when the note was generated.
func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

// DispatchedAt returns when the note was dispatched, nil if not yet.
func (n *Note) DispatchedAt() *time.Time {
	return n.dispatchedAt
}

// DeliveredAt returns when the goods were received, nil if not yet.
func (n *Note) DeliveredAt() *time.Time {
	return n.deliveredAt
}

// SignedAt returns when the customer signed, nil if not yet.
func (n *Note) SignedAt() *time.Time {
	return n.signedAt
}

// Dispatch transitions Generated -> Dispatched, recording who took the goods
// out and the vehicle used. Calling it out of order returns an
// InvalidStateError naming Generated as the expected predecessor.
func (n *Note) Dispatch(deliveredBy, vehicleInfo, notes string, at time.Time) error {
	if n.status != Generated {
		return errs.NewInvalidStateError("dispatch delivery note", n.status.String(), Generated.String())
	}
	if deliveredBy == "" {
		return errs.NewValueIsRequiredError("deliveredBy")
	}

	n.status = Dispatched
	n.deliveredBy = deliveredBy
	n.vehicleInfo = vehicleInfo
	n.notes = notes
	n.dispatchedAt = &at
	return nil
}

// MarkDelivered transitions to Delivered from Dispatched, or directly from
// Generated for over-the-counter handovers. Empty notes keep the existing
// notes text.
func (n *Note) MarkDelivered(receivedBy, notes string, at time.Time) error {
	if n.status != Generated && n.status != Dispatched {
		return errs.NewInvalidStateError("mark delivery note delivered", n.status.String(), "Generated or Dispatched")
	}
	if receivedBy == "" {
		return errs.NewValueIsRequiredError("receivedBy")
	}
	if n.dispatchedAt != nil && at.Before(*n.dispatchedAt) {
		return errs.NewValueIsInvalidError("delivery timestamp precedes dispatch")
	}

	n.status = Delivered
	n.receivedBy = receivedBy
	if notes != "" {
		n.notes = notes
	}
	n.deliveredAt = &at
	return nil
}

// RecordSignature transitions Delivered -> Signed, storing the customer name
// and signature payload. Once signed the note is immutable except for
// corrective notes via AmendNotes.
func (n *Note) RecordSignature(customerName, signatureData string, at time.Time) error {
	if n.status != Delivered {
		return errs.NewInvalidStateError("record customer signature", n.status.String(), Delivered.String())
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if signatureData == "" {
		return errs.NewValueIsRequiredError("signatureData")
	}
	if n.deliveredAt != nil && at.Before(*n.deliveredAt) {
		return errs.NewValueIsInvalidError("signature timestamp precedes delivery")
	}

	n.status = Signed
	n.receivedBy = customerName
	n.customerSignature = signatureData
	n.signedAt = &at
	return nil
}

// AmendNotes replaces the free-text notes. Permitted in every status,
// including Signed, for corrective annotations.
func (n *Note) AmendNotes(notes string) {
	n.notes = notes
}

func (n *Note) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Note) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	n.jobID = jobID
	return nil
}

func (n *Note) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	n.number = number
	return nil
}
