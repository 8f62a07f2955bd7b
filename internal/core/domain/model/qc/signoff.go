package qc

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrSignoffIsNotConstructed is returned when a Signoff was not created
	// through NewSignoff or RestoreSignoff.
	ErrSignoffIsNotConstructed = errors.New("Signoff must be created via NewSignoff or RestoreSignoff constructor")
)

// Signoff is the per-job instance of a holding point: exactly one exists per
// (job, active holding point) pair, created once at ledger initialization.
// The sequence number is copied from the catalogue entry at that moment, so
// later catalogue edits never reorder or mutate a job's ledger.
type Signoff struct {
	id             kernel.UUID
	jobID          kernel.UUID
	holdingPointID kernel.UUID
	sequenceNumber int
	status         SignoffStatus
	signedBy       *kernel.UUID
	signedAt       *time.Time
	notes          string
	createdAt      time.Time

	isConstructed bool
}

// NewSignoff creates a pending signoff for a job from a catalogue entry,
// snapshotting the holding point's sequence number.
func NewSignoff(id, jobID kernel.UUID, holdingPoint *HoldingPoint, createdAt time.Time) (*Signoff, error) {
	if err := holdingPoint.Validate(); err != nil {
		return nil, err
	}

	s := &Signoff{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setJobID(jobID),
	); err != nil {
		return nil, err
	}

	s.holdingPointID = holdingPoint.ID()
	s.sequenceNumber = holdingPoint.SequenceNumber()
	return s, nil
}

// RestoreSignoff reconstructs a signoff from persistence.
func RestoreSignoff(
	id, jobID, holdingPointID kernel.UUID,
	sequenceNumber int,
	status SignoffStatus,
	signedBy *kernel.UUID, signedAt *time.Time,
	notes string,
	createdAt time.Time,
) (*Signoff, error) {
	s := &Signoff{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setJobID(jobID),
		holdingPointID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.holdingPointID = holdingPointID
	s.sequenceNumber = sequenceNumber
	s.status = status
	s.signedBy = signedBy
	s.signedAt = signedAt
	s.notes = notes
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the Signoff was created through a constructor.
func (s *Signoff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSignoffIsNotConstructed
	}
	return nil
}

// ID returns the signoff's unique identifier.
func (s *Signoff) ID() kernel.UUID {
	return s.id
}

// JobID returns the job this signoff belongs to.
func (s *Signoff) JobID() kernel.UUID {
	return s.jobID
}

// HoldingPointID returns the catalogue entry this signoff was created from.
func (s *Signoff) HoldingPointID() kernel.UUID {
	return s.holdingPointID
}

// SequenceNumber returns the inspection-order position snapshotted at
// ledger initialization.
func (s *Signoff) SequenceNumber() int {
	return s.sequenceNumber
}

// Status returns the current inspection state.
func (s *Signoff) Status() SignoffStatus {
	return s.status
}

// SignedBy returns the inspector who recorded the current verdict, nil if pending.
func (s *Signoff) SignedBy() *kernel.UUID {
	return s.signedBy
}

// SignedAt returns when the current verdict was recorded, nil if pending.
func (s *Signoff) SignedAt() *time.Time {
	return s.signedAt
}

// Notes returns the free-text inspection notes.
func (s *Signoff) Notes() string {
	return s.notes
}

// CreatedAt returns when the signoff was created at ledger initialization.
func (s *Signoff) CreatedAt() time.Time {
	return s.createdAt
}

// Sign records an inspection verdict, stamping signer and timestamp and
// overwriting any prior verdict (re-inspection is allowed). The verdict must
// be Passed, Failed, or NotApplicable. Timestamps are monotonic: a verdict
// cannot carry a timestamp earlier than the verdict it supersedes.
func (s *Signoff) Sign(verdict SignoffStatus, signedBy kernel.UUID, at time.Time, notes string) error {
	if !verdict.IsVerdict() {
		return errs.NewValueIsInvalidErrorWithCause(
			"verdict is invalid",
			errors.New(verdict.String()+" is not a valid inspection verdict"),
		)
	}
	if err := signedBy.Validate(); err != nil {
		return err
	}
	if s.signedAt != nil && at.Before(*s.signedAt) {
		return errs.NewValueIsInvalidError("verdict timestamp precedes existing verdict")
	}

	s.status = verdict
	s.signedBy = &signedBy
	s.signedAt = &at
	s.notes = notes
	return nil
}

// Reset returns the signoff to Pending, clearing signer, timestamp, and notes.
func (s *Signoff) Reset() {
	s.status = Pending
	s.signedBy = nil
	s.signedAt = nil
	s.notes = ""
}

func (s *Signoff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Signoff) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	s.jobID = jobID
	return nil
}
