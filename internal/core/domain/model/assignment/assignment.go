package assignment

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment constructor")
)

// Assignment links a worker to a job with a role and an activity status.
// Timestamps are monotonic within the record: started-at cannot precede
// assigned-at, completed-at cannot precede started-at.
type Assignment struct {
	id         kernel.UUID
	jobID      kernel.UUID
	workerID   kernel.UUID
	assignedBy kernel.UUID
	role       Role
	status     Status

	assignedAt  time.Time
	startedAt   *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewAssignment attaches a worker to a job in the Assigned status.
func NewAssignment(id, jobID, workerID, assignedBy kernel.UUID, role Role, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		status:        Assigned,
		assignedAt:    assignedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setJobID(jobID),
		a.setWorkerID(workerID),
		a.setAssignedBy(assignedBy),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, jobID, workerID, assignedBy kernel.UUID,
	role Role,
	status Status,
	assignedAt time.Time,
	startedAt, completedAt *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setJobID(jobID),
		a.setWorkerID(workerID),
		a.setAssignedBy(assignedBy),
		a.setRole(role),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	a.status = status
	a.assignedAt = assignedAt
	a.startedAt = startedAt
	a.completedAt = completedAt
	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// JobID returns the job the worker is attached to.
func (a *Assignment) JobID() kernel.UUID {
	return a.jobID
}

// WorkerID returns the attached worker.
func (a *Assignment) WorkerID() kernel.UUID {
	return a.workerID
}

// AssignedBy returns the actor who created the assignment.
func (a *Assignment) AssignedBy() kernel.UUID {
	return a.assignedBy
}

// Role returns the worker's role on the job.
func (a *Assignment) Role() Role {
	return a.role
}

// Status returns the assignment's activity state.
func (a *Assignment) Status() Status {
	return a.status
}

// IsActive reports whether the assignment still attaches the worker to the job.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// AssignedAt returns when the worker was attached.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// StartedAt returns when the worker started work, nil if never started.
func (a *Assignment) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when the worker finished, nil if not completed.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Start transitions Assigned -> Started, stamping the start time.
// Returns an InvalidStateError from any other status.
func (a *Assignment) Start(at time.Time) error {
	if a.status != Assigned {
		return errs.NewInvalidStateError("start work", a.status.String(), Assigned.String())
	}
	if at.Before(a.assignedAt) {
		return errs.NewValueIsInvalidError("start timestamp precedes assignment")
	}

	a.status = Started
	a.startedAt = &at
	return nil
}

// Complete transitions an active assignment to Completed, stamping the
// completion time. Completing the assignment has no job-stage side effect.
func (a *Assignment) Complete(at time.Time) error {
	if !a.status.IsActive() {
		return errs.NewInvalidStateError("complete assignment", a.status.String(), "Assigned or Started")
	}
	if a.startedAt != nil && at.Before(*a.startedAt) {
		return errs.NewValueIsInvalidError("completion timestamp precedes start")
	}

	a.status = Completed
	a.completedAt = &at
	return nil
}

// Remove transitions an active assignment to Removed. The record is kept;
// re-assignment creates a new one.
func (a *Assignment) Remove() error {
	if !a.status.IsActive() {
		return errs.NewInvalidStateError("remove assignment", a.status.String(), "Assigned or Started")
	}

	a.status = Removed
	return nil
}

// PromoteToLead changes the role of an active assignment to Lead.
func (a *Assignment) PromoteToLead() error {
	if !a.status.IsActive() {
		return errs.NewInvalidStateError("promote to lead", a.status.String(), "Assigned or Started")
	}

	a.role = Lead
	return nil
}

// DemoteToArtisan changes the role of an active assignment back to Artisan.
// Used when the lead role moves to another worker on the job.
func (a *Assignment) DemoteToArtisan() error {
	if !a.status.IsActive() {
		return errs.NewInvalidStateError("demote to artisan", a.status.String(), "Assigned or Started")
	}

	a.role = Artisan
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	a.jobID = jobID
	return nil
}

func (a *Assignment) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	a.workerID = workerID
	return nil
}

func (a *Assignment) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}
	a.assignedBy = assignedBy
	return nil
}

func (a *Assignment) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
