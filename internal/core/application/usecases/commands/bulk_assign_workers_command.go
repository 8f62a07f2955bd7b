package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrBulkAssignWorkersCommandIsNotConstructed = errors.New(
		"BulkAssignWorkersCommand must be created via NewBulkAssignWorkersCommand constructor",
	)
	ErrWorkerIDsAreRequired = errors.New("at least one worker ID is required")
)

// BulkAssignWorkersCommand assigns several workers to a job in one operation,
// all in the Artisan role. Workers already actively assigned to the job are
// skipped rather than failing the whole batch.
type BulkAssignWorkersCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	workerIDs  []kernel.UUID
	assignedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewBulkAssignWorkersCommand creates a command to assign a batch of workers.
func NewBulkAssignWorkersCommand(jobID kernel.UUID, workerIDs []kernel.UUID, assignedBy kernel.UUID) (BulkAssignWorkersCommand, error) {
	command := BulkAssignWorkersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setWorkerIDs(workerIDs),
		command.setAssignedBy(assignedBy),
	); err != nil {
		return BulkAssignWorkersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignWorkersCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignWorkersCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c BulkAssignWorkersCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerIDs returns the worker IDs from the command.
func (c BulkAssignWorkersCommand) WorkerIDs() []kernel.UUID {
	return c.workerIDs
}

// AssignedBy returns the assigning supervisor's ID from the command.
func (c BulkAssignWorkersCommand) AssignedBy() kernel.UUID {
	return c.assignedBy
}

func (c *BulkAssignWorkersCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *BulkAssignWorkersCommand) setWorkerIDs(workerIDs []kernel.UUID) error {
	if len(workerIDs) == 0 {
		return ErrWorkerIDsAreRequired
	}

	for _, workerID := range workerIDs {
		if err := workerID.Validate(); err != nil {
			return err
		}
	}

	c.workerIDs = workerIDs
	return nil
}

func (c *BulkAssignWorkersCommand) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}

	c.assignedBy = assignedBy
	return nil
}
