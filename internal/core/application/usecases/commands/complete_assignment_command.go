package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCompleteAssignmentCommandIsNotConstructed = errors.New(
	"CompleteAssignmentCommand must be created via NewCompleteAssignmentCommand constructor",
)

// CompleteAssignmentCommand marks a worker's assignment on a job as
// completed. Completing an assignment never moves the job's stage: the job
// proceeds through QC regardless of how its workers wrap up.
type CompleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAssignmentCommand creates a command to complete a worker's assignment.
func NewCompleteAssignmentCommand(jobID, workerID kernel.UUID) (CompleteAssignmentCommand, error) {
	command := CompleteAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setWorkerID(workerID),
	); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssignmentCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c CompleteAssignmentCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the worker ID from the command.
func (c CompleteAssignmentCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *CompleteAssignmentCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CompleteAssignmentCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
