package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand marks a worker's assignment as started. The first started
// assignment moves the job to InProgress.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to start a worker's assignment.
func NewStartWorkCommand(jobID, workerID kernel.UUID) (StartWorkCommand, error) {
	command := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setWorkerID(workerID),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c StartWorkCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the worker ID from the command.
func (c StartWorkCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *StartWorkCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *StartWorkCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
