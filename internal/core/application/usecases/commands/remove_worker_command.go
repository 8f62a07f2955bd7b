package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRemoveWorkerCommandIsNotConstructed = errors.New(
	"RemoveWorkerCommand must be created via NewRemoveWorkerCommand constructor",
)

// RemoveWorkerCommand takes a worker off a job. Removing the last active
// worker regresses an Assigned job back to New; once work has begun the job's
// stage is unaffected.
type RemoveWorkerCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveWorkerCommand creates a command to remove a worker from a job.
func NewRemoveWorkerCommand(jobID, workerID kernel.UUID) (RemoveWorkerCommand, error) {
	command := RemoveWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setWorkerID(workerID),
	); err != nil {
		return RemoveWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWorkerCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c RemoveWorkerCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the worker ID from the command.
func (c RemoveWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *RemoveWorkerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RemoveWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
