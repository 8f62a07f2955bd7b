package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrSetLeadWorkerCommandIsNotConstructed = errors.New(
	"SetLeadWorkerCommand must be created via NewSetLeadWorkerCommand constructor",
)

// SetLeadWorkerCommand promotes an actively assigned worker to the lead role
// on a job. Any previous lead on the job is demoted to artisan.
type SetLeadWorkerCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetLeadWorkerCommand creates a command to change a job's lead worker.
func NewSetLeadWorkerCommand(jobID, workerID kernel.UUID) (SetLeadWorkerCommand, error) {
	command := SetLeadWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setWorkerID(workerID),
	); err != nil {
		return SetLeadWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetLeadWorkerCommand) Validate() error {
	return c.guard.Validate(ErrSetLeadWorkerCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c SetLeadWorkerCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the worker ID from the command.
func (c SetLeadWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *SetLeadWorkerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SetLeadWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
