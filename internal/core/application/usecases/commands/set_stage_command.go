package commands

import (
	"errors"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrSetStageCommandIsNotConstructed = errors.New(
	"SetStageCommand must be created via NewSetStageCommand constructor",
)

// SetStageCommand sets a job's stage directly, bypassing the derivation
// rules. Reserved for supervisor corrections.
type SetStageCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	stage job.Stage

	guard guard.ConstructorGuard
}

// NewSetStageCommand creates a command to override a job's stage.
func NewSetStageCommand(jobID kernel.UUID, stage job.Stage) (SetStageCommand, error) {
	command := SetStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setStage(stage),
	); err != nil {
		return SetStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStageCommand) Validate() error {
	return c.guard.Validate(ErrSetStageCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c SetStageCommand) JobID() kernel.UUID {
	return c.jobID
}

// Stage returns the target stage from the command.
func (c SetStageCommand) Stage() job.Stage {
	return c.stage
}

func (c *SetStageCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SetStageCommand) setStage(stage job.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}
