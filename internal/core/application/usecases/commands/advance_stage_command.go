package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand moves a job exactly one stage forward along the fixed
// lifecycle sequence. Advancing into QcInProgress also builds the job's
// sign-off checklist from the holding point registry.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a command to advance a job one stage.
func NewAdvanceStageCommand(jobID kernel.UUID) (AdvanceStageCommand, error) {
	command := AdvanceStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setJobID(jobID); err != nil {
		return AdvanceStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c AdvanceStageCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *AdvanceStageCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
