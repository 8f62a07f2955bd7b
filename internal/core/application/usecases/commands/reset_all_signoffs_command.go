package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrResetAllSignoffsCommandIsNotConstructed = errors.New(
	"ResetAllSignoffsCommand must be created via NewResetAllSignoffsCommand constructor",
)

// ResetAllSignoffsCommand returns every sign-off of a job to Pending and
// regresses the job out of QC back to InProgress. Used when rework makes the
// whole inspection run invalid.
type ResetAllSignoffsCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetAllSignoffsCommand creates a command to reset a job's full checklist.
func NewResetAllSignoffsCommand(jobID kernel.UUID) (ResetAllSignoffsCommand, error) {
	command := ResetAllSignoffsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setJobID(jobID); err != nil {
		return ResetAllSignoffsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetAllSignoffsCommand) Validate() error {
	return c.guard.Validate(ErrResetAllSignoffsCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c ResetAllSignoffsCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ResetAllSignoffsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
