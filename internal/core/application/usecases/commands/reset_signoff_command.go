package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrResetSignoffCommandIsNotConstructed = errors.New(
	"ResetSignoffCommand must be created via NewResetSignoffCommand constructor",
)

// ResetSignoffCommand returns one holding point sign-off of a job to Pending,
// clearing its verdict, signer, and notes.
type ResetSignoffCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	holdingPointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetSignoffCommand creates a command to reset a single sign-off.
func NewResetSignoffCommand(jobID, holdingPointID kernel.UUID) (ResetSignoffCommand, error) {
	command := ResetSignoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setHoldingPointID(holdingPointID),
	); err != nil {
		return ResetSignoffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetSignoffCommand) Validate() error {
	return c.guard.Validate(ErrResetSignoffCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c ResetSignoffCommand) JobID() kernel.UUID {
	return c.jobID
}

// HoldingPointID returns the holding point ID from the command.
func (c ResetSignoffCommand) HoldingPointID() kernel.UUID {
	return c.holdingPointID
}

func (c *ResetSignoffCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ResetSignoffCommand) setHoldingPointID(holdingPointID kernel.UUID) error {
	if err := holdingPointID.Validate(); err != nil {
		return err
	}

	c.holdingPointID = holdingPointID
	return nil
}
