package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrStartQualityControlCommandIsNotConstructed = errors.New(
	"StartQualityControlCommand must be created via NewStartQualityControlCommand constructor",
)

// StartQualityControlCommand moves a job from InProgress into QcInProgress and
// builds its sign-off checklist from the active holding point registry.
//
// Example:
//
//	cmd, err := NewStartQualityControlCommand(jobID)
//	if err != nil {
//	    return err
//	}
//	handler := NewStartQualityControlCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type StartQualityControlCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartQualityControlCommand creates a command to move a job into QC.
func NewStartQualityControlCommand(jobID kernel.UUID) (StartQualityControlCommand, error) {
	command := StartQualityControlCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setJobID(jobID); err != nil {
		return StartQualityControlCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartQualityControlCommand) Validate() error {
	return c.guard.Validate(ErrStartQualityControlCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c StartQualityControlCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *StartQualityControlCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
