package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/pkg/guard"
)

var (
	ErrSignHoldingPointCommandIsNotConstructed = errors.New(
		"SignHoldingPointCommand must be created via NewSignHoldingPointCommand constructor",
	)
	ErrVerdictIsInvalid = errors.New("verdict must be Passed, Failed or NotApplicable")
)

// SignHoldingPointCommand records an inspection verdict on one holding point
// sign-off of a job. The verdict is Passed, Failed, or NotApplicable;
// re-inspection overwrites a prior verdict.
//
// Example:
//
//	cmd, err := NewSignHoldingPointCommand(jobID, holdingPointID, qc.Passed, inspectorID, "weld seams ok")
//	if err != nil {
//	    return err
//	}
//	handler := NewSignHoldingPointCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type SignHoldingPointCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	holdingPointID kernel.UUID
	verdict        qc.SignoffStatus
	inspectorID    kernel.UUID
	notes          string

	guard guard.ConstructorGuard
}

// NewSignHoldingPointCommand creates a command to record an inspection verdict.
func NewSignHoldingPointCommand(
	jobID, holdingPointID kernel.UUID,
	verdict qc.SignoffStatus,
	inspectorID kernel.UUID,
	notes string,
) (SignHoldingPointCommand, error) {
	command := SignHoldingPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setHoldingPointID(holdingPointID),
		command.setVerdict(verdict),
		command.setInspectorID(inspectorID),
	); err != nil {
		return SignHoldingPointCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SignHoldingPointCommand) Validate() error {
	return c.guard.Validate(ErrSignHoldingPointCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c SignHoldingPointCommand) JobID() kernel.UUID {
	return c.jobID
}

// HoldingPointID returns the holding point ID from the command.
func (c SignHoldingPointCommand) HoldingPointID() kernel.UUID {
	return c.holdingPointID
}

// Verdict returns the inspection verdict from the command.
func (c SignHoldingPointCommand) Verdict() qc.SignoffStatus {
	return c.verdict
}

// InspectorID returns the signing inspector's ID from the command.
func (c SignHoldingPointCommand) InspectorID() kernel.UUID {
	return c.inspectorID
}

// Notes returns the inspection notes from the command.
func (c SignHoldingPointCommand) Notes() string {
	return c.notes
}

func (c *SignHoldingPointCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SignHoldingPointCommand) setHoldingPointID(holdingPointID kernel.UUID) error {
	if err := holdingPointID.Validate(); err != nil {
		return err
	}

	c.holdingPointID = holdingPointID
	return nil
}

func (c *SignHoldingPointCommand) setVerdict(verdict qc.SignoffStatus) error {
	if !verdict.IsVerdict() {
		return ErrVerdictIsInvalid
	}

	c.verdict = verdict
	return nil
}

func (c *SignHoldingPointCommand) setInspectorID(inspectorID kernel.UUID) error {
	if err := inspectorID.Validate(); err != nil {
		return err
	}

	c.inspectorID = inspectorID
	return nil
}
