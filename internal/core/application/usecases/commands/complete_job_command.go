package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand records the dual QC-inspector and supervisor sign-off on
// a job whose quality gate has cleared, confirming it ready for delivery.
//
// Example:
//
//	cmd, err := NewCompleteJobCommand(jobID, inspectorID, supervisorID)
//	if err != nil {
//	    return err
//	}
//	handler := NewCompleteJobCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrQualityGateNotCleared) {
//	    // pending or failed holding points remain
//	}
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	qcInspectorID kernel.UUID
	supervisorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command to record job completion.
func NewCompleteJobCommand(jobID, qcInspectorID, supervisorID kernel.UUID) (CompleteJobCommand, error) {
	command := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setQcInspectorID(qcInspectorID),
		command.setSupervisorID(supervisorID),
	); err != nil {
		return CompleteJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// JobID returns the job ID from the command.
func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// QcInspectorID returns the QC inspector's ID from the command.
func (c CompleteJobCommand) QcInspectorID() kernel.UUID {
	return c.qcInspectorID
}

// SupervisorID returns the supervisor's ID from the command.
func (c CompleteJobCommand) SupervisorID() kernel.UUID {
	return c.supervisorID
}

func (c *CompleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CompleteJobCommand) setQcInspectorID(qcInspectorID kernel.UUID) error {
	if err := qcInspectorID.Validate(); err != nil {
		return err
	}

	c.qcInspectorID = qcInspectorID
	return nil
}

func (c *CompleteJobCommand) setSupervisorID(supervisorID kernel.UUID) error {
	if err := supervisorID.Validate(); err != nil {
		return err
	}

	c.supervisorID = supervisorID
	return nil
}
