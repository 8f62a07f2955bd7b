package commands

import (
	"errors"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand assigns a worker to a job in a given role. Assigning
// the first worker moves a New job to Assigned.
//
// Example:
//
//	cmd, err := NewAssignWorkerCommand(jobID, workerID, supervisorID, assignment.Artisan)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignWorkerCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	jobID        kernel.UUID
	workerID     kernel.UUID
	assignedBy   kernel.UUID
	role         assignment.Role

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker to a job.
// Automatically generates a unique ID for the assignment.
func NewAssignWorkerCommand(jobID, workerID, assignedBy kernel.UUID, role assignment.Role) (AssignWorkerCommand, error) {
	command := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(kernel.NewUUID()),
		command.setJobID(jobID),
		command.setWorkerID(workerID),
		command.setAssignedBy(assignedBy),
		command.setRole(role),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// AssignmentID returns the generated assignment ID from the command.
func (c AssignWorkerCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// JobID returns the job ID from the command.
func (c AssignWorkerCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the worker ID from the command.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// AssignedBy returns the assigning supervisor's ID from the command.
func (c AssignWorkerCommand) AssignedBy() kernel.UUID {
	return c.assignedBy
}

// Role returns the assignment role from the command.
func (c AssignWorkerCommand) Role() assignment.Role {
	return c.role
}

func (c *AssignWorkerCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}

func (c *AssignWorkerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *AssignWorkerCommand) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}

	c.assignedBy = assignedBy
	return nil
}

func (c *AssignWorkerCommand) setRole(role assignment.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
