package commands

import (
	"errors"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrJobNumberIsRequired = errors.New("job number is required")
)

// CreateJobCommand represents a request to register a new job in the workshop.
// Encapsulates all data needed to create a job aggregate at the start of its
// lifecycle.
//
// Example:
//
//	cmd, err := NewCreateJobCommand("J-2025-0141", "Rebuild gearbox housing", job.High)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
//	fmt.Printf("Created job with ID: %s", cmd.JobID())
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	jobNumber   string
	description string
	priority    job.Priority

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new job.
// Automatically generates a unique ID for the job and validates that the job
// number is not empty and the priority is a defined value.
func NewCreateJobCommand(jobNumber, description string, priority job.Priority) (CreateJobCommand, error) {
	command := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(kernel.NewUUID()),
		command.setJobNumber(jobNumber),
		command.setPriority(priority),
	); err != nil {
		return CreateJobCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the generated job ID from the command.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// JobNumber returns the job number from the command.
func (c CreateJobCommand) JobNumber() string {
	return c.jobNumber
}

// Description returns the job description from the command.
func (c CreateJobCommand) Description() string {
	return c.description
}

// Priority returns the job priority from the command.
func (c CreateJobCommand) Priority() job.Priority {
	return c.priority
}

func (c *CreateJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobID = id
	return nil
}

func (c *CreateJobCommand) setJobNumber(jobNumber string) error {
	if jobNumber == "" {
		return ErrJobNumberIsRequired
	}

	c.jobNumber = jobNumber
	return nil
}

func (c *CreateJobCommand) setPriority(priority job.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
