package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGenerateDeliveryNoteCommandIsNotConstructed = errors.New(
	"GenerateDeliveryNoteCommand must be created via NewGenerateDeliveryNoteCommand constructor",
)

// GenerateDeliveryNoteCommand issues the delivery note for a job that has
// cleared QC. The note number is allocated from the year-scoped sequence at
// generation time. Generating again for the same job is a no-op: a job has at
// most one delivery note.
type GenerateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID
	jobID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateDeliveryNoteCommand creates a command to issue a delivery note.
// Automatically generates a unique ID for the note.
func NewGenerateDeliveryNoteCommand(jobID kernel.UUID) (GenerateDeliveryNoteCommand, error) {
	command := GenerateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNoteID(kernel.NewUUID()),
		command.setJobID(jobID),
	); err != nil {
		return GenerateDeliveryNoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the generated note ID from the command.
func (c GenerateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// JobID returns the job ID from the command.
func (c GenerateDeliveryNoteCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *GenerateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *GenerateDeliveryNoteCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
