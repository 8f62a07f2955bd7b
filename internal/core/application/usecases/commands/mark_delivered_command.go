package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
	ErrReceivedByIsRequired = errors.New("receivedBy is required")
)

// MarkDeliveredCommand records that the goods on a delivery note were
// received at the destination. The owning job's stage follows to Delivered.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	noteID     kernel.UUID
	receivedBy string
	notes      string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a delivery note delivered.
func NewMarkDeliveredCommand(noteID kernel.UUID, receivedBy, notes string) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNoteID(noteID),
		command.setReceivedBy(receivedBy),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// NoteID returns the delivery note ID from the command.
func (c MarkDeliveredCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ReceivedBy returns who received the goods from the command.
func (c MarkDeliveredCommand) ReceivedBy() string {
	return c.receivedBy
}

// Notes returns the delivery notes from the command.
func (c MarkDeliveredCommand) Notes() string {
	return c.notes
}

func (c *MarkDeliveredCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *MarkDeliveredCommand) setReceivedBy(receivedBy string) error {
	if receivedBy == "" {
		return ErrReceivedByIsRequired
	}

	c.receivedBy = receivedBy
	return nil
}
