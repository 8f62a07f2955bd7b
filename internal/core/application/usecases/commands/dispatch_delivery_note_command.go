package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrDispatchDeliveryNoteCommandIsNotConstructed = errors.New(
		"DispatchDeliveryNoteCommand must be created via NewDispatchDeliveryNoteCommand constructor",
	)
	ErrDeliveredByIsRequired = errors.New("deliveredBy is required")
)

// DispatchDeliveryNoteCommand marks a delivery note as dispatched, recording
// who took the goods out and the vehicle used.
type DispatchDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID      kernel.UUID
	deliveredBy string
	vehicleInfo string
	notes       string

	guard guard.ConstructorGuard
}

// NewDispatchDeliveryNoteCommand creates a command to dispatch a delivery note.
func NewDispatchDeliveryNoteCommand(noteID kernel.UUID, deliveredBy, vehicleInfo, notes string) (DispatchDeliveryNoteCommand, error) {
	command := DispatchDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNoteID(noteID),
		command.setDeliveredBy(deliveredBy),
	); err != nil {
		return DispatchDeliveryNoteCommand{}, err
	}

	command.vehicleInfo = vehicleInfo
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the delivery note ID from the command.
func (c DispatchDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// DeliveredBy returns the dispatching driver or clerk from the command.
func (c DispatchDeliveryNoteCommand) DeliveredBy() string {
	return c.deliveredBy
}

// VehicleInfo returns the vehicle details from the command.
func (c DispatchDeliveryNoteCommand) VehicleInfo() string {
	return c.vehicleInfo
}

// Notes returns the dispatch notes from the command.
func (c DispatchDeliveryNoteCommand) Notes() string {
	return c.notes
}

func (c *DispatchDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *DispatchDeliveryNoteCommand) setDeliveredBy(deliveredBy string) error {
	if deliveredBy == "" {
		return ErrDeliveredByIsRequired
	}

	c.deliveredBy = deliveredBy
	return nil
}
