package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrRecordSignatureCommandIsNotConstructed = errors.New(
		"RecordSignatureCommand must be created via NewRecordSignatureCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrSignatureDataIsRequired = errors.New("signature data is required")
)

// RecordSignatureCommand stores the customer's signature on a delivered note,
// finalizing the delivery record.
type RecordSignatureCommand struct { //nolint:recvcheck //using for validation
	noteID        kernel.UUID
	customerName  string
	signatureData string

	guard guard.ConstructorGuard
}

// NewRecordSignatureCommand creates a command to record a customer signature.
func NewRecordSignatureCommand(noteID kernel.UUID, customerName, signatureData string) (RecordSignatureCommand, error) {
	command := RecordSignatureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNoteID(noteID),
		command.setCustomerName(customerName),
		command.setSignatureData(signatureData),
	); err != nil {
		return RecordSignatureCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordSignatureCommand) Validate() error {
	return c.guard.Validate(ErrRecordSignatureCommandIsNotConstructed)
}

// NoteID returns the delivery note ID from the command.
func (c RecordSignatureCommand) NoteID() kernel.UUID {
	return c.noteID
}

// CustomerName returns the signing customer's name from the command.
func (c RecordSignatureCommand) CustomerName() string {
	return c.customerName
}

// SignatureData returns the signature payload from the command.
func (c RecordSignatureCommand) SignatureData() string {
	return c.signatureData
}

func (c *RecordSignatureCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *RecordSignatureCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *RecordSignatureCommand) setSignatureData(signatureData string) error {
	if signatureData == "" {
		return ErrSignatureDataIsRequired
	}

	c.signatureData = signatureData
	return nil
}
