package commands

import (
	"context"
	"time"
)

// RecordSignatureCommandHandler stores the customer signature on a delivered
// note, moving it to its final Signed status.
type RecordSignatureCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewRecordSignatureCommandHandler creates a handler for signature capture.
func NewRecordSignatureCommandHandler(uowFactory NoteUoWFactory) RecordSignatureCommandHandler {
	return RecordSignatureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signature command.
// The note must be in Delivered status.
func (h RecordSignatureCommandHandler) Handle(ctx context.Context, cmd RecordSignatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.DeliveryNoteRepository()

	note, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	if err = note.RecordSignature(cmd.CustomerName(), cmd.SignatureData(), time.Now().UTC()); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
