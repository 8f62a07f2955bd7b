package commands

import (
	"context"
	"time"
)

// DispatchDeliveryNoteCommandHandler marks a delivery note as dispatched.
type DispatchDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewDispatchDeliveryNoteCommandHandler creates a handler for note dispatch.
func NewDispatchDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) DispatchDeliveryNoteCommandHandler {
	return DispatchDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// The note must still be in Generated status.
func (h DispatchDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryNoteCommand) error {
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

	if err = note.Dispatch(cmd.DeliveredBy(), cmd.VehicleInfo(), cmd.Notes(), time.Now().UTC()); err != nil {
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
