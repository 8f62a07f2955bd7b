package commands

import (
	"context"
	"time"
)

// MarkDeliveredCommandHandler records goods receipt on a delivery note and
// synchronizes the owning job's stage to Delivered in the same transaction.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
// The note must be Generated or Dispatched.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	jobRepo := uow.JobRepository()
	noteRepo := uow.DeliveryNoteRepository()

	note, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	aggregate, err := jobRepo.GetForUpdate(ctx, note.JobID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = note.MarkDelivered(cmd.ReceivedBy(), cmd.Notes(), now); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	aggregate.OnDelivered(now)
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
