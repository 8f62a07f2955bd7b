package commands

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/pkg/errs"
)

// GenerateDeliveryNoteCommandHandler issues the delivery note for a job.
// The job row is locked while the next number is read from the year-scoped
// sequence, so two concurrent generations cannot allocate the same number
// for one job.
type GenerateDeliveryNoteCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewGenerateDeliveryNoteCommandHandler creates a handler for note generation.
func NewGenerateDeliveryNoteCommandHandler(uowFactory DeliveryUoWFactory) GenerateDeliveryNoteCommandHandler {
	return GenerateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation command.
// The job must have cleared QC (ReadyForDelivery or later). When the job
// already has a note the command succeeds without creating a second one.
func (h GenerateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd GenerateDeliveryNoteCommand) error {
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

	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if aggregate.Stage().Before(job.ReadyForDelivery) {
		return errs.NewInvalidStateError(
			"generate delivery note", aggregate.Stage().String(), job.ReadyForDelivery.String(),
		)
	}

	_, err = noteRepo.GetByJob(ctx, cmd.JobID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := time.Now().UTC()
	prefix := delivery.NumberPrefixFor(now)

	maxExisting, err := noteRepo.FindMaxNumberWithPrefix(ctx, prefix)
	if err != nil {
		return err
	}

	number, err := delivery.NextNumber(prefix, maxExisting)
	if err != nil {
		return err
	}

	note, err := delivery.NewNote(cmd.NoteID(), cmd.JobID(), number, now)
	if err != nil {
		return err
	}

	if err = noteRepo.Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
