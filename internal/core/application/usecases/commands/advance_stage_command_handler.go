package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/job"
)

// AdvanceStageCommandHandler moves a job one stage forward. At the terminal
// stage the domain rejects the advance with an InvalidStateError.
type AdvanceStageCommandHandler struct {
	uowFactory QcUoWFactory
}

// NewAdvanceStageCommandHandler creates a handler for manual stage advances.
func NewAdvanceStageCommandHandler(uowFactory QcUoWFactory) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// An advance that lands on QcInProgress materializes the sign-off checklist,
// so the manual path into QC behaves exactly like StartQualityControl.
func (h AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) error {
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

	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.Advance(now); err != nil {
		return err
	}

	if aggregate.Stage() == job.QcInProgress {
		if err = initializeSignoffs(ctx, uow.HoldingPointRepository(), uow.SignoffRepository(), aggregate.ID(), now); err != nil {
			return err
		}
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
