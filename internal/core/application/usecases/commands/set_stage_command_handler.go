package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/job"
)

// SetStageCommandHandler applies a supervisor stage override. An override
// that lands on QcInProgress materializes the sign-off checklist so a
// corrected job still carries its inspection state.
type SetStageCommandHandler struct {
	uowFactory QcUoWFactory
}

// NewSetStageCommandHandler creates a handler for supervisor stage overrides.
func NewSetStageCommandHandler(uowFactory QcUoWFactory) SetStageCommandHandler {
	return SetStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
func (h SetStageCommandHandler) Handle(ctx context.Context, cmd SetStageCommand) error {
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
	if err = aggregate.Override(cmd.Stage(), now); err != nil {
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
