package commands

import (
	"context"
	"time"
)

// ResetSignoffCommandHandler clears one sign-off back to Pending. A job that
// had already cleared the gate falls back to QcInProgress, since the gate is
// incomplete again.
type ResetSignoffCommandHandler struct {
	uowFactory SignoffUoWFactory
}

// NewResetSignoffCommandHandler creates a handler for single sign-off resets.
func NewResetSignoffCommandHandler(uowFactory SignoffUoWFactory) ResetSignoffCommandHandler {
	return ResetSignoffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command.
func (h ResetSignoffCommandHandler) Handle(ctx context.Context, cmd ResetSignoffCommand) error {
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
	signoffRepo := uow.SignoffRepository()

	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	signoff, err := signoffRepo.GetByJobAndHoldingPoint(ctx, cmd.JobID(), cmd.HoldingPointID())
	if err != nil {
		return err
	}

	signoff.Reset()
	if err = signoffRepo.Update(ctx, signoff); err != nil {
		return err
	}

	aggregate.OnQualityGateReopened(time.Now().UTC())
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
