package commands

import (
	"context"
	"time"
)

// ResetAllSignoffsCommandHandler clears a job's entire sign-off checklist and
// regresses the job to InProgress for rework.
type ResetAllSignoffsCommandHandler struct {
	uowFactory SignoffUoWFactory
}

// NewResetAllSignoffsCommandHandler creates a handler for full checklist resets.
func NewResetAllSignoffsCommandHandler(uowFactory SignoffUoWFactory) ResetAllSignoffsCommandHandler {
	return ResetAllSignoffsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command.
func (h ResetAllSignoffsCommandHandler) Handle(ctx context.Context, cmd ResetAllSignoffsCommand) error {
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

	signoffs, err := signoffRepo.GetAllByJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	for _, signoff := range signoffs {
		signoff.Reset()
		if err = signoffRepo.Update(ctx, signoff); err != nil {
			return err
		}
	}

	aggregate.OnQualityGateReset(time.Now().UTC())
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
