package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/services"
)

// SignHoldingPointCommandHandler records an inspection verdict and keeps the
// job's stage consistent with the resulting quality gate state: the job
// advances to ReadyForDelivery when the gate clears and falls back to
// QcInProgress when a re-inspection makes a cleared gate incomplete again.
type SignHoldingPointCommandHandler struct {
	uowFactory SignoffUoWFactory
}

// NewSignHoldingPointCommandHandler creates a handler for inspection verdicts.
func NewSignHoldingPointCommandHandler(uowFactory SignoffUoWFactory) SignHoldingPointCommandHandler {
	return SignHoldingPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-off command. Verdicts are accepted at any stage
// so the ledger stays correctable after delivery; the stage derivation methods
// only move the job while it is in QC. The job row is locked first so
// concurrent verdicts on the same job serialize and the stage derivation sees
// all of them.
func (h SignHoldingPointCommandHandler) Handle(ctx context.Context, cmd SignHoldingPointCommand) error {
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

	now := time.Now().UTC()
	if err = signoff.Sign(cmd.Verdict(), cmd.InspectorID(), now, cmd.Notes()); err != nil {
		return err
	}

	if err = signoffRepo.Update(ctx, signoff); err != nil {
		return err
	}

	signoffs, err := signoffRepo.GetAllByJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	progress, err := services.NewQualityGate().Evaluate(signoffs)
	if err != nil {
		return err
	}

	if progress.IsComplete {
		aggregate.OnQualityGateCleared(now)
	} else {
		aggregate.OnQualityGateReopened(now)
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
