package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// StartQualityControlCommandHandler moves a job into QC and materializes its
// sign-off checklist. One pending sign-off is created per active holding
// point; holding points deactivated later keep their already-issued
// sign-offs.
type StartQualityControlCommandHandler struct {
	uowFactory QcUoWFactory
}

// NewStartQualityControlCommandHandler creates a handler for QC entry.
func NewStartQualityControlCommandHandler(uowFactory QcUoWFactory) StartQualityControlCommandHandler {
	return StartQualityControlCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the QC entry command.
// The job must be InProgress; the job row is locked for the duration of the
// transaction so concurrent sign-off commands on the same job serialize.
func (h StartQualityControlCommandHandler) Handle(ctx context.Context, cmd StartQualityControlCommand) error {
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

	if aggregate.Stage() != job.InProgress {
		return errs.NewInvalidStateError("start quality control", aggregate.Stage().String(), job.InProgress.String())
	}

	now := time.Now().UTC()
	if err = initializeSignoffs(ctx, uow.HoldingPointRepository(), uow.SignoffRepository(), aggregate.ID(), now); err != nil {
		return err
	}

	if err = aggregate.Advance(now); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// initializeSignoffs creates a pending sign-off for every active holding
// point the job does not already have one for. Re-entry into QC keeps
// existing sign-offs and their verdicts.
func initializeSignoffs(
	ctx context.Context,
	holdingPointRepo ports.HoldingPointRepository,
	signoffRepo ports.SignoffRepository,
	jobID kernel.UUID,
	at time.Time,
) error {
	holdingPoints, err := holdingPointRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	existing, err := signoffRepo.GetAllByJob(ctx, jobID)
	if err != nil {
		return err
	}

	covered := make(map[kernel.UUID]bool, len(existing))
	for _, s := range existing {
		covered[s.HoldingPointID()] = true
	}

	for _, hp := range holdingPoints {
		if covered[hp.ID()] {
			continue
		}

		signoff, err := qc.NewSignoff(kernel.NewUUID(), jobID, hp, at)
		if err != nil {
			return err
		}

		if err = signoffRepo.Add(ctx, signoff); err != nil {
			return err
		}
	}

	return nil
}
