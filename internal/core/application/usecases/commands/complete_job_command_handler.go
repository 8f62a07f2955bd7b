package commands

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/services"
)

var ErrQualityGateNotCleared = errors.New("quality gate not cleared")

// CompleteJobCommandHandler records the dual completion sign-off. The quality
// gate is re-evaluated inside the transaction so a verdict reset racing the
// completion cannot slip a job through.
type CompleteJobCommandHandler struct {
	uowFactory SignoffUoWFactory
}

// NewCompleteJobCommandHandler creates a handler for job completion.
func NewCompleteJobCommandHandler(uowFactory SignoffUoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Returns ErrQualityGateNotCleared while pending or failed sign-offs remain.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
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

	progress, err := services.NewQualityGate().Evaluate(signoffs)
	if err != nil {
		return err
	}
	if !progress.IsComplete {
		return ErrQualityGateNotCleared
	}

	if err = aggregate.Complete(cmd.QcInspectorID(), cmd.SupervisorID(), time.Now().UTC()); err != nil {
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
