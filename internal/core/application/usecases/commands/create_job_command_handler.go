package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/pkg/errs"
)

var ErrJobNumberAlreadyTaken = errors.New("job number already taken")

// CreateJobCommandHandler handles the business logic for job registration.
// Creates and persists new job aggregates at the start of the lifecycle.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job registration.
// Requires a JobUoWFactory for transactional persistence operations.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
// Rejects duplicate job numbers with ErrJobNumberAlreadyTaken, then creates
// the job aggregate in the New stage and persists it within a transaction.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
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

	_, err := jobRepo.GetByNumber(ctx, cmd.JobNumber())
	if err == nil {
		return ErrJobNumberAlreadyTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := job.NewJob(cmd.JobID(), cmd.JobNumber(), cmd.Description(), cmd.Priority())
	if err != nil {
		return err
	}

	if err = jobRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
