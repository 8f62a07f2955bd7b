package commands

import (
	"context"
	"time"
)

// StartWorkCommandHandler marks a worker's assignment as started and derives
// the job's transition to InProgress.
type StartWorkCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewStartWorkCommandHandler creates a handler for starting work.
func NewStartWorkCommandHandler(uowFactory AssignmentUoWFactory) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start work command.
// The worker must hold an assignment in Assigned status on the job.
func (h StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) error {
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
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	workerAssignment, err := assignmentRepo.GetActiveByJobAndWorker(ctx, cmd.JobID(), cmd.WorkerID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = workerAssignment.Start(now); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, workerAssignment); err != nil {
		return err
	}

	aggregate.OnWorkStarted(now)
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
