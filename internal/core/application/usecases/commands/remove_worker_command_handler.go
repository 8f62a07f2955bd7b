package commands

import (
	"context"
	"time"
)

// RemoveWorkerCommandHandler takes a worker off a job and derives the single
// permitted stage regression when the last active worker leaves an Assigned
// job.
type RemoveWorkerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRemoveWorkerCommandHandler creates a handler for worker removal.
func NewRemoveWorkerCommandHandler(uowFactory AssignmentUoWFactory) RemoveWorkerCommandHandler {
	return RemoveWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// The worker must hold an active assignment on the job.
func (h RemoveWorkerCommandHandler) Handle(ctx context.Context, cmd RemoveWorkerCommand) error {
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

	if err = workerAssignment.Remove(); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, workerAssignment); err != nil {
		return err
	}

	remaining, err := assignmentRepo.GetAllActiveByJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if len(remaining) == 0 {
		aggregate.OnLastWorkerRemoved(time.Now().UTC())
		if err = jobRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
