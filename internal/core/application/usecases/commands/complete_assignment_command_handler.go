package commands

import (
	"context"
	"time"
)

// CompleteAssignmentCommandHandler marks a worker's assignment as completed.
type CompleteAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCompleteAssignmentCommandHandler creates a handler for assignment completion.
func NewCompleteAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// The worker must hold an active assignment on the job.
func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()

	workerAssignment, err := assignmentRepo.GetActiveByJobAndWorker(ctx, cmd.JobID(), cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = workerAssignment.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, workerAssignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
