package commands

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
)

// SetLeadWorkerCommandHandler moves the lead role to another active worker on
// the job. The previous lead, if any, becomes an artisan in the same
// transaction so a job never carries two leads.
type SetLeadWorkerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewSetLeadWorkerCommandHandler creates a handler for lead reassignment.
func NewSetLeadWorkerCommandHandler(uowFactory AssignmentUoWFactory) SetLeadWorkerCommandHandler {
	return SetLeadWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lead change command.
// The worker must hold an active assignment on the job.
func (h SetLeadWorkerCommandHandler) Handle(ctx context.Context, cmd SetLeadWorkerCommand) error {
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

	if _, err := jobRepo.GetForUpdate(ctx, cmd.JobID()); err != nil {
		return err
	}

	promoted, err := assignmentRepo.GetActiveByJobAndWorker(ctx, cmd.JobID(), cmd.WorkerID())
	if err != nil {
		return err
	}

	active, err := assignmentRepo.GetAllActiveByJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	for _, a := range active {
		if a.Role() != assignment.Lead || a.ID().IsEqual(promoted.ID()) {
			continue
		}

		if err = a.DemoteToArtisan(); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, a); err != nil {
			return err
		}
	}

	if err = promoted.PromoteToLead(); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, promoted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
