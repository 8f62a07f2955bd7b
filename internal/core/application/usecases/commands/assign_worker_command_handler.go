package commands

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/pkg/errs"
)

var (
	ErrWorkerAlreadyAssigned = errors.New("worker already has an active assignment on this job")
	ErrJobAlreadyHasLead     = errors.New("job already has an active lead worker")
)

// AssignWorkerCommandHandler assigns a worker to a job. Jobs accept new
// workers only before QC begins; the first active assignment moves a New job
// to Assigned.
type AssignWorkerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
func NewAssignWorkerCommandHandler(uowFactory AssignmentUoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Rejects a worker who already holds an active assignment on the job with
// ErrWorkerAlreadyAssigned, and a second lead with ErrJobAlreadyHasLead.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
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

	if aggregate.Stage() != job.New && aggregate.Stage() != job.Assigned && aggregate.Stage() != job.InProgress {
		return errs.NewInvalidStateError(
			"assign worker", aggregate.Stage().String(), "New, Assigned or InProgress",
		)
	}

	_, err = assignmentRepo.GetActiveByJobAndWorker(ctx, cmd.JobID(), cmd.WorkerID())
	if err == nil {
		return ErrWorkerAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if cmd.Role() == assignment.Lead {
		active, err := assignmentRepo.GetAllActiveByJob(ctx, cmd.JobID())
		if err != nil {
			return err
		}
		for _, a := range active {
			if a.Role() == assignment.Lead {
				return ErrJobAlreadyHasLead
			}
		}
	}

	now := time.Now().UTC()
	newAssignment, err := assignment.NewAssignment(
		cmd.AssignmentID(), cmd.JobID(), cmd.WorkerID(), cmd.AssignedBy(), cmd.Role(), now,
	)
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
		return err
	}

	aggregate.OnWorkerAssigned(now)
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
