package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// BulkAssignWorkersResult reports the per-worker outcome of a batch
// assignment: which workers received a new assignment and which were skipped
// because they already hold an active one on the job.
type BulkAssignWorkersResult struct {
	AssignedWorkerIDs []kernel.UUID
	SkippedWorkerIDs  []kernel.UUID
}

// BulkAssignWorkersCommandHandler assigns a batch of workers to a job as
// artisans inside one transaction. Already-assigned workers are skipped and
// reported back in the result.
type BulkAssignWorkersCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewBulkAssignWorkersCommandHandler creates a handler for batch assignment.
func NewBulkAssignWorkersCommandHandler(uowFactory AssignmentUoWFactory) BulkAssignWorkersCommandHandler {
	return BulkAssignWorkersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch assignment command and returns the per-worker
// outcomes.
func (h BulkAssignWorkersCommandHandler) Handle(
	ctx context.Context,
	cmd BulkAssignWorkersCommand,
) (BulkAssignWorkersResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkAssignWorkersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkAssignWorkersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return BulkAssignWorkersResult{}, err
	}

	if aggregate.Stage() != job.New && aggregate.Stage() != job.Assigned && aggregate.Stage() != job.InProgress {
		return BulkAssignWorkersResult{}, errs.NewInvalidStateError(
			"assign workers", aggregate.Stage().String(), "New, Assigned or InProgress",
		)
	}

	active, err := assignmentRepo.GetAllActiveByJob(ctx, cmd.JobID())
	if err != nil {
		return BulkAssignWorkersResult{}, err
	}

	assigned := make(map[kernel.UUID]bool, len(active))
	for _, a := range active {
		assigned[a.WorkerID()] = true
	}

	now := time.Now().UTC()
	result := BulkAssignWorkersResult{
		AssignedWorkerIDs: make([]kernel.UUID, 0, len(cmd.WorkerIDs())),
		SkippedWorkerIDs:  make([]kernel.UUID, 0),
	}
	for _, workerID := range cmd.WorkerIDs() {
		if assigned[workerID] {
			result.SkippedWorkerIDs = append(result.SkippedWorkerIDs, workerID)
			continue
		}

		newAssignment, err := assignment.NewAssignment(
			kernel.NewUUID(), cmd.JobID(), workerID, cmd.AssignedBy(), assignment.Artisan, now,
		)
		if err != nil {
			return BulkAssignWorkersResult{}, err
		}

		if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
			return BulkAssignWorkersResult{}, err
		}

		assigned[workerID] = true
		result.AssignedWorkerIDs = append(result.AssignedWorkerIDs, workerID)
	}

	if len(result.AssignedWorkerIDs) > 0 {
		aggregate.OnWorkerAssigned(now)
		if err = jobRepo.Update(ctx, aggregate); err != nil {
			return BulkAssignWorkersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkAssignWorkersResult{}, err
	}

	return result, nil
}
