package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

func newActiveAssignment(t *testing.T, jobID, workerID kernel.UUID, role assignment.Role) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), jobID, workerID, kernel.NewUUID(), role,
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}

func TestAssignWorkerCommandHandler_Handle_FirstWorkerMovesJobToAssigned(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.New)
	workerID := kernel.NewUUID()

	cmd, err := commands.NewAssignWorkerCommand(aggregate.ID(), workerID, kernel.NewUUID(), assignment.Artisan)
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	var captured *assignment.Assignment
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("AssignmentRepository").Return(mockAssignmentRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockAssignmentRepo.On("GetActiveByJobAndWorker", ctx, aggregate.ID(), workerID).
			Return(nil, errs.NewObjectNotFoundError("assignment", workerID)).Once(),
		mockAssignmentRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			captured = a
			return true
		})).Return(nil).Once(),
		mockJobRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, workerID, captured.WorkerID())
	assert.Equal(t, assignment.Assigned, captured.Status())
	assert.Equal(t, job.Assigned, aggregate.Stage())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockAssignmentRepo.AssertExpectations(t)
}

func TestAssignWorkerCommandHandler_Handle_WorkerAlreadyAssigned(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.Assigned)
	workerID := kernel.NewUUID()
	existing := newActiveAssignment(t, aggregate.ID(), workerID, assignment.Artisan)

	cmd, err := commands.NewAssignWorkerCommand(aggregate.ID(), workerID, kernel.NewUUID(), assignment.Artisan)
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("AssignmentRepository").Return(mockAssignmentRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockAssignmentRepo.On("GetActiveByJobAndWorker", ctx, aggregate.ID(), workerID).
			Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrWorkerAlreadyAssigned)
	assert.Equal(t, job.Assigned, aggregate.Stage())
	mockFactory.AssertExpectations(t)
}

func TestAssignWorkerCommandHandler_Handle_SecondLeadRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.Assigned)
	workerID := kernel.NewUUID()
	existingLead := newActiveAssignment(t, aggregate.ID(), kernel.NewUUID(), assignment.Lead)

	cmd, err := commands.NewAssignWorkerCommand(aggregate.ID(), workerID, kernel.NewUUID(), assignment.Lead)
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("AssignmentRepository").Return(mockAssignmentRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockAssignmentRepo.On("GetActiveByJobAndWorker", ctx, aggregate.ID(), workerID).
			Return(nil, errs.NewObjectNotFoundError("assignment", workerID)).Once(),
		mockAssignmentRepo.On("GetAllActiveByJob", ctx, aggregate.ID()).
			Return([]*assignment.Assignment{existingLead}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrJobAlreadyHasLead)
	mockFactory.AssertExpectations(t)
}

func TestAssignWorkerCommandHandler_Handle_JobPastAssignableStages(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.QcInProgress)

	cmd, err := commands.NewAssignWorkerCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID(), assignment.Artisan)
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAssignmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("AssignmentRepository").Return(mockAssignmentRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidState)
	mockFactory.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}
