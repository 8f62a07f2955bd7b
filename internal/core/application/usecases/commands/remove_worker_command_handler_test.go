package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
)

func TestRemoveWorkerCommandHandler_Handle_LastWorkerRegressesJobToNew(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.Assigned)
	workerID := kernel.NewUUID()
	active := newActiveAssignment(t, aggregate.ID(), workerID, assignment.Artisan)

	cmd, err := commands.NewRemoveWorkerCommand(aggregate.ID(), workerID)
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
			Return(active, nil).Once(),
		mockAssignmentRepo.On("Update", ctx, active).Return(nil).Once(),
		mockAssignmentRepo.On("GetAllActiveByJob", ctx, aggregate.ID()).
			Return([]*assignment.Assignment{}, nil).Once(),
		mockJobRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRemoveWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, assignment.Removed, active.Status())
	assert.Equal(t, job.New, aggregate.Stage())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockAssignmentRepo.AssertExpectations(t)
}

func TestRemoveWorkerCommandHandler_Handle_WorkStartedJobKeepsStage(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.InProgress)
	workerID := kernel.NewUUID()
	active := newActiveAssignment(t, aggregate.ID(), workerID, assignment.Artisan)

	cmd, err := commands.NewRemoveWorkerCommand(aggregate.ID(), workerID)
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
			Return(active, nil).Once(),
		mockAssignmentRepo.On("Update", ctx, active).Return(nil).Once(),
		mockAssignmentRepo.On("GetAllActiveByJob", ctx, aggregate.ID()).
			Return([]*assignment.Assignment{}, nil).Once(),
		mockJobRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRemoveWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, job.InProgress, aggregate.Stage())
	mockFactory.AssertExpectations(t)
}

func TestRemoveWorkerCommandHandler_Handle_OtherWorkersRemain(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.Assigned)
	workerID := kernel.NewUUID()
	active := newActiveAssignment(t, aggregate.ID(), workerID, assignment.Artisan)
	remaining := newActiveAssignment(t, aggregate.ID(), kernel.NewUUID(), assignment.Lead)

	cmd, err := commands.NewRemoveWorkerCommand(aggregate.ID(), workerID)
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
			Return(active, nil).Once(),
		mockAssignmentRepo.On("Update", ctx, active).Return(nil).Once(),
		mockAssignmentRepo.On("GetAllActiveByJob", ctx, aggregate.ID()).
			Return([]*assignment.Assignment{remaining}, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRemoveWorkerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, job.Assigned, aggregate.Stage())
	mockFactory.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockAssignmentRepo.AssertExpectations(t)
}
