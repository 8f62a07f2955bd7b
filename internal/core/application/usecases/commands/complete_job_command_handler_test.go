package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/pkg/errs"
)

func TestCompleteJobCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.QcInProgress)
	passed := restoreSignoff(t, aggregate.ID(), 1, qc.Passed)
	notApplicable := restoreSignoff(t, aggregate.ID(), 2, qc.NotApplicable)
	inspectorID, supervisorID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCompleteJobCommand(aggregate.ID(), inspectorID, supervisorID)
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockSignoffRepo := new(MockSignoffRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockSignoffUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("SignoffRepository").Return(mockSignoffRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockSignoffRepo.On("GetAllByJob", ctx, aggregate.ID()).
			Return([]*qc.Signoff{passed, notApplicable}, nil).Once(),
		mockJobRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteJobCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, job.ReadyForDelivery, aggregate.Stage())
	require.NotNil(t, aggregate.QcSignedBy())
	assert.True(t, aggregate.QcSignedBy().IsEqual(inspectorID))
	require.NotNil(t, aggregate.SupervisorSignedBy())
	assert.True(t, aggregate.SupervisorSignedBy().IsEqual(supervisorID))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
	mockSignoffRepo.AssertExpectations(t)
}

func TestCompleteJobCommandHandler_Handle_GateNotCleared(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.QcInProgress)
	pending := restoreSignoff(t, aggregate.ID(), 1, qc.Pending)

	cmd, err := commands.NewCompleteJobCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockSignoffRepo := new(MockSignoffRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockSignoffUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("SignoffRepository").Return(mockSignoffRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockSignoffRepo.On("GetAllByJob", ctx, aggregate.ID()).
			Return([]*qc.Signoff{pending}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteJobCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrQualityGateNotCleared)
	assert.Equal(t, job.QcInProgress, aggregate.Stage())
	mockFactory.AssertExpectations(t)
}

func TestCompleteJobCommandHandler_Handle_JobNotInQc(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := restoreJobAtStage(t, job.InProgress)

	cmd, err := commands.NewCompleteJobCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	mockJobRepo := new(MockJobRepository)
	mockSignoffRepo := new(MockSignoffRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockSignoffUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("JobRepository").Return(mockJobRepo).Once(),
		mockUoW.On("SignoffRepository").Return(mockSignoffRepo).Once(),
		mockJobRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockSignoffRepo.On("GetAllByJob", ctx, aggregate.ID()).
			Return([]*qc.Signoff{}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteJobCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// An empty checklist evaluates complete, so the domain guard on the
	// stage is what rejects the completion.
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "complete job")
	mockFactory.AssertExpectations(t)
}
