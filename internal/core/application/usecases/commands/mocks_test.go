package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/core/ports"
)

// Mock implementations shared by the handler tests in this package.

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByNumber(ctx context.Context, jobNumber string) (*job.Job, error) {
	args := m.Called(ctx, jobNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockHoldingPointRepository struct {
	mock.Mock
}

func (m *MockHoldingPointRepository) Add(ctx context.Context, holdingPoint *qc.HoldingPoint) error {
	args := m.Called(ctx, holdingPoint)
	return args.Error(0)
}

func (m *MockHoldingPointRepository) Update(ctx context.Context, holdingPoint *qc.HoldingPoint) error {
	args := m.Called(ctx, holdingPoint)
	return args.Error(0)
}

func (m *MockHoldingPointRepository) Get(ctx context.Context, id kernel.UUID) (*qc.HoldingPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qc.HoldingPoint), args.Error(1)
}

func (m *MockHoldingPointRepository) GetAllActive(ctx context.Context) ([]*qc.HoldingPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*qc.HoldingPoint), args.Error(1)
}

func (m *MockHoldingPointRepository) GetAll(ctx context.Context) ([]*qc.HoldingPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*qc.HoldingPoint), args.Error(1)
}

type MockSignoffRepository struct {
	mock.Mock
}

func (m *MockSignoffRepository) Add(ctx context.Context, signoff *qc.Signoff) error {
	args := m.Called(ctx, signoff)
	return args.Error(0)
}

func (m *MockSignoffRepository) Update(ctx context.Context, signoff *qc.Signoff) error {
	args := m.Called(ctx, signoff)
	return args.Error(0)
}

func (m *MockSignoffRepository) Get(ctx context.Context, id kernel.UUID) (*qc.Signoff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qc.Signoff), args.Error(1)
}

func (m *MockSignoffRepository) GetByJobAndHoldingPoint(ctx context.Context, jobID, holdingPointID kernel.UUID) (*qc.Signoff, error) {
	args := m.Called(ctx, jobID, holdingPointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qc.Signoff), args.Error(1)
}

func (m *MockSignoffRepository) GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*qc.Signoff, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]*qc.Signoff), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActiveByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByJobAndWorker(ctx context.Context, jobID, workerID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, jobID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

type MockDeliveryNoteRepository struct {
	mock.Mock
}

func (m *MockDeliveryNoteRepository) Add(ctx context.Context, note *delivery.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDeliveryNoteRepository) Update(ctx context.Context, note *delivery.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Note), args.Error(1)
}

func (m *MockDeliveryNoteRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*delivery.Note, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Note), args.Error(1)
}

func (m *MockDeliveryNoteRepository) GetByNumber(ctx context.Context, number string) (*delivery.Note, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Note), args.Error(1)
}

func (m *MockDeliveryNoteRepository) FindMaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

// MockUoW implements every narrow unit of work interface the handlers use.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) HoldingPointRepository() ports.HoldingPointRepository {
	args := m.Called()
	return args.Get(0).(ports.HoldingPointRepository)
}

func (m *MockUoW) SignoffRepository() ports.SignoffRepository {
	args := m.Called()
	return args.Get(0).(ports.SignoffRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryNoteRepository)
}

type MockJobUoWFactory struct {
	mock.Mock
}

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockQcUoWFactory struct {
	mock.Mock
}

func (m *MockQcUoWFactory) Create() commands.QcUoW {
	args := m.Called()
	return args.Get(0).(commands.QcUoW)
}

type MockSignoffUoWFactory struct {
	mock.Mock
}

func (m *MockSignoffUoWFactory) Create() commands.SignoffUoW {
	args := m.Called()
	return args.Get(0).(commands.SignoffUoW)
}

type MockAssignmentUoWFactory struct {
	mock.Mock
}

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockDeliveryUoWFactory struct {
	mock.Mock
}

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockNoteUoWFactory struct {
	mock.Mock
}

func (m *MockNoteUoWFactory) Create() commands.NoteUoW {
	args := m.Called()
	return args.Get(0).(commands.NoteUoW)
}
