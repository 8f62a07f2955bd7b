package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres/jobrepo"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// JobRepositoryIntegrationTestSuite provides integration tests for JobRepository
// using PostgreSQL containers to verify database persistence behavior.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}))
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	ctx := context.Background()

	testJob := suite.createTestJob("J-2025-0001")
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()

	err := suite.repository.Add(ctx, testJob)
	suite.Require().NoError(err)

	suite.assertJobCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_DuplicateJobNumber_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestJob("J-2025-0001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same job number, different ID: the unique index must reject it
	second := suite.createTestJob("J-2025-0001")
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertJobCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_ExistingJob_ReturnsJob() {
	ctx := context.Background()

	id := kernel.NewUUID()
	originalJob, err := job.NewJob(id, "J-2025-0042", "Gearbox overhaul", job.High)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalJob).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalJob))

	retrievedJob, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedJob.ID())
	suite.Equal("J-2025-0042", retrievedJob.JobNumber())
	suite.Equal("Gearbox overhaul", retrievedJob.Description())
	suite.Equal(job.High, retrievedJob.Priority())
	suite.Equal(job.New, retrievedJob.Stage())
	suite.Nil(retrievedJob.QcSignedBy())
	suite.Nil(retrievedJob.SupervisorSignedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedJob, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedJob)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetByNumber_ExistingJob_ReturnsJob() {
	ctx := context.Background()

	testJob := suite.createTestJob("J-2025-0100")
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testJob))

	retrievedJob, err := suite.repository.GetByNumber(ctx, "J-2025-0100")
	suite.Require().NoError(err)
	suite.Equal(testJob.ID(), retrievedJob.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_StageProgression_Persists() {
	ctx := context.Background()

	testJob := suite.createTestJob("J-2025-0007")
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testJob))

	// Move the job forward and record the dual sign-off
	qcInspectorID := kernel.NewUUID()
	supervisorID := kernel.NewUUID()
	updatedJob, err := job.RestoreJob(
		testJob.ID(),
		testJob.JobNumber(), testJob.Description(),
		testJob.Priority(),
		job.ReadyForDelivery,
		nil, nil,
		nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(updatedJob.Complete(qcInspectorID, supervisorID, time.Now().UTC()))

	suite.tracker.On("TrackAggregate", updatedJob.ID(), updatedJob).Once()
	suite.Require().NoError(suite.repository.Update(ctx, updatedJob))

	retrievedJob, err := suite.repository.Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.ReadyForDelivery, retrievedJob.Stage())
	suite.Require().NotNil(retrievedJob.QcSignedBy())
	suite.Equal(qcInspectorID, *retrievedJob.QcSignedBy())
	suite.Require().NotNil(retrievedJob.SupervisorSignedBy())
	suite.Equal(supervisorID, *retrievedJob.SupervisorSignedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_NonExistentJob_ReturnsError() {
	ctx := context.Background()

	nonExistentJob := suite.createTestJob("J-2025-9999")

	err := suite.repository.Update(ctx, nonExistentJob)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction_ReturnsJob() {
	ctx := context.Background()

	testJob := suite.createTestJob("J-2025-0055")
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testJob))

	// The row lock requires an open transaction
	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepository := jobrepo.NewGormJobRepository(tx, suite.tracker)
	lockedJob, err := txRepository.GetForUpdate(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(testJob.ID(), lockedJob.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestJob creates a basic test job with default values.
func (suite *JobRepositoryIntegrationTestSuite) createTestJob(jobNumber string) *job.Job {
	testJob, err := job.NewJob(kernel.NewUUID(), jobNumber, "Test job", job.DefaultPriority)
	suite.Require().NoError(err)
	return testJob
}

// assertJobCount verifies the number of jobs in the database.
func (suite *JobRepositoryIntegrationTestSuite) assertJobCount(expected int) {
	var count int64
	err := suite.db.Model(&jobrepo.JobDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
