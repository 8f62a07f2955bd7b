package queries_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres/assignmentrepo"
	"workshop/internal/adapters/out/postgres/jobrepo"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWorkerAssignmentsQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetWorkerAssignmentsQueryHandler
	jobRepo        *jobrepo.GormJobRepository
	assignmentRepo *assignmentrepo.GormAssignmentRepository
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{}, &assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetWorkerAssignmentsQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, &mockAggregateTracker{})
	suite.assignmentRepo = assignmentrepo.NewGormAssignmentRepository(db, &mockAggregateTracker{})
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, assignments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TestHandle_ActiveExcludesFinished() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	seeded := suite.seedWorkerJob("J-2025-0200")

	open := suite.seedWorkerAssignment(seeded.ID(), workerID)

	finished := suite.seedWorkerAssignment(seeded.ID(), workerID)
	suite.Require().NoError(finished.Start(time.Now().UTC()))
	suite.Require().NoError(finished.Complete(time.Now().UTC()))
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, finished))

	query, err := queries.NewGetWorkerAssignmentsQuery(workerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(open.ID(), result[0].AssignmentID)
	suite.Equal("Assigned", result[0].Status)
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TestHandle_AllIncludesFullHistory() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	seeded := suite.seedWorkerJob("J-2025-0201")

	suite.seedWorkerAssignment(seeded.ID(), workerID)

	finished := suite.seedWorkerAssignment(seeded.ID(), workerID)
	suite.Require().NoError(finished.Start(time.Now().UTC()))
	suite.Require().NoError(finished.Complete(time.Now().UTC()))
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, finished))

	removed := suite.seedWorkerAssignment(seeded.ID(), workerID)
	suite.Require().NoError(removed.Remove())
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, removed))

	query, err := queries.NewGetWorkerAssignmentsQueryAll(workerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	statuses := make(map[string]int, len(result))
	for _, item := range result {
		suite.Equal(seeded.ID(), item.JobID)
		suite.Equal("J-2025-0201", item.JobNumber)
		statuses[item.Status]++
	}
	suite.Equal(1, statuses["Assigned"])
	suite.Equal(1, statuses["Completed"])
	suite.Equal(1, statuses["Removed"])
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TestHandle_HistoryCarriesCompletedAt() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	seeded := suite.seedWorkerJob("J-2025-0202")

	finished := suite.seedWorkerAssignment(seeded.ID(), workerID)
	suite.Require().NoError(finished.Start(time.Now().UTC()))
	suite.Require().NoError(finished.Complete(time.Now().UTC()))
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, finished))

	query, err := queries.NewGetWorkerAssignmentsQueryAll(workerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().NotNil(result[0].CompletedAt)
	suite.WithinDuration(*finished.CompletedAt(), *result[0].CompletedAt, time.Second)
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TestHandle_OtherWorkersExcluded() {
	ctx := context.Background()
	workerID := kernel.NewUUID()
	seeded := suite.seedWorkerJob("J-2025-0203")

	suite.seedWorkerAssignment(seeded.ID(), workerID)
	suite.seedWorkerAssignment(seeded.ID(), kernel.NewUUID())

	query, err := queries.NewGetWorkerAssignmentsQueryAll(workerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetWorkerAssignmentsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via a NewGetWorkerAssignmentsQuery* constructor")
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) seedWorkerJob(jobNumber string) *job.Job {
	seeded, err := job.RestoreJob(
		kernel.NewUUID(),
		jobNumber, "Test job",
		job.Medium,
		job.InProgress,
		nil, nil,
		nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.jobRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *GetWorkerAssignmentsQueryHandlerTestSuite) seedWorkerAssignment(
	jobID, workerID kernel.UUID,
) *assignment.Assignment {
	seeded, err := assignment.NewAssignment(
		kernel.NewUUID(), jobID, workerID, kernel.NewUUID(),
		assignment.Artisan, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignmentRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetWorkerAssignmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWorkerAssignmentsQueryHandlerTestSuite))
}
