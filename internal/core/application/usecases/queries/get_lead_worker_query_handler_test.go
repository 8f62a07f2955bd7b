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
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLeadWorkerQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetLeadWorkerQueryHandler
	jobRepo        *jobrepo.GormJobRepository
	assignmentRepo *assignmentrepo.GormAssignmentRepository
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetLeadWorkerQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, &mockAggregateTracker{})
	suite.assignmentRepo = assignmentrepo.NewGormAssignmentRepository(db, &mockAggregateTracker{})
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, assignments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TestHandle_ReturnsActiveLead() {
	ctx := context.Background()
	seeded := suite.seedLeadJob("J-2025-0100")

	lead := suite.seedAssignment(seeded.ID(), assignment.Lead)
	suite.seedAssignment(seeded.ID(), assignment.Artisan)

	query, err := queries.NewGetLeadWorkerQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(lead.ID(), result.AssignmentID)
	suite.Equal(lead.WorkerID(), result.WorkerID)
	suite.Equal("Assigned", result.Status)
	suite.Nil(result.StartedAt)
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TestHandle_StartedLeadStillCounts() {
	ctx := context.Background()
	seeded := suite.seedLeadJob("J-2025-0101")

	lead := suite.seedAssignment(seeded.ID(), assignment.Lead)
	suite.Require().NoError(lead.Start(time.Now().UTC()))
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, lead))

	query, err := queries.NewGetLeadWorkerQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(lead.WorkerID(), result.WorkerID)
	suite.Equal("Started", result.Status)
	suite.NotNil(result.StartedAt)
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TestHandle_RemovedLeadIsNotFound() {
	ctx := context.Background()
	seeded := suite.seedLeadJob("J-2025-0102")

	lead := suite.seedAssignment(seeded.ID(), assignment.Lead)
	suite.Require().NoError(lead.Remove())
	suite.Require().NoError(suite.assignmentRepo.Update(ctx, lead))

	query, err := queries.NewGetLeadWorkerQuery(seeded.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TestHandle_CrewWithoutLeadIsNotFound() {
	ctx := context.Background()
	seeded := suite.seedLeadJob("J-2025-0103")

	suite.seedAssignment(seeded.ID(), assignment.Artisan)

	query, err := queries.NewGetLeadWorkerQuery(seeded.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLeadWorkerQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetLeadWorkerQuery constructor")
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) seedLeadJob(jobNumber string) *job.Job {
	seeded, err := job.RestoreJob(
		kernel.NewUUID(),
		jobNumber, "Test job",
		job.Medium,
		job.Assigned,
		nil, nil,
		nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.jobRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *GetLeadWorkerQueryHandlerTestSuite) seedAssignment(
	jobID kernel.UUID,
	role assignment.Role,
) *assignment.Assignment {
	seeded, err := assignment.NewAssignment(
		kernel.NewUUID(), jobID, kernel.NewUUID(), kernel.NewUUID(),
		role, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignmentRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetLeadWorkerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLeadWorkerQueryHandlerTestSuite))
}
