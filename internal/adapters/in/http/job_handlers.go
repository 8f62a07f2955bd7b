package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateJob handles POST /api/v1/jobs - registers a job at intake.
func (s *Server) CreateJob(ctx echo.Context) error {
	var request CreateJobRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority, err := parsePriority(request.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(request.JobNumber, request.Description, priority)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CreateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdvanceStage handles POST /api/v1/jobs/:id/advance - moves a job one stage forward.
func (s *Server) AdvanceStage(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	cmd, err := commands.NewAdvanceStageCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AdvanceStage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetStage handles PUT /api/v1/jobs/:id/stage - forces a job into a stage.
func (s *Server) SetStage(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request SetStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage, err := parseStage(request.Stage)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetStageCommand(jobID, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.SetStage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteJob handles POST /api/v1/jobs/:id/complete - records the dual sign-off.
func (s *Server) CompleteJob(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request CompleteJobRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	qcInspectorID, err := kernelUUID(request.QcInspectorID)
	if err != nil {
		return badRequest(ctx, "Invalid QC inspector ID")
	}

	supervisorID, err := kernelUUID(request.SupervisorID)
	if err != nil {
		return badRequest(ctx, "Invalid supervisor ID")
	}

	cmd, err := commands.NewCompleteJobCommand(jobID, qcInspectorID, supervisorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CompleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKanbanBoard handles GET /api/v1/board - retrieves the shop-floor board.
func (s *Server) GetKanbanBoard(ctx echo.Context) error {
	query := queries.NewGetKanbanBoardQuery()

	columns, err := s.queries.KanbanBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]KanbanColumn, len(columns))
	for i, column := range columns {
		jobs := make([]KanbanJob, len(column.Jobs))
		for j, item := range column.Jobs {
			jobs[j] = KanbanJob{
				JobID:         item.JobID.String(),
				JobNumber:     item.JobNumber,
				Description:   item.Description,
				Priority:      item.Priority,
				ActiveWorkers: item.ActiveWorkers,
			}
		}

		response[i] = KanbanColumn{
			Stage: column.Stage,
			Jobs:  jobs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkshopStatistics handles GET /api/v1/statistics - retrieves aggregate figures.
func (s *Server) GetWorkshopStatistics(ctx echo.Context) error {
	query := queries.NewGetWorkshopStatisticsQuery()

	statistics, err := s.queries.WorkshopStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	jobsByStage := make([]StageCount, len(statistics.JobsByStage))
	for i, stageCount := range statistics.JobsByStage {
		jobsByStage[i] = StageCount{
			Stage: stageCount.Stage,
			Count: stageCount.Count,
		}
	}

	return ctx.JSON(http.StatusOK, WorkshopStatistics{
		TotalJobs:              statistics.TotalJobs,
		JobsByStage:            jobsByStage,
		ActiveAssignments:      statistics.ActiveAssignments,
		UnsignedDeliveredNotes: statistics.UnsignedDeliveredNotes,
	})
}
