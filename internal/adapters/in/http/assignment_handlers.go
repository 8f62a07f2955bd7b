package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AssignWorker handles POST /api/v1/jobs/:id/workers - attaches a worker to a job.
func (s *Server) AssignWorker(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request AssignWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernelUUID(request.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	assignedBy, err := kernelUUID(request.AssignedBy)
	if err != nil {
		return badRequest(ctx, "Invalid assigner ID")
	}

	role, err := parseRole(request.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignWorkerCommand(jobID, workerID, assignedBy, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AssignWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// BulkAssignWorkers handles POST /api/v1/jobs/:id/workers/bulk - attaches a crew.
func (s *Server) BulkAssignWorkers(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request BulkAssignWorkersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerIDs := make([]kernel.UUID, 0, len(request.WorkerIDs))
	for _, raw := range request.WorkerIDs {
		workerID, idErr := kernelUUID(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid worker ID: "+raw)
		}
		workerIDs = append(workerIDs, workerID)
	}

	assignedBy, err := kernelUUID(request.AssignedBy)
	if err != nil {
		return badRequest(ctx, "Invalid assigner ID")
	}

	cmd, err := commands.NewBulkAssignWorkersCommand(jobID, workerIDs, assignedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.BulkAssignWorkers.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := BulkAssignWorkersResponse{
		AssignedWorkerIDs: make([]string, len(result.AssignedWorkerIDs)),
		SkippedWorkerIDs:  make([]string, len(result.SkippedWorkerIDs)),
	}
	for i, workerID := range result.AssignedWorkerIDs {
		response.AssignedWorkerIDs[i] = workerID.String()
	}
	for i, workerID := range result.SkippedWorkerIDs {
		response.SkippedWorkerIDs[i] = workerID.String()
	}

	return ctx.JSON(http.StatusCreated, response)
}

// SetLeadWorker handles PUT /api/v1/jobs/:id/lead - promotes a worker to lead.
func (s *Server) SetLeadWorker(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request SetLeadWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := kernelUUID(request.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	cmd, err := commands.NewSetLeadWorkerCommand(jobID, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.SetLeadWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWork handles POST /api/v1/jobs/:id/workers/:workerId/start - records
// that a worker began work on the job.
func (s *Server) StartWork(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	workerID, err := uuidParam(ctx, "workerId")
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	cmd, err := commands.NewStartWorkCommand(jobID, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.StartWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAssignment handles POST /api/v1/jobs/:id/workers/:workerId/complete -
// records that a worker finished their part.
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	workerID, err := uuidParam(ctx, "workerId")
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	cmd, err := commands.NewCompleteAssignmentCommand(jobID, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CompleteAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveWorker handles DELETE /api/v1/jobs/:id/workers/:workerId - detaches a
// worker from a job.
func (s *Server) RemoveWorker(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	workerID, err := uuidParam(ctx, "workerId")
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	cmd, err := commands.NewRemoveWorkerCommand(jobID, workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RemoveWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetJobAssignments handles GET /api/v1/jobs/:id/assignments - retrieves the
// assignment history of a job.
func (s *Server) GetJobAssignments(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	query, err := queries.NewGetJobAssignmentsQuery(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	assignments, err := s.queries.JobAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]JobAssignment, len(assignments))
	for i, item := range assignments {
		response[i] = JobAssignment{
			AssignmentID: item.AssignmentID.String(),
			WorkerID:     item.WorkerID.String(),
			AssignedBy:   item.AssignedBy.String(),
			Role:         item.Role,
			Status:       item.Status,
			AssignedAt:   item.AssignedAt,
			StartedAt:    item.StartedAt,
			CompletedAt:  item.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkerAssignments handles GET /api/v1/workers/:id/assignments - retrieves
// a worker's active assignments, or the full history with ?all=true.
func (s *Server) GetWorkerAssignments(ctx echo.Context) error {
	workerID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	var query queries.GetWorkerAssignmentsQuery
	if ctx.QueryParam("all") == "true" {
		query, err = queries.NewGetWorkerAssignmentsQueryAll(workerID)
	} else {
		query, err = queries.NewGetWorkerAssignmentsQuery(workerID)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	assignments, err := s.queries.WorkerAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WorkerAssignment, len(assignments))
	for i, item := range assignments {
		response[i] = WorkerAssignment{
			AssignmentID:   item.AssignmentID.String(),
			JobID:          item.JobID.String(),
			JobNumber:      item.JobNumber,
			JobDescription: item.JobDescription,
			JobStage:       item.JobStage,
			Role:           item.Role,
			Status:         item.Status,
			AssignedAt:     item.AssignedAt,
			StartedAt:      item.StartedAt,
			CompletedAt:    item.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLeadWorker handles GET /api/v1/jobs/:id/lead - retrieves the current
// lead worker of a job.
func (s *Server) GetLeadWorker(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	query, err := queries.NewGetLeadWorkerQuery(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	lead, err := s.queries.LeadWorker.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LeadWorker{
		AssignmentID: lead.AssignmentID.String(),
		WorkerID:     lead.WorkerID.String(),
		Status:       lead.Status,
		AssignedAt:   lead.AssignedAt,
		StartedAt:    lead.StartedAt,
	})
}
