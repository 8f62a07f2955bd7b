// Package http exposes the workshop use cases over a JSON API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live behind the command and query handlers.
package http

import (
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	CreateJob            commands.CreateJobCommandHandler
	StartQualityControl  commands.StartQualityControlCommandHandler
	SignHoldingPoint     commands.SignHoldingPointCommandHandler
	ResetSignoff         commands.ResetSignoffCommandHandler
	ResetAllSignoffs     commands.ResetAllSignoffsCommandHandler
	AssignWorker         commands.AssignWorkerCommandHandler
	BulkAssignWorkers    commands.BulkAssignWorkersCommandHandler
	SetLeadWorker        commands.SetLeadWorkerCommandHandler
	StartWork            commands.StartWorkCommandHandler
	CompleteAssignment   commands.CompleteAssignmentCommandHandler
	RemoveWorker         commands.RemoveWorkerCommandHandler
	AdvanceStage         commands.AdvanceStageCommandHandler
	SetStage             commands.SetStageCommandHandler
	CompleteJob          commands.CompleteJobCommandHandler
	GenerateDeliveryNote commands.GenerateDeliveryNoteCommandHandler
	DispatchDeliveryNote commands.DispatchDeliveryNoteCommandHandler
	MarkDelivered        commands.MarkDeliveredCommandHandler
	RecordSignature      commands.RecordSignatureCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	QcProgress         queries.GetQcProgressQueryHandler
	KanbanBoard        queries.GetKanbanBoardQueryHandler
	WorkshopStatistics queries.GetWorkshopStatisticsQueryHandler
	JobAssignments     queries.GetJobAssignmentsQueryHandler
	WorkerAssignments  queries.GetWorkerAssignmentsQueryHandler
	LeadWorker         queries.GetLeadWorkerQueryHandler
	DeliveryNote       queries.GetDeliveryNoteQueryHandler
	DeliveryNotes      queries.GetDeliveryNotesQueryHandler
	DeliveryStatistics queries.GetDeliveryStatisticsQueryHandler
}

// Server handles HTTP requests for the workshop API.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/board", s.GetKanbanBoard)
	api.GET("/statistics", s.GetWorkshopStatistics)

	api.POST("/jobs/:id/advance", s.AdvanceStage)
	api.PUT("/jobs/:id/stage", s.SetStage)
	api.POST("/jobs/:id/complete", s.CompleteJob)

	api.POST("/jobs/:id/quality-control/start", s.StartQualityControl)
	api.POST("/jobs/:id/quality-control/reset", s.ResetAllSignoffs)
	api.GET("/jobs/:id/quality-control", s.GetQcProgress)
	api.POST("/jobs/:id/holding-points/:holdingPointId/sign", s.SignHoldingPoint)
	api.POST("/jobs/:id/holding-points/:holdingPointId/reset", s.ResetSignoff)

	api.POST("/jobs/:id/workers", s.AssignWorker)
	api.POST("/jobs/:id/workers/bulk", s.BulkAssignWorkers)
	api.PUT("/jobs/:id/lead", s.SetLeadWorker)
	api.GET("/jobs/:id/lead", s.GetLeadWorker)
	api.POST("/jobs/:id/workers/:workerId/start", s.StartWork)
	api.POST("/jobs/:id/workers/:workerId/complete", s.CompleteAssignment)
	api.DELETE("/jobs/:id/workers/:workerId", s.RemoveWorker)
	api.GET("/jobs/:id/assignments", s.GetJobAssignments)
	api.GET("/workers/:id/assignments", s.GetWorkerAssignments)

	api.POST("/jobs/:id/delivery-note", s.GenerateDeliveryNote)
	api.GET("/jobs/:id/delivery-note", s.GetDeliveryNoteByJob)
	api.POST("/delivery-notes/:id/dispatch", s.DispatchDeliveryNote)
	api.POST("/delivery-notes/:id/delivered", s.MarkDelivered)
	api.POST("/delivery-notes/:id/signature", s.RecordSignature)
	api.GET("/delivery-notes", s.ListDeliveryNotes)
	api.GET("/delivery-notes/statistics", s.GetDeliveryStatistics)
	api.GET("/delivery-notes/:key", s.GetDeliveryNote)
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// kernelUUID parses a request body field as a UUID.
func kernelUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}
