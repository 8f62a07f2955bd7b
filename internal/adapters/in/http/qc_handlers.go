package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// StartQualityControl handles POST /api/v1/jobs/:id/quality-control/start -
// moves a job into QC and builds its sign-off checklist from the registry.
func (s *Server) StartQualityControl(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	cmd, err := commands.NewStartQualityControlCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.StartQualityControl.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignHoldingPoint handles POST /api/v1/jobs/:id/holding-points/:holdingPointId/sign -
// records an inspection verdict.
func (s *Server) SignHoldingPoint(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	holdingPointID, err := uuidParam(ctx, "holdingPointId")
	if err != nil {
		return badRequest(ctx, "Invalid holding point ID")
	}

	var request SignHoldingPointRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verdict, err := parseVerdict(request.Verdict)
	if err != nil {
		return respondError(ctx, err)
	}

	inspectorID, err := kernelUUID(request.InspectorID)
	if err != nil {
		return badRequest(ctx, "Invalid inspector ID")
	}

	cmd, err := commands.NewSignHoldingPointCommand(jobID, holdingPointID, verdict, inspectorID, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.SignHoldingPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetSignoff handles POST /api/v1/jobs/:id/holding-points/:holdingPointId/reset -
// returns one sign-off to pending.
func (s *Server) ResetSignoff(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	holdingPointID, err := uuidParam(ctx, "holdingPointId")
	if err != nil {
		return badRequest(ctx, "Invalid holding point ID")
	}

	cmd, err := commands.NewResetSignoffCommand(jobID, holdingPointID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ResetSignoff.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetAllSignoffs handles POST /api/v1/jobs/:id/quality-control/reset -
// returns the whole checklist to pending and the job to InProgress.
func (s *Server) ResetAllSignoffs(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	cmd, err := commands.NewResetAllSignoffsCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ResetAllSignoffs.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetQcProgress handles GET /api/v1/jobs/:id/quality-control - retrieves the
// sign-off checklist and completion figures of a job.
func (s *Server) GetQcProgress(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	query, err := queries.NewGetQcProgressQuery(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.queries.QcProgress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	signoffs := make([]SignoffItem, len(progress.Signoffs))
	for i, item := range progress.Signoffs {
		signoffs[i] = toSignoffItem(item)
	}

	var nextPending *SignoffItem
	if progress.NextPending != nil {
		item := toSignoffItem(*progress.NextPending)
		nextPending = &item
	}

	return ctx.JSON(http.StatusOK, QcProgress{
		JobID:           progress.JobID.String(),
		Total:           progress.Total,
		Passed:          progress.Passed,
		Failed:          progress.Failed,
		Pending:         progress.Pending,
		NotApplicable:   progress.NotApplicable,
		PercentComplete: progress.PercentComplete,
		IsComplete:      progress.IsComplete,
		NextPending:     nextPending,
		Signoffs:        signoffs,
	})
}

func toSignoffItem(item queries.SignoffItem) SignoffItem {
	var signedBy *string
	if item.SignedBy != nil {
		s := item.SignedBy.String()
		signedBy = &s
	}

	return SignoffItem{
		SignoffID:        item.SignoffID.String(),
		HoldingPointID:   item.HoldingPointID.String(),
		HoldingPointName: item.HoldingPointName,
		SequenceNumber:   item.SequenceNumber,
		Status:           item.Status,
		SignedBy:         signedBy,
		SignedAt:         item.SignedAt,
		Notes:            item.Notes,
	}
}
