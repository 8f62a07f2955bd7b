package http

import (
	"net/http"
	"strconv"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// defaultDeliveryNotesPageSize applies when the client omits ?limit=.
const defaultDeliveryNotesPageSize = 20

// GenerateDeliveryNote handles POST /api/v1/jobs/:id/delivery-note - issues
// the delivery note for a job that cleared QC. Idempotent: a second call
// leaves the existing note untouched.
func (s *Server) GenerateDeliveryNote(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	cmd, err := commands.NewGenerateDeliveryNoteCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.GenerateDeliveryNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DispatchDeliveryNote handles POST /api/v1/delivery-notes/:id/dispatch -
// sends the goods out with a driver.
func (s *Server) DispatchDeliveryNote(ctx echo.Context) error {
	noteID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery note ID")
	}

	var request DispatchDeliveryNoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchDeliveryNoteCommand(noteID, request.DeliveredBy, request.VehicleInfo, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DispatchDeliveryNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/delivery-notes/:id/delivered - records
// receipt of the goods and moves the job to Delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	noteID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery note ID")
	}

	var request MarkDeliveredRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkDeliveredCommand(noteID, request.ReceivedBy, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordSignature handles POST /api/v1/delivery-notes/:id/signature - attaches
// the customer signature to a delivered note.
func (s *Server) RecordSignature(ctx echo.Context) error {
	noteID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery note ID")
	}

	var request RecordSignatureRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordSignatureCommand(noteID, request.CustomerName, request.SignatureData)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RecordSignature.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryNoteByJob handles GET /api/v1/jobs/:id/delivery-note - retrieves
// the note issued for a job.
func (s *Server) GetDeliveryNoteByJob(ctx echo.Context) error {
	jobID, err := uuidParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	query, err := queries.NewGetDeliveryNoteQueryByJob(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondDeliveryNote(ctx, query)
}

// GetDeliveryNote handles GET /api/v1/delivery-notes/:key - retrieves a note
// by the number printed on the paperwork, or by note ID when the key is a UUID.
// Note numbers never parse as UUIDs, so the two keys cannot collide.
func (s *Server) GetDeliveryNote(ctx echo.Context) error {
	key := ctx.Param("key")

	var query queries.GetDeliveryNoteQuery
	var err error
	if noteID, idErr := kernelUUID(key); idErr == nil {
		query, err = queries.NewGetDeliveryNoteQueryByID(noteID)
	} else {
		query, err = queries.NewGetDeliveryNoteQueryByNumber(key)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondDeliveryNote(ctx, query)
}

// ListDeliveryNotes handles GET /api/v1/delivery-notes - lists recent notes,
// optionally filtered by status via ?status=, page size via ?limit=.
func (s *Server) ListDeliveryNotes(ctx echo.Context) error {
	limit := defaultDeliveryNotesPageSize
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	var query queries.GetDeliveryNotesQuery
	var err error
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := parseDeliveryStatus(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		query, err = queries.NewGetDeliveryNotesQueryByStatus(status, limit)
	} else {
		query, err = queries.NewGetDeliveryNotesQuery(limit)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	notes, err := s.queries.DeliveryNotes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryNote, len(notes))
	for i, note := range notes {
		response[i] = toDeliveryNote(note)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) respondDeliveryNote(ctx echo.Context, query queries.GetDeliveryNoteQuery) error {
	note, err := s.queries.DeliveryNote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryNote(note))
}

func toDeliveryNote(note queries.GetDeliveryNoteQueryResponse) DeliveryNote {
	return DeliveryNote{
		NoteID:            note.NoteID.String(),
		JobID:             note.JobID.String(),
		JobNumber:         note.JobNumber,
		Number:            note.Number,
		Status:            note.Status,
		DeliveredBy:       note.DeliveredBy,
		VehicleInfo:       note.VehicleInfo,
		ReceivedBy:        note.ReceivedBy,
		CustomerSignature: note.CustomerSignature,
		Notes:             note.Notes,
		CreatedAt:         note.CreatedAt,
		DispatchedAt:      note.DispatchedAt,
		DeliveredAt:       note.DeliveredAt,
		SignedAt:          note.SignedAt,
	}
}

// GetDeliveryStatistics handles GET /api/v1/delivery-notes/statistics -
// retrieves note counts per dispatch status.
func (s *Server) GetDeliveryStatistics(ctx echo.Context) error {
	query := queries.NewGetDeliveryStatisticsQuery()

	statistics, err := s.queries.DeliveryStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryStatistics{
		TotalNotes: statistics.TotalNotes,
		Generated:  statistics.Generated,
		Dispatched: statistics.Dispatched,
		Delivered:  statistics.Delivered,
		Signed:     statistics.Signed,
	})
}
