package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryNotesQueryHandler lists delivery note read models.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryNotesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNotesQueryHandler creates a handler for delivery note listing
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveryNotesQueryHandler(db *gorm.DB) GetDeliveryNotesQueryHandler {
	return GetDeliveryNotesQueryHandler{db: db}
}

// Handle executes the query and returns the matching notes, most recent first.
func (h GetDeliveryNotesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNotesQuery,
) ([]GetDeliveryNoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			dn.id,
			dn.job_id,
			j.job_number,
			dn.number,
			dn.status,
			dn.delivered_by,
			dn.vehicle_info,
			dn.received_by,
			dn.customer_signature,
			dn.notes,
			dn.created_at,
			dn.dispatched_at,
			dn.delivered_at,
			dn.signed_at
		FROM delivery_notes dn
		JOIN jobs j ON j.id = dn.job_id
	`

	args := make([]any, 0, 2)
	if query.Status() != nil {
		sql += ` WHERE dn.status = ?`
		args = append(args, int(*query.Status()))
	}
	sql += ` ORDER BY dn.created_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]GetDeliveryNoteQueryResponse, 0)

	for rows.Next() {
		var note GetDeliveryNoteQueryResponse
		var id, jobID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&jobID,
			&note.JobNumber,
			&note.Number,
			&status,
			&note.DeliveredBy,
			&note.VehicleInfo,
			&note.ReceivedBy,
			&note.CustomerSignature,
			&note.Notes,
			&createdAt,
			&note.DispatchedAt,
			&note.DeliveredAt,
			&note.SignedAt,
		)
		if err != nil {
			return nil, err
		}

		if note.NoteID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if note.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return nil, err
		}

		note.Status = delivery.Status(status).String()
		note.CreatedAt = createdAt

		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
