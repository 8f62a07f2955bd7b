package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryNoteQueryHandler retrieves one delivery note read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryNoteQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNoteQueryHandler creates a handler for delivery note queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryNoteQueryHandler(db *gorm.DB) GetDeliveryNoteQueryHandler {
	return GetDeliveryNoteQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no note
// matches the lookup key.
func (h GetDeliveryNoteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNoteQuery,
) (GetDeliveryNoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
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

	var arg any
	var key any
	switch {
	case query.NoteID() != nil:
		sql += ` WHERE dn.id = ?`
		arg = query.NoteID().Bytes()
		key = query.NoteID().String()
	case query.JobID() != nil:
		sql += ` WHERE dn.job_id = ?`
		arg = query.JobID().Bytes()
		key = query.JobID().String()
	default:
		sql += ` WHERE dn.number = ?`
		arg = query.Number()
		key = query.Number()
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, arg).Rows()
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryNoteQueryResponse{}, err
		}
		return GetDeliveryNoteQueryResponse{}, errs.NewObjectNotFoundError("delivery note", key)
	}

	var response GetDeliveryNoteQueryResponse
	var id, jobID uuid.UUID
	var status int
	var createdAt time.Time

	err = rows.Scan(
		&id,
		&jobID,
		&response.JobNumber,
		&response.Number,
		&status,
		&response.DeliveredBy,
		&response.VehicleInfo,
		&response.ReceivedBy,
		&response.CustomerSignature,
		&response.Notes,
		&createdAt,
		&response.DispatchedAt,
		&response.DeliveredAt,
		&response.SignedAt,
	)
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	if response.NoteID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	if response.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	response.Status = delivery.Status(status).String()
	response.CreatedAt = createdAt

	return response, nil
}
