package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
)

// GetQcProgressQueryHandler reads a job's sign-off checklist straight from
// the database and computes the aggregate completion figures.
type GetQcProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetQcProgressQueryHandler creates a handler for QC progress queries.
// Requires a GORM database connection for query execution.
func NewGetQcProgressQueryHandler(db *gorm.DB) GetQcProgressQueryHandler {
	return GetQcProgressQueryHandler{db: db}
}

// Handle executes the query. The checklist rows come back ordered by holding
// point sequence, so the first pending row is the next inspection station.
func (h GetQcProgressQueryHandler) Handle(
	ctx context.Context,
	query GetQcProgressQuery,
) (GetQcProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQcProgressQueryResponse{}, err
	}

	response := GetQcProgressQueryResponse{
		JobID:    query.JobID(),
		Signoffs: make([]SignoffItem, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.holding_point_id,
			hp.name,
			s.sequence_number,
			s.status,
			s.signed_by,
			s.signed_at,
			s.notes
		FROM signoffs s
		JOIN holding_points hp ON hp.id = s.holding_point_id
		WHERE s.job_id = ?
		ORDER BY s.sequence_number
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return GetQcProgressQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item SignoffItem
		var id, holdingPointID uuid.UUID
		var signedBy *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&holdingPointID,
			&item.HoldingPointName,
			&item.SequenceNumber,
			&status,
			&signedBy,
			&item.SignedAt,
			&item.Notes,
		)
		if err != nil {
			return GetQcProgressQueryResponse{}, err
		}

		if item.SignoffID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetQcProgressQueryResponse{}, err
		}
		if item.HoldingPointID, err = kernel.UUIDFromBytes(holdingPointID[:]); err != nil {
			return GetQcProgressQueryResponse{}, err
		}
		if signedBy != nil {
			signerID, idErr := kernel.UUIDFromBytes(signedBy[:])
			if idErr != nil {
				return GetQcProgressQueryResponse{}, idErr
			}
			item.SignedBy = &signerID
		}

		signoffStatus := qc.SignoffStatus(status)
		item.Status = signoffStatus.String()

		response.Total++
		switch signoffStatus {
		case qc.Passed:
			response.Passed++
		case qc.Failed:
			response.Failed++
		case qc.NotApplicable:
			response.NotApplicable++
		default:
			response.Pending++
			if response.NextPending == nil {
				pending := item
				response.NextPending = &pending
			}
		}

		response.Signoffs = append(response.Signoffs, item)
	}
	if err = rows.Err(); err != nil {
		return GetQcProgressQueryResponse{}, err
	}

	completable := response.Total - response.NotApplicable
	if completable == 0 {
		response.PercentComplete = 100
	} else {
		response.PercentComplete = response.Passed * 100 / completable
	}
	response.IsComplete = response.Pending == 0 && response.Failed == 0

	return response, nil
}
