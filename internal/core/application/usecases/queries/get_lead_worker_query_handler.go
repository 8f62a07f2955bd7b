package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLeadWorkerQueryHandler retrieves the current lead worker of a job.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetLeadWorkerQueryHandler struct {
	db *gorm.DB
}

// NewGetLeadWorkerQueryHandler creates a handler for lead worker queries.
// Requires a GORM database connection for query execution.
func NewGetLeadWorkerQueryHandler(db *gorm.DB) GetLeadWorkerQueryHandler {
	return GetLeadWorkerQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the job has
// no active lead assignment.
func (h GetLeadWorkerQueryHandler) Handle(
	ctx context.Context,
	query GetLeadWorkerQuery,
) (GetLeadWorkerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLeadWorkerQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.worker_id,
			a.status,
			a.assigned_at,
			a.started_at
		FROM assignments a
		WHERE a.job_id = ? AND a.role = ? AND a.status IN (?, ?)
		ORDER BY a.assigned_at DESC
		LIMIT 1
	`, query.JobID().Bytes(), int(assignment.Lead),
		int(assignment.Assigned), int(assignment.Started)).Rows()
	if err != nil {
		return GetLeadWorkerQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetLeadWorkerQueryResponse{}, err
		}
		return GetLeadWorkerQueryResponse{}, errs.NewObjectNotFoundError("lead worker", query.JobID().String())
	}

	var response GetLeadWorkerQueryResponse
	var id, workerID uuid.UUID
	var status int
	var assignedAt time.Time

	err = rows.Scan(
		&id,
		&workerID,
		&status,
		&assignedAt,
		&response.StartedAt,
	)
	if err != nil {
		return GetLeadWorkerQueryResponse{}, err
	}

	if response.AssignmentID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetLeadWorkerQueryResponse{}, err
	}
	if response.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
		return GetLeadWorkerQueryResponse{}, err
	}

	response.Status = assignment.Status(status).String()
	response.AssignedAt = assignedAt

	return response, nil
}
