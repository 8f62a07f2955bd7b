package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobAssignmentsQueryHandler retrieves assignment records for one job.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetJobAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobAssignmentsQueryHandler creates a handler for job assignment
// queries. Requires a GORM database connection for query execution.
func NewGetJobAssignmentsQueryHandler(db *gorm.DB) GetJobAssignmentsQueryHandler {
	return GetJobAssignmentsQueryHandler{db: db}
}

// Handle executes the query and returns the job's assignments in the order
// they were made.
func (h GetJobAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetJobAssignmentsQuery,
) ([]GetJobAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			assigned_by,
			role,
			status,
			assigned_at,
			started_at,
			completed_at
		FROM assignments
		WHERE job_id = ?
		ORDER BY assigned_at
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]GetJobAssignmentsQueryResponse, 0)

	for rows.Next() {
		var item GetJobAssignmentsQueryResponse
		var id, workerID, assignedBy uuid.UUID
		var role, status int
		var assignedAt time.Time

		err = rows.Scan(
			&id,
			&workerID,
			&assignedBy,
			&role,
			&status,
			&assignedAt,
			&item.StartedAt,
			&item.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.AssignmentID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}
		if item.AssignedBy, err = kernel.UUIDFromBytes(assignedBy[:]); err != nil {
			return nil, err
		}

		item.Role = assignment.Role(role).String()
		item.Status = assignment.Status(status).String()
		item.AssignedAt = assignedAt

		assignments = append(assignments, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
