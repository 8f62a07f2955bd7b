package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkerAssignmentsQueryHandler retrieves a worker's assignments.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetWorkerAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerAssignmentsQueryHandler creates a handler for worker assignment
// queries. Requires a GORM database connection for query execution.
func NewGetWorkerAssignmentsQueryHandler(db *gorm.DB) GetWorkerAssignmentsQueryHandler {
	return GetWorkerAssignmentsQueryHandler{db: db}
}

// Handle executes the query and returns the worker's assignments, oldest
// first. Completed and removed assignments are excluded unless the query asks
// for the full history.
func (h GetWorkerAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerAssignmentsQuery,
) ([]GetWorkerAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			a.id,
			a.job_id,
			j.job_number,
			j.description,
			j.stage,
			a.role,
			a.status,
			a.assigned_at,
			a.started_at,
			a.completed_at
		FROM assignments a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.worker_id = ?
	`

	args := []any{query.WorkerID().Bytes()}
	if !query.IncludeFinished() {
		sql += ` AND a.status IN (?, ?)`
		args = append(args, int(assignment.Assigned), int(assignment.Started))
	}
	sql += ` ORDER BY a.assigned_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]GetWorkerAssignmentsQueryResponse, 0)

	for rows.Next() {
		var item GetWorkerAssignmentsQueryResponse
		var id, jobID uuid.UUID
		var stage, role, status int
		var assignedAt time.Time

		err = rows.Scan(
			&id,
			&jobID,
			&item.JobNumber,
			&item.JobDescription,
			&stage,
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
		if item.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return nil, err
		}

		item.JobStage = job.Stage(stage).String()
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
