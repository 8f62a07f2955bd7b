package queries

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKanbanBoardQueryHandler builds the shop-floor board read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetKanbanBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetKanbanBoardQueryHandler creates a handler for kanban board queries.
// Requires a GORM database connection for query execution.
func NewGetKanbanBoardQueryHandler(db *gorm.DB) GetKanbanBoardQueryHandler {
	return GetKanbanBoardQueryHandler{db: db}
}

// Handle executes the query and returns one column per lifecycle stage, in
// lifecycle order. Jobs within a column are ordered by priority, most urgent
// first, then by intake time.
func (h GetKanbanBoardQueryHandler) Handle(
	ctx context.Context,
	query GetKanbanBoardQuery,
) ([]GetKanbanBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.job_number,
			j.description,
			j.priority,
			j.stage,
			COUNT(a.id) AS active_workers
		FROM jobs j
		LEFT JOIN assignments a ON a.job_id = j.id AND a.status IN (?, ?)
		GROUP BY j.id, j.job_number, j.description, j.priority, j.stage, j.created_at
		ORDER BY j.stage, j.priority DESC, j.created_at
	`, int(assignment.Assigned), int(assignment.Started)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobsByStage := make(map[job.Stage][]KanbanJobItem)

	for rows.Next() {
		var item KanbanJobItem
		var id uuid.UUID
		var priority, stage int

		err = rows.Scan(
			&id,
			&item.JobNumber,
			&item.Description,
			&priority,
			&stage,
			&item.ActiveWorkers,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item.JobID = jobID
		item.Priority = job.Priority(priority).String()

		jobsByStage[job.Stage(stage)] = append(jobsByStage[job.Stage(stage)], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	columns := make([]GetKanbanBoardQueryResponse, 0, len(job.AllStages()))
	for _, stage := range job.AllStages() {
		columns = append(columns, GetKanbanBoardQueryResponse{
			Stage: stage.String(),
			Jobs:  jobsByStage[stage],
		})
	}

	return columns, nil
}
