package queries

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetWorkshopStatisticsQueryHandler aggregates shop-floor figures from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetWorkshopStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkshopStatisticsQueryHandler creates a handler for workshop
// statistics queries. Requires a GORM database connection for query execution.
func NewGetWorkshopStatisticsQueryHandler(db *gorm.DB) GetWorkshopStatisticsQueryHandler {
	return GetWorkshopStatisticsQueryHandler{db: db}
}

// Handle executes the query. Every lifecycle stage appears in JobsByStage
// even when its count is zero.
func (h GetWorkshopStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkshopStatisticsQuery,
) (GetWorkshopStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkshopStatisticsQueryResponse{}, err
	}

	var response GetWorkshopStatisticsQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT stage, COUNT(*)
		FROM jobs
		GROUP BY stage
	`).Rows()
	if err != nil {
		return GetWorkshopStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	countsByStage := make(map[job.Stage]int)

	for rows.Next() {
		var stage, count int

		if err = rows.Scan(&stage, &count); err != nil {
			return GetWorkshopStatisticsQueryResponse{}, err
		}

		countsByStage[job.Stage(stage)] = count
		response.TotalJobs += count
	}

	if err = rows.Err(); err != nil {
		return GetWorkshopStatisticsQueryResponse{}, err
	}

	response.JobsByStage = make([]StageCount, 0, len(job.AllStages()))
	for _, stage := range job.AllStages() {
		response.JobsByStage = append(response.JobsByStage, StageCount{
			Stage: stage.String(),
			Count: countsByStage[stage],
		})
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM assignments
		WHERE status IN (?, ?)
	`, int(assignment.Assigned), int(assignment.Started)).Scan(&response.ActiveAssignments).Error
	if err != nil {
		return GetWorkshopStatisticsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM delivery_notes
		WHERE status = ?
	`, int(delivery.Delivered)).Scan(&response.UnsignedDeliveredNotes).Error
	if err != nil {
		return GetWorkshopStatisticsQueryResponse{}, err
	}

	return response, nil
}
