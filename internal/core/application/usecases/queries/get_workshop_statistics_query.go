package queries

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var ErrGetWorkshopStatisticsQueryIsNotConstructed = errors.New(
	"GetWorkshopStatisticsQuery must be created via NewGetWorkshopStatisticsQuery constructor",
)

// GetWorkshopStatisticsQuery retrieves aggregate shop-floor figures: job
// counts per lifecycle stage, how many assignments are currently active and
// how many delivered notes still await a customer signature.
type GetWorkshopStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkshopStatisticsQuery creates a query for workshop statistics.
func NewGetWorkshopStatisticsQuery() GetWorkshopStatisticsQuery {
	return GetWorkshopStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkshopStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkshopStatisticsQueryIsNotConstructed)
}

// StageCount is the number of jobs sitting in one lifecycle stage.
type StageCount struct {
	Stage string
	Count int
}

// GetWorkshopStatisticsQueryResponse is the aggregate workshop read model.
// JobsByStage lists every lifecycle stage in order, zero counts included.
type GetWorkshopStatisticsQueryResponse struct {
	TotalJobs              int
	JobsByStage            []StageCount
	ActiveAssignments      int
	UnsignedDeliveredNotes int
}
