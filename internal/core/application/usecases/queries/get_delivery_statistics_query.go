package queries

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var ErrGetDeliveryStatisticsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatisticsQuery must be created via NewGetDeliveryStatisticsQuery constructor",
)

// GetDeliveryStatisticsQuery retrieves delivery note counts per dispatch
// status. Used by the dispatch desk to see how much paperwork is still open.
type GetDeliveryStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatisticsQuery creates a query for delivery statistics.
func NewGetDeliveryStatisticsQuery() GetDeliveryStatisticsQuery {
	return GetDeliveryStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatisticsQueryIsNotConstructed)
}

// GetDeliveryStatisticsQueryResponse is the delivery paperwork read model.
// A note counts as open until the customer signature is on record.
type GetDeliveryStatisticsQueryResponse struct {
	TotalNotes int
	Generated  int
	Dispatched int
	Delivered  int
	Signed     int
}
