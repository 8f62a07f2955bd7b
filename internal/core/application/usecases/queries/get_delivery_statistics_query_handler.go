package queries

import (
	"context"

	"workshop/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDeliveryStatisticsQueryHandler aggregates delivery note counts.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatisticsQueryHandler creates a handler for delivery
// statistics queries. Requires a GORM database connection for query execution.
func NewGetDeliveryStatisticsQueryHandler(db *gorm.DB) GetDeliveryStatisticsQueryHandler {
	return GetDeliveryStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns note counts per dispatch status.
func (h GetDeliveryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatisticsQuery,
) (GetDeliveryStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM delivery_notes
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	var response GetDeliveryStatisticsQueryResponse

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetDeliveryStatisticsQueryResponse{}, err
		}

		switch delivery.Status(status) {
		case delivery.Generated:
			response.Generated = count
		case delivery.Dispatched:
			response.Dispatched = count
		case delivery.Delivered:
			response.Delivered = count
		case delivery.Signed:
			response.Signed = count
		case delivery.UnknownStatus:
		}

		response.TotalNotes += count
	}

	if err = rows.Err(); err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	return response, nil
}
