package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
)

// HoldingPointRepository defines the persistence contract for the quality
// gate registry of holding points.
type HoldingPointRepository interface {
	// Add persists a new holding point to storage.
	Add(ctx context.Context, holdingPoint *qc.HoldingPoint) error

	// Update persists changes to an existing holding point.
	Update(ctx context.Context, holdingPoint *qc.HoldingPoint) error

	// Get retrieves a holding point by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*qc.HoldingPoint, error)

	// GetAllActive retrieves all active holding points ordered by their
	// sequence number. Jobs entering QC get one sign-off per entry in this
	// list.
	GetAllActive(ctx context.Context) ([]*qc.HoldingPoint, error)

	// GetAll retrieves every holding point, active or not, ordered by
	// sequence number.
	GetAll(ctx context.Context) ([]*qc.HoldingPoint, error)
}
