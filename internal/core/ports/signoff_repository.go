package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
)

// SignoffRepository defines the persistence contract for holding point
// sign-offs. Sign-offs are unique per job and holding point pair.
type SignoffRepository interface {
	// Add persists a new sign-off to storage.
	Add(ctx context.Context, signoff *qc.Signoff) error

	// Update persists changes to an existing sign-off.
	Update(ctx context.Context, signoff *qc.Signoff) error

	// Get retrieves a sign-off by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*qc.Signoff, error)

	// GetByJobAndHoldingPoint retrieves the sign-off for a specific job and
	// holding point pair, or an ObjectNotFoundError when none exists.
	GetByJobAndHoldingPoint(ctx context.Context, jobID, holdingPointID kernel.UUID) (*qc.Signoff, error)

	// GetAllByJob retrieves all sign-offs of a job ordered by the holding
	// point sequence number.
	GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*qc.Signoff, error)
}
