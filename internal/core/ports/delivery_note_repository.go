package ports

import (
	"context"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/kernel"
)

// DeliveryNoteRepository defines the persistence contract for delivery notes.
type DeliveryNoteRepository interface {
	// Add persists a new delivery note to storage.
	Add(ctx context.Context, note *delivery.Note) error

	// Update persists changes to an existing delivery note.
	Update(ctx context.Context, note *delivery.Note) error

	// Get retrieves a delivery note by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Note, error)

	// GetByJob retrieves the delivery note issued for a job, or an
	// ObjectNotFoundError when the job has none.
	GetByJob(ctx context.Context, jobID kernel.UUID) (*delivery.Note, error)

	// GetByNumber retrieves a delivery note by its human-readable number.
	GetByNumber(ctx context.Context, number string) (*delivery.Note, error)

	// FindMaxNumberWithPrefix returns the highest delivery note number that
	// starts with the given year prefix, or the empty string when none
	// exists. Callers must hold a transaction that serializes number
	// generation.
	FindMaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
