package deliverynoterepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM.
type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryNoteRepository creates a new GORM delivery note repository.
func NewGormDeliveryNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery note to the database.
func (r *GormDeliveryNoteRepository) Add(ctx context.Context, note *delivery.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	dto := fromDomain(note)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(note.ID(), note)
	return nil
}

// Update saves an existing delivery note to the database. All columns are
// written so amended notes persist even when cleared.
func (r *GormDeliveryNoteRepository) Update(ctx context.Context, note *delivery.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	dto := fromDomain(note)
	result := r.db.WithContext(ctx).Model(&NoteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(note.ID(), note)
	return nil
}

// Get retrieves a delivery note by ID.
func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Note, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery note", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByJob retrieves the delivery note issued for a job.
func (r *GormDeliveryNoteRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*delivery.Note, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto NoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery note", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a delivery note by its human-readable number.
func (r *GormDeliveryNoteRepository) GetByNumber(ctx context.Context, number string) (*delivery.Note, error) {
	var dto NoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery note", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindMaxNumberWithPrefix returns the highest note number starting with the
// given year prefix, or the empty string when none exists. Callers hold the
// job's row lock so number generation serializes.
func (r *GormDeliveryNoteRepository) FindMaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var maxNumber string
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(number), '')
		FROM delivery_notes
		WHERE number LIKE ?
	`, prefix+"%").Scan(&maxNumber).Error
	if err != nil {
		return "", err
	}

	return maxNumber, nil
}
