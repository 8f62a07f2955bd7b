package signoffrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSignoffRepository implements SignoffRepository using GORM.
type GormSignoffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSignoffRepository creates a new GORM sign-off repository.
func NewGormSignoffRepository(db *gorm.DB, tracker aggregateTracker) *GormSignoffRepository {
	return &GormSignoffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sign-off to the database.
func (r *GormSignoffRepository) Add(ctx context.Context, signoff *qc.Signoff) error {
	if err := signoff.Validate(); err != nil {
		return err
	}

	dto := fromDomain(signoff)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(signoff.ID(), signoff)
	return nil
}

// Update saves an existing sign-off to the database. All columns are written
// so a reset clears the inspector and timestamp.
func (r *GormSignoffRepository) Update(ctx context.Context, signoff *qc.Signoff) error {
	if err := signoff.Validate(); err != nil {
		return err
	}

	dto := fromDomain(signoff)
	result := r.db.WithContext(ctx).Model(&SignoffDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(signoff.ID(), signoff)
	return nil
}

// Get retrieves a sign-off by ID.
func (r *GormSignoffRepository) Get(ctx context.Context, id kernel.UUID) (*qc.Signoff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SignoffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("signoff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByJobAndHoldingPoint retrieves the sign-off for a job and holding point pair.
func (r *GormSignoffRepository) GetByJobAndHoldingPoint(
	ctx context.Context,
	jobID, holdingPointID kernel.UUID,
) (*qc.Signoff, error) {
	if err := errors.Join(jobID.Validate(), holdingPointID.Validate()); err != nil {
		return nil, err
	}

	var dto SignoffDTO
	err := r.db.WithContext(ctx).
		First(&dto, "job_id = ? AND holding_point_id = ?", jobID.Bytes(), holdingPointID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"signoff",
				fmt.Sprintf("job %s holding point %s", jobID.String(), holdingPointID.String()),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByJob retrieves all sign-offs of a job ordered by sequence number.
func (r *GormSignoffRepository) GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*qc.Signoff, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SignoffDTO
	err := r.db.WithContext(ctx).
		Order("sequence_number").
		Find(&dtos, "job_id = ?", jobID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	signoffs := make([]*qc.Signoff, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		signoffs = append(signoffs, s)
	}

	return signoffs, nil
}
