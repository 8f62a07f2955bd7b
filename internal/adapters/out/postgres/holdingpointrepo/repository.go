package holdingpointrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHoldingPointRepository implements HoldingPointRepository using GORM.
type GormHoldingPointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHoldingPointRepository creates a new GORM holding point repository.
func NewGormHoldingPointRepository(db *gorm.DB, tracker aggregateTracker) *GormHoldingPointRepository {
	return &GormHoldingPointRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new holding point to the database.
func (r *GormHoldingPointRepository) Add(ctx context.Context, holdingPoint *qc.HoldingPoint) error {
	if err := holdingPoint.Validate(); err != nil {
		return err
	}

	dto := fromDomain(holdingPoint)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(holdingPoint.ID(), holdingPoint)
	return nil
}

// Update saves an existing holding point to the database. All columns are
// written so deactivation persists.
func (r *GormHoldingPointRepository) Update(ctx context.Context, holdingPoint *qc.HoldingPoint) error {
	if err := holdingPoint.Validate(); err != nil {
		return err
	}

	dto := fromDomain(holdingPoint)
	result := r.db.WithContext(ctx).Model(&HoldingPointDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(holdingPoint.ID(), holdingPoint)
	return nil
}

// Get retrieves a holding point by ID.
func (r *GormHoldingPointRepository) Get(ctx context.Context, id kernel.UUID) (*qc.HoldingPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HoldingPointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("holding point", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all active holding points ordered by sequence number.
func (r *GormHoldingPointRepository) GetAllActive(ctx context.Context) ([]*qc.HoldingPoint, error) {
	var dtos []HoldingPointDTO
	err := r.db.WithContext(ctx).
		Order("sequence_number").
		Find(&dtos, "active = ?", true).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every holding point ordered by sequence number.
func (r *GormHoldingPointRepository) GetAll(ctx context.Context) ([]*qc.HoldingPoint, error) {
	var dtos []HoldingPointDTO
	if err := r.db.WithContext(ctx).Order("sequence_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []HoldingPointDTO) ([]*qc.HoldingPoint, error) {
	holdingPoints := make([]*qc.HoldingPoint, 0, len(dtos))
	for _, dto := range dtos {
		hp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		holdingPoints = append(holdingPoints, hp)
	}

	return holdingPoints, nil
}
