package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByJob retrieves every assignment of a job, newest first.
func (r *GormAssignmentRepository) GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("assigned_at DESC").
		Find(&dtos, "job_id = ?", jobID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByJob retrieves the active assignments of a job.
func (r *GormAssignmentRepository) GetAllActiveByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "job_id = ? AND status IN ?", jobID.Bytes(), activeStatuses()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByWorker retrieves the active assignments of a worker across all jobs.
func (r *GormAssignmentRepository) GetAllActiveByWorker(ctx context.Context, workerID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "worker_id = ? AND status IN ?", workerID.Bytes(), activeStatuses()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveByJobAndWorker retrieves the active assignment of a worker on a job.
func (r *GormAssignmentRepository) GetActiveByJobAndWorker(
	ctx context.Context,
	jobID, workerID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := errors.Join(jobID.Validate(), workerID.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "job_id = ? AND worker_id = ? AND status IN ?", jobID.Bytes(), workerID.Bytes(), activeStatuses()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"assignment",
				fmt.Sprintf("job %s worker %s", jobID.String(), workerID.String()),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

func activeStatuses() []int {
	return []int{int(assignment.Assigned), int(assignment.Started)}
}

func toDomainSlice(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
