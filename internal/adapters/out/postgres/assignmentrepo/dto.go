// Package assignmentrepo provides persistence for worker assignments.
package assignmentrepo

import (
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignments.
// Completed and removed rows stay in the table as shop-floor history.
type AssignmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID `gorm:"type:uuid;index"`
	WorkerID    uuid.UUID `gorm:"type:uuid;index"`
	AssignedBy  uuid.UUID `gorm:"type:uuid"`
	Role        int
	Status      int `gorm:"index"`
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          aggregate.ID().Bytes(),
		JobID:       aggregate.JobID().Bytes(),
		WorkerID:    aggregate.WorkerID().Bytes(),
		AssignedBy:  aggregate.AssignedBy().Bytes(),
		Role:        int(aggregate.Role()),
		Status:      int(aggregate.Status()),
		AssignedAt:  aggregate.AssignedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	assignedBy, err := kernel.UUIDFromBytes(dto.AssignedBy[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, jobID, workerID, assignedBy,
		assignment.Role(dto.Role),
		assignment.Status(dto.Status),
		dto.AssignedAt,
		dto.StartedAt, dto.CompletedAt,
	)
}
