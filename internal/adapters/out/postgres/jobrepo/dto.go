// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// The job number carries a unique index because it doubles as the
// human-facing lookup key.
type JobDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobNumber          string    `gorm:"uniqueIndex"`
	Description        string
	Priority           int
	Stage              int `gorm:"index"`
	QcSignedBy         *uuid.UUID
	QcSignedAt         *time.Time
	SupervisorSignedBy *uuid.UUID
	SupervisorSignedAt *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var qcSignedBy, supervisorSignedBy *uuid.UUID
	if id := aggregate.QcSignedBy(); id != nil {
		raw := id.Bytes()
		qcSignedBy = &raw
	}
	if id := aggregate.SupervisorSignedBy(); id != nil {
		raw := id.Bytes()
		supervisorSignedBy = &raw
	}

	return JobDTO{
		ID:                 aggregate.ID().Bytes(),
		JobNumber:          aggregate.JobNumber(),
		Description:        aggregate.Description(),
		Priority:           int(aggregate.Priority()),
		Stage:              int(aggregate.Stage()),
		QcSignedBy:         qcSignedBy,
		QcSignedAt:         aggregate.QcSignedAt(),
		SupervisorSignedBy: supervisorSignedBy,
		SupervisorSignedAt: aggregate.SupervisorSignedAt(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including sign-offs using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	qcSignedBy, err := optionalUUID(dto.QcSignedBy)
	if err != nil {
		return nil, err
	}

	supervisorSignedBy, err := optionalUUID(dto.SupervisorSignedBy)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		dto.JobNumber, dto.Description,
		job.Priority(dto.Priority),
		job.Stage(dto.Stage),
		qcSignedBy, dto.QcSignedAt,
		supervisorSignedBy, dto.SupervisorSignedAt,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
