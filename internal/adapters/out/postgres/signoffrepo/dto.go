// Package signoffrepo provides persistence for holding point sign-offs.
package signoffrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"

	"github.com/google/uuid"
)

// SignoffDTO represents the database structure for persisting sign-offs.
// One sign-off exists per job and holding point pair; the composite unique
// index enforces that at the storage level.
type SignoffDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_signoffs_job_holding_point"`
	HoldingPointID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_signoffs_job_holding_point"`
	SequenceNumber int
	Status         int
	SignedBy       *uuid.UUID
	SignedAt       *time.Time
	Notes          string
	CreatedAt      time.Time
}

// TableName specifies the database table name for sign-off entities.
func (SignoffDTO) TableName() string {
	return "signoffs"
}

func fromDomain(signoff *qc.Signoff) SignoffDTO {
	var signedBy *uuid.UUID
	if id := signoff.SignedBy(); id != nil {
		raw := id.Bytes()
		signedBy = &raw
	}

	return SignoffDTO{
		ID:             signoff.ID().Bytes(),
		JobID:          signoff.JobID().Bytes(),
		HoldingPointID: signoff.HoldingPointID().Bytes(),
		SequenceNumber: signoff.SequenceNumber(),
		Status:         int(signoff.Status()),
		SignedBy:       signedBy,
		SignedAt:       signoff.SignedAt(),
		Notes:          signoff.Notes(),
		CreatedAt:      signoff.CreatedAt(),
	}
}

func toDomain(dto SignoffDTO) (*qc.Signoff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	holdingPointID, err := kernel.UUIDFromBytes(dto.HoldingPointID[:])
	if err != nil {
		return nil, err
	}

	var signedBy *kernel.UUID
	if dto.SignedBy != nil {
		sID, signedErr := kernel.UUIDFromBytes((*dto.SignedBy)[:])
		if signedErr != nil {
			return nil, signedErr
		}

		signedBy = &sID
	}

	return qc.RestoreSignoff(
		id, jobID, holdingPointID,
		dto.SequenceNumber,
		qc.SignoffStatus(dto.Status),
		signedBy, dto.SignedAt,
		dto.Notes,
		dto.CreatedAt,
	)
}
