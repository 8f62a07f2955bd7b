// Package holdingpointrepo provides persistence for the quality gate registry
// of holding points.
package holdingpointrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"

	"github.com/google/uuid"
)

// HoldingPointDTO represents the database structure for persisting holding
// points. Sequence numbers are unique across the registry.
type HoldingPointDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SequenceNumber int       `gorm:"uniqueIndex"`
	Name           string
	Active         bool
}

// TableName specifies the database table name for holding point entities.
func (HoldingPointDTO) TableName() string {
	return "holding_points"
}

func fromDomain(holdingPoint *qc.HoldingPoint) HoldingPointDTO {
	return HoldingPointDTO{
		ID:             holdingPoint.ID().Bytes(),
		SequenceNumber: holdingPoint.SequenceNumber(),
		Name:           holdingPoint.Name(),
		Active:         holdingPoint.IsActive(),
	}
}

func toDomain(dto HoldingPointDTO) (*qc.HoldingPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return qc.RestoreHoldingPoint(id, dto.SequenceNumber, dto.Name, dto.Active)
}
