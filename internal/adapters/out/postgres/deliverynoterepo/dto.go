// Package deliverynoterepo provides persistence for delivery notes.
package deliverynoterepo

import (
	"time"

	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// NoteDTO represents the database structure for persisting delivery notes.
// One note exists per job; the number is the human-facing lookup key.
type NoteDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Number            string    `gorm:"uniqueIndex"`
	Status            int
	DeliveredBy       string
	VehicleInfo       string
	ReceivedBy        string
	CustomerSignature string
	Notes             string
	CreatedAt         time.Time
	DispatchedAt      *time.Time
	DeliveredAt       *time.Time
	SignedAt          *time.Time
}

// TableName specifies the database table name for delivery note entities.
func (NoteDTO) TableName() string {
	return "delivery_notes"
}

func fromDomain(note *delivery.Note) NoteDTO {
	return NoteDTO{
		ID:                note.ID().Bytes(),
		JobID:             note.JobID().Bytes(),
		Number:            note.Number(),
		Status:            int(note.Status()),
		DeliveredBy:       note.DeliveredBy(),
		VehicleInfo:       note.VehicleInfo(),
		ReceivedBy:        note.ReceivedBy(),
		CustomerSignature: note.CustomerSignature(),
		Notes:             note.Notes(),
		CreatedAt:         note.CreatedAt(),
		DispatchedAt:      note.DispatchedAt(),
		DeliveredAt:       note.DeliveredAt(),
		SignedAt:          note.SignedAt(),
	}
}

func toDomain(dto NoteDTO) (*delivery.Note, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreNote(
		id, jobID,
		dto.Number,
		delivery.Status(dto.Status),
		dto.DeliveredBy, dto.VehicleInfo, dto.ReceivedBy, dto.CustomerSignature, dto.Notes,
		dto.CreatedAt,
		dto.DispatchedAt, dto.DeliveredAt, dto.SignedAt,
	)
}
