package qc

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrHoldingPointIsNotConstructed is returned when a HoldingPoint was not
	// created through NewHoldingPoint or RestoreHoldingPoint.
	ErrHoldingPointIsNotConstructed = errors.New("HoldingPoint must be created via NewHoldingPoint or RestoreHoldingPoint constructor")
)

// HoldingPoint is a reusable QC checkpoint definition in the catalogue.
// The sequence number defines inspection order across the checklist.
// Catalogue entries are created by administrators, never by job activity,
// and deactivation does not touch ledgers already initialized from them.
type HoldingPoint struct {
	id             kernel.UUID
	sequenceNumber int
	name           string
	active         bool

	isConstructed bool
}

// NewHoldingPoint creates an active catalogue entry. Sequence numbers start
// at 1; the caller is responsible for keeping them unique within the catalogue.
func NewHoldingPoint(id kernel.UUID, sequenceNumber int, name string) (*HoldingPoint, error) {
	hp := &HoldingPoint{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		hp.setID(id),
		hp.setSequenceNumber(sequenceNumber),
		hp.setName(name),
	); err != nil {
		return nil, err
	}

	return hp, nil
}

// RestoreHoldingPoint reconstructs a catalogue entry from persistence.
func RestoreHoldingPoint(id kernel.UUID, sequenceNumber int, name string, active bool) (*HoldingPoint, error) {
	hp := &HoldingPoint{
		isConstructed: true,
	}

	if err := errors.Join(
		hp.setID(id),
		hp.setSequenceNumber(sequenceNumber),
		hp.setName(name),
	); err != nil {
		return nil, err
	}

	hp.active = active
	return hp, nil
}

// Validate ensures the HoldingPoint was created through a constructor.
func (hp *HoldingPoint) Validate() error {
	if hp == nil || !hp.isConstructed {
		return ErrHoldingPointIsNotConstructed
	}
	return nil
}

// ID returns the catalogue entry's unique identifier.
func (hp *HoldingPoint) ID() kernel.UUID {
	return hp.id
}

// SequenceNumber returns the entry's position in the inspection order.
func (hp *HoldingPoint) SequenceNumber() int {
	return hp.sequenceNumber
}

// Name returns the checkpoint name.
func (hp *HoldingPoint) Name() string {
	return hp.name
}

// IsActive reports whether new ledgers include this checkpoint.
func (hp *HoldingPoint) IsActive() bool {
	return hp.active
}

// Deactivate excludes the checkpoint from future ledger initialization.
// Ledgers already initialized keep their signoffs.
func (hp *HoldingPoint) Deactivate() {
	hp.active = false
}

// Activate re-includes the checkpoint in future ledger initialization.
func (hp *HoldingPoint) Activate() {
	hp.active = true
}

func (hp *HoldingPoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	hp.id = id
	return nil
}

func (hp *HoldingPoint) setSequenceNumber(sequenceNumber int) error {
	if sequenceNumber < 1 {
		return errs.NewValueIsOutOfRangeError("sequenceNumber", sequenceNumber, 1, int(^uint(0)>>1))
	}
	hp.sequenceNumber = sequenceNumber
	return nil
}

func (hp *HoldingPoint) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	hp.name = name
	return nil
}
