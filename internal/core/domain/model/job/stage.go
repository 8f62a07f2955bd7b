package job

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Stage represents a job's position in the fixed shop-floor lifecycle.
// It implements a linear state machine:
//
//	New -> Assigned -> InProgress -> QcInProgress -> ReadyForDelivery -> Delivered -> Invoiced
//
// Every stage is reachable only from its immediate predecessor. The single
// permitted regression is Assigned -> New, performed by the Job aggregate when
// the last active assignment is removed; once work has started (InProgress or
// later) the stage never moves backwards through derivation.
type Stage int

const (
	// UnknownStage represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	UnknownStage Stage = iota

	// New is the initial stage at job intake: no workers attached yet.
	New

	// Assigned indicates at least one worker holds an active assignment.
	Assigned

	// InProgress indicates a worker has started work on the job.
	InProgress

	// QcInProgress indicates the job is under quality-control inspection.
	QcInProgress

	// ReadyForDelivery indicates every quality gate has been cleared.
	ReadyForDelivery

	// Delivered indicates the delivery note for the job has been received.
	Delivered

	// Invoiced is the terminal stage; no further transitions are allowed.
	Invoiced
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage:     "Unknown",
		New:              "New",
		Assigned:         "Assigned",
		InProgress:       "InProgress",
		QcInProgress:     "QcInProgress",
		ReadyForDelivery: "ReadyForDelivery",
		Delivered:        "Delivered",
		Invoiced:         "Invoiced",
	}
}

// getNextStages returns the transition table of the lifecycle: each stage maps
// to its immediate successor. Invoiced is terminal and has no entry.
func getNextStages() map[Stage]Stage {
	return map[Stage]Stage{
		New:              Assigned,
		Assigned:         InProgress,
		InProgress:       QcInProgress,
		QcInProgress:     ReadyForDelivery,
		ReadyForDelivery: Delivered,
		Delivered:        Invoiced,
	}
}

// Validate checks that the Stage is one of the defined lifecycle stages.
// UnknownStage (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if s < New || s > Invoiced {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the stage has no successor.
func (s Stage) IsTerminal() bool {
	_, ok := getNextStages()[s]
	return !ok && s.Validate() == nil
}

// Next returns the immediate successor stage along the fixed sequence.
// Returns an InvalidStateError at the terminal stage or for invalid values.
func (s Stage) Next() (Stage, error) {
	if err := s.Validate(); err != nil {
		return UnknownStage, err
	}
	next, ok := getNextStages()[s]
	if !ok {
		return UnknownStage, errs.NewInvalidStateError("advance job", s.String(), "any non-terminal stage")
	}
	return next, nil
}

// Before reports whether the stage precedes other in the lifecycle order.
func (s Stage) Before(other Stage) bool {
	return s < other
}

// AllStages returns every valid stage in lifecycle order.
// Used by statistics and kanban aggregations.
func AllStages() []Stage {
	return []Stage{New, Assigned, InProgress, QcInProgress, ReadyForDelivery, Delivered, Invoiced}
}
