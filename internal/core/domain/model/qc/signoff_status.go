package qc

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// SignoffStatus represents the inspection state of a single signoff.
//
// Pending is the initial state. Passed, Failed, and NotApplicable are
// verdicts recorded by an inspector; any verdict may overwrite any prior
// verdict, since re-inspection is allowed. Reset returns a signoff to
// Pending.
type SignoffStatus int

const (
	// UnknownSignoffStatus represents an invalid or undefined status.
	UnknownSignoffStatus SignoffStatus = iota

	// Pending means the checkpoint has not been inspected yet.
	Pending

	// Passed means the inspection passed.
	Passed

	// Failed means the inspection failed and the work requires rework.
	Failed

	// NotApplicable means the checkpoint does not apply to this job.
	// Not-applicable signoffs are excluded from the quality gate.
	NotApplicable
)

func getSignoffStatusStrings() map[SignoffStatus]string {
	return map[SignoffStatus]string{
		UnknownSignoffStatus: "Unknown",
		Pending:              "Pending",
		Passed:               "Passed",
		Failed:               "Failed",
		NotApplicable:        "NotApplicable",
	}
}

// Validate checks that the status is one of the defined values.
func (s SignoffStatus) Validate() error {
	if s < Pending || s > NotApplicable {
		return errs.NewValueIsInvalidErrorWithCause("signoff status is invalid", fmt.Errorf("%d is not a valid signoff status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s SignoffStatus) String() string {
	if str, ok := getSignoffStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsVerdict reports whether the status is a valid inspection verdict
// (Passed, Failed, or NotApplicable); Pending is reached only via Reset.
func (s SignoffStatus) IsVerdict() bool {
	return s == Passed || s == Failed || s == NotApplicable
}
