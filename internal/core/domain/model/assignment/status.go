package assignment

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents an assignment's activity state.
//
// State transitions:
//
//	Assigned ──> Started ──> Completed
//	    │           │
//	    ├───────────┴──> Removed
//	    └──> Completed
//
// Assigned and Started count as active; Completed and Removed are final.
type Status int

const (
	// UnknownAssignmentStatus represents an invalid or undefined status.
	UnknownAssignmentStatus Status = iota

	// Assigned means the worker is attached but has not started work.
	Assigned

	// Started means the worker is actively working on the job.
	Started

	// Completed means the worker finished their part. Final.
	Completed

	// Removed means the assignment was cancelled. Final; re-assignment
	// creates a new record.
	Removed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownAssignmentStatus: "Unknown",
		Assigned:                "Assigned",
		Started:                 "Started",
		Completed:               "Completed",
		Removed:                 "Removed",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s < Assigned || s > Removed {
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the assignment still attaches the worker to the
// job (Assigned or Started).
func (s Status) IsActive() bool {
	return s == Assigned || s == Started
}
