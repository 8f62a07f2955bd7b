package assignment

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Role describes a worker's function on a job. One active Lead at most is
// the convention on the floor, promoted through the set-lead-worker use case.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Lead is the worker responsible for the job on the floor.
	Lead

	// Artisan is a regular worker on the job. Default for new assignments.
	Artisan
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Lead:        "Lead",
		Artisan:     "Artisan",
	}
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r != Lead && r != Artisan {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
