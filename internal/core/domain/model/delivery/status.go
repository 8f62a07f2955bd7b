package delivery

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents a delivery note's position in the dispatch chain.
//
// State transitions:
//
//	Generated ──> Dispatched ──> Delivered ──> Signed
//	    └──────────────────────────^
//
// Marking a note delivered is allowed directly from Generated for
// over-the-counter handovers that skip the vehicle run.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Generated means the note exists but the goods have not left the shop.
	Generated

	// Dispatched means the goods are in transit.
	Dispatched

	// Delivered means the goods were received at the destination.
	Delivered

	// Signed means the customer signature is on record. Final.
	Signed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Generated:     "Generated",
		Dispatched:    "Dispatched",
		Delivered:     "Delivered",
		Signed:        "Signed",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s < Generated || s > Signed {
		return errs.NewValueIsInvalidErrorWithCause("delivery note status is invalid", fmt.Errorf("%d is not a valid delivery note status", s))
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
