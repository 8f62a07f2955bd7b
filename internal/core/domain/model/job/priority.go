package job

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Priority indicates how urgently a job should move through the shop floor.
// It does not affect lifecycle derivation; it exists for scheduling and
// kanban display.
type Priority int

const (
	// UnknownPriority represents an invalid or undefined priority.
	UnknownPriority Priority = iota

	Low
	Medium
	High
	Urgent
)

// DefaultPriority is applied at job intake when the caller does not specify one.
const DefaultPriority = Medium

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Low:             "Low",
		Medium:          "Medium",
		High:            "High",
		Urgent:          "Urgent",
	}
}

// Validate checks that the Priority is one of the defined values.
func (p Priority) Validate() error {
	if p < Low || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
