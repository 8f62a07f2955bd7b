package services

import (
	"sort"

	"workshop/internal/core/domain/model/qc"
)

// Progress is a read-model snapshot of a job's quality control state,
// computed over the job's full set of holding point sign-offs.
//
// PercentComplete counts passed sign-offs against the completable total,
// where completable excludes sign-offs marked not applicable. IsComplete
// means the quality gate is cleared: nothing pending and nothing failed.
type Progress struct {
	Total           int
	Passed          int
	Failed          int
	Pending         int
	NotApplicable   int
	PercentComplete int
	IsComplete      bool
}

// QualityGate is a domain service that evaluates a job's holding point
// sign-offs as a whole.
//
// Key responsibilities:
//   - Computing aggregate QC progress across all sign-offs of a job
//   - Deciding whether the quality gate is cleared
//   - Selecting the next holding point awaiting inspection
//
// Business rules:
//   - Sign-offs marked not applicable do not count toward completion
//   - The gate is cleared only when no sign-off is pending or failed
//   - Inspection order follows the holding point sequence number
type QualityGate struct{}

// NewQualityGate creates a new QualityGate instance.
func NewQualityGate() QualityGate {
	return QualityGate{}
}

// Evaluate computes the aggregate progress over a job's sign-offs.
//
// The completion percentage is passed sign-offs over the completable total,
// rounded down. When every sign-off is marked not applicable (or the job has
// no sign-offs at all) there is nothing left to complete and the percentage
// is 100.
func (q QualityGate) Evaluate(signoffs []*qc.Signoff) (Progress, error) {
	var p Progress

	for _, s := range signoffs {
		if err := s.Validate(); err != nil {
			return Progress{}, err
		}

		p.Total++
		switch s.Status() {
		case qc.Passed:
			p.Passed++
		case qc.Failed:
			p.Failed++
		case qc.NotApplicable:
			p.NotApplicable++
		default:
			p.Pending++
		}
	}

	completable := p.Total - p.NotApplicable
	if completable == 0 {
		p.PercentComplete = 100
	} else {
		p.PercentComplete = p.Passed * 100 / completable
	}
	p.IsComplete = p.Pending == 0 && p.Failed == 0

	return p, nil
}

// NextPending returns the pending sign-off with the lowest holding point
// sequence number, or nil when no sign-off awaits inspection.
func (q QualityGate) NextPending(signoffs []*qc.Signoff) (*qc.Signoff, error) {
	pending := make([]*qc.Signoff, 0, len(signoffs))
	for _, s := range signoffs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.Status() == qc.Pending {
			pending = append(pending, s)
		}
	}

	if len(pending) == 0 {
		return nil, nil
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].SequenceNumber() < pending[j].SequenceNumber()
	})
	return pending[0], nil
}
