package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/core/domain/services"
)

func newSignoffs(t *testing.T, verdicts ...qc.SignoffStatus) []*qc.Signoff {
	t.Helper()

	jobID := kernel.NewUUID()
	inspector := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	signoffs := make([]*qc.Signoff, 0, len(verdicts))
	for i, verdict := range verdicts {
		hp, err := qc.NewHoldingPoint(kernel.NewUUID(), i+1, "HP")
		require.NoError(t, err)

		s, err := qc.NewSignoff(kernel.NewUUID(), jobID, hp, createdAt)
		require.NoError(t, err)

		if verdict != qc.Pending {
			require.NoError(t, s.Sign(verdict, inspector, createdAt.Add(time.Hour), ""))
		}
		signoffs = append(signoffs, s)
	}
	return signoffs
}

func Test_QualityGate_Evaluate(t *testing.T) {
	gate := services.NewQualityGate()

	tests := []struct {
		name     string
		verdicts []qc.SignoffStatus
		want     services.Progress
	}{
		{
			name:     "all pending",
			verdicts: []qc.SignoffStatus{qc.Pending, qc.Pending, qc.Pending},
			want: services.Progress{
				Total: 3, Pending: 3, PercentComplete: 0, IsComplete: false,
			},
		},
		{
			name:     "partially passed",
			verdicts: []qc.SignoffStatus{qc.Passed, qc.Passed, qc.Pending, qc.Pending},
			want: services.Progress{
				Total: 4, Passed: 2, Pending: 2, PercentComplete: 50, IsComplete: false,
			},
		},
		{
			name:     "not applicable excluded from completable total",
			verdicts: []qc.SignoffStatus{qc.Passed, qc.NotApplicable, qc.Pending},
			want: services.Progress{
				Total: 3, Passed: 1, NotApplicable: 1, Pending: 1, PercentComplete: 50, IsComplete: false,
			},
		},
		{
			name:     "failure blocks completion even at full coverage",
			verdicts: []qc.SignoffStatus{qc.Passed, qc.Failed},
			want: services.Progress{
				Total: 2, Passed: 1, Failed: 1, PercentComplete: 50, IsComplete: false,
			},
		},
		{
			name:     "gate cleared",
			verdicts: []qc.SignoffStatus{qc.Passed, qc.Passed, qc.NotApplicable},
			want: services.Progress{
				Total: 3, Passed: 2, NotApplicable: 1, PercentComplete: 100, IsComplete: true,
			},
		},
		{
			name:     "everything not applicable counts as complete",
			verdicts: []qc.SignoffStatus{qc.NotApplicable, qc.NotApplicable},
			want: services.Progress{
				Total: 2, NotApplicable: 2, PercentComplete: 100, IsComplete: true,
			},
		},
		{
			name:     "no signoffs at all counts as complete",
			verdicts: nil,
			want:     services.Progress{PercentComplete: 100, IsComplete: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gate.Evaluate(newSignoffs(t, tt.verdicts...))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_QualityGate_Evaluate_PercentageRoundsDown(t *testing.T) {
	gate := services.NewQualityGate()

	progress, err := gate.Evaluate(newSignoffs(t, qc.Passed, qc.Pending, qc.Pending))

	require.NoError(t, err)
	assert.Equal(t, 33, progress.PercentComplete)
}

func Test_QualityGate_NextPending(t *testing.T) {
	gate := services.NewQualityGate()

	t.Run("returns lowest pending sequence", func(t *testing.T) {
		signoffs := newSignoffs(t, qc.Passed, qc.Pending, qc.Pending)

		next, err := gate.NextPending(signoffs)

		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, 2, next.SequenceNumber())
	})

	t.Run("skips not applicable and failed", func(t *testing.T) {
		signoffs := newSignoffs(t, qc.NotApplicable, qc.Failed, qc.Pending)

		next, err := gate.NextPending(signoffs)

		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, 3, next.SequenceNumber())
	})

	t.Run("nil when nothing pending", func(t *testing.T) {
		signoffs := newSignoffs(t, qc.Passed, qc.NotApplicable)

		next, err := gate.NextPending(signoffs)

		require.NoError(t, err)
		assert.Nil(t, next)
	})
}

func Test_QualityGate_Evaluate_InvalidSignoff(t *testing.T) {
	gate := services.NewQualityGate()

	_, err := gate.Evaluate([]*qc.Signoff{{}})

	assert.Error(t, err)
}
