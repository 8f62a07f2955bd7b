package job_test

import (
	"testing"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Next(t *testing.T) {
	t.Run("follows the fixed sequence", func(t *testing.T) {
		sequence := []job.Stage{
			job.New, job.Assigned, job.InProgress, job.QcInProgress,
			job.ReadyForDelivery, job.Delivered, job.Invoiced,
		}

		for i := 0; i < len(sequence)-1; i++ {
			next, err := sequence[i].Next()
			require.NoError(t, err)
			assert.Equal(t, sequence[i+1], next)
		}
	})

	t.Run("terminal stage has no successor", func(t *testing.T) {
		_, err := job.Invoiced.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "Invoiced")
	})

	t.Run("invalid stage is rejected", func(t *testing.T) {
		_, err := job.UnknownStage.Next()
		require.Error(t, err)

		_, err = job.Stage(42).Next()
		require.Error(t, err)
	})
}

func TestStage_Validate(t *testing.T) {
	for _, s := range job.AllStages() {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, job.UnknownStage.Validate())
	assert.Error(t, job.Stage(99).Validate())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "New", job.New.String())
	assert.Equal(t, "QcInProgress", job.QcInProgress.String())
	assert.Equal(t, "ReadyForDelivery", job.ReadyForDelivery.String())
	assert.Equal(t, "Invoiced", job.Invoiced.String())
	assert.Equal(t, "Unknown", job.UnknownStage.String())
	assert.Equal(t, "Unknown", job.Stage(99).String())
}

func TestStage_IsTerminal(t *testing.T) {
	assert.True(t, job.Invoiced.IsTerminal())

	for _, s := range []job.Stage{job.New, job.Assigned, job.InProgress, job.QcInProgress, job.ReadyForDelivery, job.Delivered} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStage_Before(t *testing.T) {
	assert.True(t, job.New.Before(job.Delivered))
	assert.True(t, job.ReadyForDelivery.Before(job.Delivered))
	assert.False(t, job.Delivered.Before(job.Delivered))
	assert.False(t, job.Invoiced.Before(job.Delivered))
}
