package job_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), "JOB-25-0001", "stainless tank", job.Medium)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("should create job in New stage", func(t *testing.T) {
		id := kernel.NewUUID()

		j, err := job.NewJob(id, "JOB-25-0001", "stainless tank", job.High)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.True(t, j.ID().IsEqual(id))
		assert.Equal(t, "JOB-25-0001", j.JobNumber())
		assert.Equal(t, job.High, j.Priority())
		assert.Equal(t, job.New, j.Stage())
		assert.Nil(t, j.QcSignedBy())
		assert.Nil(t, j.SupervisorSignedBy())
		assert.Empty(t, j.StageChanges())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		j, err := job.NewJob(invalidID, "JOB-25-0001", "", job.Medium)

		require.Error(t, err)
		assert.Nil(t, j)
	})

	t.Run("should fail with empty job number", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), "", "", job.Medium)

		require.Error(t, err)
		assert.Nil(t, j)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid priority", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), "JOB-25-0001", "", job.UnknownPriority)

		require.Error(t, err)
		assert.Nil(t, j)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var j job.Job
		assert.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var j *job.Job
		assert.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})
}

func TestJob_AssignmentDerivation(t *testing.T) {
	now := time.Now()

	t.Run("first assignment advances New to Assigned", func(t *testing.T) {
		j := newTestJob(t)

		j.OnWorkerAssigned(now)

		assert.Equal(t, job.Assigned, j.Stage())
		require.Len(t, j.StageChanges(), 1)
		assert.Equal(t, job.New, j.StageChanges()[0].From)
		assert.Equal(t, job.Assigned, j.StageChanges()[0].To)
	})

	t.Run("assignment in later stage is a no-op", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.InProgress, now))
		j.ClearStageChanges()

		j.OnWorkerAssigned(now)

		assert.Equal(t, job.InProgress, j.Stage())
		assert.Empty(t, j.StageChanges())
	})

	t.Run("starting work advances to InProgress", func(t *testing.T) {
		j := newTestJob(t)
		j.OnWorkerAssigned(now)

		j.OnWorkStarted(now)

		assert.Equal(t, job.InProgress, j.Stage())
	})

	t.Run("starting work directly from New advances to InProgress", func(t *testing.T) {
		j := newTestJob(t)

		j.OnWorkStarted(now)

		assert.Equal(t, job.InProgress, j.Stage())
	})

	t.Run("removing the last worker regresses Assigned to New", func(t *testing.T) {
		j := newTestJob(t)
		j.OnWorkerAssigned(now)

		j.OnLastWorkerRemoved(now)

		assert.Equal(t, job.New, j.Stage())
	})

	t.Run("no regression once work has begun", func(t *testing.T) {
		j := newTestJob(t)
		j.OnWorkerAssigned(now)
		j.OnWorkStarted(now)

		j.OnLastWorkerRemoved(now)

		assert.Equal(t, job.InProgress, j.Stage())
	})
}

func TestJob_QualityDerivation(t *testing.T) {
	now := time.Now()

	t.Run("gate cleared advances QcInProgress to ReadyForDelivery", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.QcInProgress, now))

		j.OnQualityGateCleared(now)

		assert.Equal(t, job.ReadyForDelivery, j.Stage())
	})

	t.Run("gate cleared before QC is a no-op", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.InProgress, now))

		j.OnQualityGateCleared(now)

		assert.Equal(t, job.InProgress, j.Stage())
	})

	t.Run("gate reset regresses ReadyForDelivery to InProgress", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.ReadyForDelivery, now))

		j.OnQualityGateReset(now)

		assert.Equal(t, job.InProgress, j.Stage())
	})

	t.Run("gate reset before QC is a no-op", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.Assigned, now))

		j.OnQualityGateReset(now)

		assert.Equal(t, job.Assigned, j.Stage())
	})
}

func TestJob_Advance(t *testing.T) {
	now := time.Now()

	t.Run("moves exactly one stage forward", func(t *testing.T) {
		j := newTestJob(t)

		require.NoError(t, j.Advance(now))
		assert.Equal(t, job.Assigned, j.Stage())

		require.NoError(t, j.Advance(now))
		assert.Equal(t, job.InProgress, j.Stage())
	})

	t.Run("fails at the terminal stage", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.Invoiced, now))

		err := j.Advance(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestJob_Override(t *testing.T) {
	now := time.Now()

	t.Run("sets any valid stage directly", func(t *testing.T) {
		j := newTestJob(t)

		require.NoError(t, j.Override(job.Delivered, now))

		assert.Equal(t, job.Delivered, j.Stage())
	})

	t.Run("rejects invalid stage", func(t *testing.T) {
		j := newTestJob(t)

		require.Error(t, j.Override(job.UnknownStage, now))
	})

	t.Run("same stage records no change", func(t *testing.T) {
		j := newTestJob(t)

		require.NoError(t, j.Override(job.New, now))

		assert.Empty(t, j.StageChanges())
	})
}

func TestJob_Complete(t *testing.T) {
	now := time.Now()
	inspector := kernel.NewUUID()
	supervisor := kernel.NewUUID()

	t.Run("stamps dual sign-off and forces ReadyForDelivery", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.QcInProgress, now))

		err := j.Complete(inspector, supervisor, now)

		require.NoError(t, err)
		assert.Equal(t, job.ReadyForDelivery, j.Stage())
		require.NotNil(t, j.QcSignedBy())
		assert.True(t, j.QcSignedBy().IsEqual(inspector))
		require.NotNil(t, j.SupervisorSignedBy())
		assert.True(t, j.SupervisorSignedBy().IsEqual(supervisor))
		assert.Equal(t, now, *j.QcSignedAt())
		assert.Equal(t, now, *j.SupervisorSignedAt())
	})

	t.Run("valid when already ReadyForDelivery", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.ReadyForDelivery, now))

		require.NoError(t, j.Complete(inspector, supervisor, now))

		assert.Equal(t, job.ReadyForDelivery, j.Stage())
	})

	t.Run("rejected outside QC check stages", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.InProgress, now))

		err := j.Complete(inspector, supervisor, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "InProgress")
		assert.Contains(t, err.Error(), "QcInProgress or ReadyForDelivery")
	})

	t.Run("rejects a timestamp earlier than an existing sign-off", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.QcInProgress, now))
		require.NoError(t, j.Complete(inspector, supervisor, now))

		err := j.Complete(inspector, supervisor, now.Add(-time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid signer identifiers", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.QcInProgress, now))

		var invalid kernel.UUID
		require.Error(t, j.Complete(invalid, supervisor, now))
		require.Error(t, j.Complete(inspector, invalid, now))
	})
}

func TestJob_OnDelivered(t *testing.T) {
	now := time.Now()

	t.Run("synchronizes stage to Delivered", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.ReadyForDelivery, now))

		j.OnDelivered(now)

		assert.Equal(t, job.Delivered, j.Stage())
	})

	t.Run("never moves the stage backwards", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Override(job.Invoiced, now))

		j.OnDelivered(now)

		assert.Equal(t, job.Invoiced, j.Stage())
	})
}

func TestRestoreJob(t *testing.T) {
	now := time.Now()
	inspector := kernel.NewUUID()

	t.Run("round-trips aggregate state", func(t *testing.T) {
		j, err := job.RestoreJob(
			kernel.NewUUID(), "JOB-25-0042", "pressure vessel",
			job.Urgent, job.ReadyForDelivery,
			&inspector, &now, &inspector, &now,
		)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.Equal(t, job.ReadyForDelivery, j.Stage())
		assert.Equal(t, job.Urgent, j.Priority())
		require.NotNil(t, j.QcSignedAt())
		assert.Equal(t, now, *j.QcSignedAt())
	})

	t.Run("rejects invalid stage", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), "JOB-25-0042", "",
			job.Medium, job.Stage(99),
			nil, nil, nil, nil,
		)

		require.Error(t, err)
	})
}
