package job

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")
)

// StageChange records a single lifecycle transition of a job. The aggregate
// accumulates these during an operation; the unit of work publishes them to
// the notifier after a successful commit.
type StageChange struct {
	JobID kernel.UUID
	From  Stage
	To    Stage
	At    time.Time
}

// Job is the aggregate root of the workshop core. It owns the authoritative
// shop-floor stage and is the only place where lifecycle transitions are
// decided: the assignment tracker and the quality ledger request transitions
// through the On* methods rather than writing the stage themselves.
//
// Invariants:
//   - The stage only moves forward along the fixed sequence, except the single
//     permitted regression Assigned -> New on total unassignment and the
//     quality-reset regression back to InProgress.
//   - Completion sign-off timestamps are monotonic: a later completion cannot
//     carry an earlier timestamp than the one it supersedes.
type Job struct {
	id          kernel.UUID
	jobNumber   string
	description string
	priority    Priority
	stage       Stage

	// Dual sign-off recorded by Complete. Nil until the job clears QC.
	qcSignedBy         *kernel.UUID
	qcSignedAt         *time.Time
	supervisorSignedBy *kernel.UUID
	supervisorSignedAt *time.Time

	stageChanges []StageChange

	isConstructed bool
}

// NewJob creates a job at intake. The job starts in the New stage with no
// workers attached and no sign-offs recorded.
func NewJob(id kernel.UUID, jobNumber, description string, priority Priority) (*Job, error) {
	j := &Job{
		stage:         New,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setJobNumber(jobNumber),
		j.setPriority(priority),
	); err != nil {
		return nil, err
	}

	j.description = description
	return j, nil
}

// RestoreJob reconstructs a job from persistence, including its current stage
// and any recorded completion sign-offs. Used only by repository mappers.
func RestoreJob(
	id kernel.UUID,
	jobNumber, description string,
	priority Priority,
	stage Stage,
	qcSignedBy *kernel.UUID, qcSignedAt *time.Time,
	supervisorSignedBy *kernel.UUID, supervisorSignedAt *time.Time,
) (*Job, error) {
	j := &Job{
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setJobNumber(jobNumber),
		j.setPriority(priority),
		stage.Validate(),
	); err != nil {
		return nil, err
	}

	j.description = description
	j.stage = stage
	j.qcSignedBy = qcSignedBy
	j.qcSignedAt = qcSignedAt
	j.supervisorSignedBy = supervisorSignedBy
	j.supervisorSignedAt = supervisorSignedAt
	return j, nil
}

// Validate ensures the Job was created through NewJob or RestoreJob.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// JobNumber returns the human-readable job number.
func (j *Job) JobNumber() string {
	return j.jobNumber
}

// Description returns the free-text job description.
func (j *Job) Description() string {
	return j.description
}

// Priority returns the scheduling priority of the job.
func (j *Job) Priority() Priority {
	return j.priority
}

// Stage returns the job's current shop-floor stage.
func (j *Job) Stage() Stage {
	return j.stage
}

// QcSignedBy returns the QC inspector who signed the completed job, nil if none.
func (j *Job) QcSignedBy() *kernel.UUID {
	return j.qcSignedBy
}

// QcSignedAt returns when the QC inspector signed, nil if not signed.
func (j *Job) QcSignedAt() *time.Time {
	return j.qcSignedAt
}

// SupervisorSignedBy returns the supervisor who signed the completed job, nil if none.
func (j *Job) SupervisorSignedBy() *kernel.UUID {
	return j.supervisorSignedBy
}

// SupervisorSignedAt returns when the supervisor signed, nil if not signed.
func (j *Job) SupervisorSignedAt() *time.Time {
	return j.supervisorSignedAt
}

// StageChanges returns the lifecycle transitions recorded since the aggregate
// was loaded. The slice is owned by the aggregate; callers must not mutate it.
func (j *Job) StageChanges() []StageChange {
	return j.stageChanges
}

// ClearStageChanges discards recorded transitions after they were published.
func (j *Job) ClearStageChanges() {
	j.stageChanges = nil
}

// Advance moves the job exactly one stage forward along the fixed sequence.
// Used for manual "next stage" actions by supervisors. Returns an
// InvalidStateError at the terminal stage.
func (j *Job) Advance(at time.Time) error {
	next, err := j.stage.Next()
	if err != nil {
		return err
	}
	j.changeStage(next, at)
	return nil
}

// Override sets the stage directly, bypassing derivation rules. Reserved for
// supervisor corrections; automatic derivation never skips a stage.
func (j *Job) Override(stage Stage, at time.Time) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	if stage == j.stage {
		return nil
	}
	j.changeStage(stage, at)
	return nil
}

// OnWorkerAssigned derives the New -> Assigned transition when the first
// active assignment is created. A no-op in any other stage.
func (j *Job) OnWorkerAssigned(at time.Time) {
	if j.stage == New {
		j.changeStage(Assigned, at)
	}
}

// OnWorkStarted derives the transition to InProgress when an assignment moves
// to Started while the job is New or Assigned. A no-op otherwise.
func (j *Job) OnWorkStarted(at time.Time) {
	if j.stage == New || j.stage == Assigned {
		j.changeStage(InProgress, at)
	}
}

// OnLastWorkerRemoved derives the single permitted regression
// Assigned -> New when zero active assignments remain. Once work has begun
// (InProgress or later) unassignment alone never regresses the job.
func (j *Job) OnLastWorkerRemoved(at time.Time) {
	if j.stage == Assigned {
		j.changeStage(New, at)
	}
}

// OnQualityGateCleared derives QcInProgress -> ReadyForDelivery when the
// quality ledger reports completeness. A no-op in any other stage, so a gate
// check on a job that was never moved into QC cannot skip stages.
func (j *Job) OnQualityGateCleared(at time.Time) {
	if j.stage == QcInProgress {
		j.changeStage(ReadyForDelivery, at)
	}
}

// OnQualityGateReopened regresses ReadyForDelivery -> QcInProgress when a
// sign-off is reset or a failing verdict makes the cleared gate incomplete
// again. A no-op in any other stage.
func (j *Job) OnQualityGateReopened(at time.Time) {
	if j.stage == ReadyForDelivery {
		j.changeStage(QcInProgress, at)
	}
}

// OnQualityGateReset regresses the job out of its QC-complete stage back to
// InProgress after all signoffs were reset. A no-op before QC has begun.
func (j *Job) OnQualityGateReset(at time.Time) {
	if j.stage == QcInProgress || j.stage == ReadyForDelivery {
		j.changeStage(InProgress, at)
	}
}

// OnDelivered synchronizes the stage when the delivery note for the job is
// marked delivered. Never moves the stage backwards.
func (j *Job) OnDelivered(at time.Time) {
	if j.stage.Before(Delivered) {
		j.changeStage(Delivered, at)
	}
}

// Complete records the dual QC-inspector and supervisor sign-off and forces
// the stage to ReadyForDelivery. Valid only while the job is QcInProgress or
// already ReadyForDelivery; otherwise an InvalidStateError is returned naming
// the current and required stage.
//
// Sign-off timestamps are monotonic within the job: a completion cannot carry
// a timestamp earlier than a sign-off it supersedes.
func (j *Job) Complete(qcInspectorID, supervisorID kernel.UUID, at time.Time) error {
	if err := errors.Join(qcInspectorID.Validate(), supervisorID.Validate()); err != nil {
		return err
	}

	if j.stage != QcInProgress && j.stage != ReadyForDelivery {
		return errs.NewInvalidStateError("complete job", j.stage.String(), "QcInProgress or ReadyForDelivery")
	}

	if j.qcSignedAt != nil && at.Before(*j.qcSignedAt) {
		return errs.NewValueIsInvalidError("sign-off timestamp precedes existing sign-off")
	}

	j.qcSignedBy = &qcInspectorID
	j.qcSignedAt = &at
	j.supervisorSignedBy = &supervisorID
	j.supervisorSignedAt = &at

	if j.stage != ReadyForDelivery {
		j.changeStage(ReadyForDelivery, at)
	}
	return nil
}

func (j *Job) changeStage(to Stage, at time.Time) {
	j.stageChanges = append(j.stageChanges, StageChange{
		JobID: j.id,
		From:  j.stage,
		To:    to,
		At:    at,
	})
	j.stage = to
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setJobNumber(jobNumber string) error {
	if jobNumber == "" {
		return errs.NewValueIsRequiredError("jobNumber")
	}
	j.jobNumber = jobNumber
	return nil
}

func (j *Job) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	j.priority = priority
	return nil
}
