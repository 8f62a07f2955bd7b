package http

import (
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/delivery"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/qc"
	"workshop/internal/pkg/errs"
)

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateJobRequest is the payload for registering a job at intake.
// Priority is optional and defaults to Medium.
type CreateJobRequest struct {
	JobNumber   string `json:"job_number"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// SignHoldingPointRequest records an inspection verdict on one holding point.
type SignHoldingPointRequest struct {
	Verdict     string `json:"verdict"`
	InspectorID string `json:"inspector_id"`
	Notes       string `json:"notes"`
}

// AssignWorkerRequest attaches a worker to a job. Role is optional and
// defaults to Artisan.
type AssignWorkerRequest struct {
	WorkerID   string `json:"worker_id"`
	AssignedBy string `json:"assigned_by"`
	Role       string `json:"role"`
}

// BulkAssignWorkersRequest attaches a crew of artisans to a job in one call.
type BulkAssignWorkersRequest struct {
	WorkerIDs  []string `json:"worker_ids"`
	AssignedBy string   `json:"assigned_by"`
}

// BulkAssignWorkersResponse reports the per-worker outcome of a crew
// assignment; skipped workers already held an active assignment on the job.
type BulkAssignWorkersResponse struct {
	AssignedWorkerIDs []string `json:"assigned_worker_ids"`
	SkippedWorkerIDs  []string `json:"skipped_worker_ids"`
}

// SetLeadWorkerRequest promotes an assigned worker to lead.
type SetLeadWorkerRequest struct {
	WorkerID string `json:"worker_id"`
}

// SetStageRequest forces a job into the named lifecycle stage.
type SetStageRequest struct {
	Stage string `json:"stage"`
}

// CompleteJobRequest records the dual sign-off closing a job's quality phase.
type CompleteJobRequest struct {
	QcInspectorID string `json:"qc_inspector_id"`
	SupervisorID  string `json:"supervisor_id"`
}

// DispatchDeliveryNoteRequest sends the goods out with a driver.
type DispatchDeliveryNoteRequest struct {
	DeliveredBy string `json:"delivered_by"`
	VehicleInfo string `json:"vehicle_info"`
	Notes       string `json:"notes"`
}

// MarkDeliveredRequest records receipt of the goods at the destination.
type MarkDeliveredRequest struct {
	ReceivedBy string `json:"received_by"`
	Notes      string `json:"notes"`
}

// RecordSignatureRequest attaches the customer signature to a delivered note.
type RecordSignatureRequest struct {
	CustomerName  string `json:"customer_name"`
	SignatureData string `json:"signature_data"`
}

// SignoffItem is one checklist row in the QC progress payload.
type SignoffItem struct {
	SignoffID        string     `json:"signoff_id"`
	HoldingPointID   string     `json:"holding_point_id"`
	HoldingPointName string     `json:"holding_point_name"`
	SequenceNumber   int        `json:"sequence_number"`
	Status           string     `json:"status"`
	SignedBy         *string    `json:"signed_by,omitempty"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// QcProgress is the quality control payload of one job.
type QcProgress struct {
	JobID           string        `json:"job_id"`
	Total           int           `json:"total"`
	Passed          int           `json:"passed"`
	Failed          int           `json:"failed"`
	Pending         int           `json:"pending"`
	NotApplicable   int           `json:"not_applicable"`
	PercentComplete int           `json:"percent_complete"`
	IsComplete      bool          `json:"is_complete"`
	NextPending     *SignoffItem  `json:"next_pending,omitempty"`
	Signoffs        []SignoffItem `json:"signoffs"`
}

// KanbanJob is one job card on the board payload.
type KanbanJob struct {
	JobID         string `json:"job_id"`
	JobNumber     string `json:"job_number"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	ActiveWorkers int    `json:"active_workers"`
}

// KanbanColumn is one lifecycle column on the board payload.
type KanbanColumn struct {
	Stage string      `json:"stage"`
	Jobs  []KanbanJob `json:"jobs"`
}

// StageCount is the number of jobs in one lifecycle stage.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// WorkshopStatistics is the aggregate shop-floor payload.
type WorkshopStatistics struct {
	TotalJobs              int          `json:"total_jobs"`
	JobsByStage            []StageCount `json:"jobs_by_stage"`
	ActiveAssignments      int          `json:"active_assignments"`
	UnsignedDeliveredNotes int          `json:"unsigned_delivered_notes"`
}

// JobAssignment is one assignment record of a job.
type JobAssignment struct {
	AssignmentID string     `json:"assignment_id"`
	WorkerID     string     `json:"worker_id"`
	AssignedBy   string     `json:"assigned_by"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	AssignedAt   time.Time  `json:"assigned_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// WorkerAssignment is one assignment of a worker, joined with its job.
type WorkerAssignment struct {
	AssignmentID   string     `json:"assignment_id"`
	JobID          string     `json:"job_id"`
	JobNumber      string     `json:"job_number"`
	JobDescription string     `json:"job_description"`
	JobStage       string     `json:"job_stage"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	AssignedAt     time.Time  `json:"assigned_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// LeadWorker is the active lead assignment of a job.
type LeadWorker struct {
	AssignmentID string     `json:"assignment_id"`
	WorkerID     string     `json:"worker_id"`
	Status       string     `json:"status"`
	AssignedAt   time.Time  `json:"assigned_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
}

// DeliveryNote is the delivery note payload.
type DeliveryNote struct {
	NoteID            string     `json:"note_id"`
	JobID             string     `json:"job_id"`
	JobNumber         string     `json:"job_number"`
	Number            string     `json:"number"`
	Status            string     `json:"status"`
	DeliveredBy       string     `json:"delivered_by,omitempty"`
	VehicleInfo       string     `json:"vehicle_info,omitempty"`
	ReceivedBy        string     `json:"received_by,omitempty"`
	CustomerSignature string     `json:"customer_signature,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	DispatchedAt      *time.Time `json:"dispatched_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	SignedAt          *time.Time `json:"signed_at,omitempty"`
}

// DeliveryStatistics is the delivery paperwork payload.
type DeliveryStatistics struct {
	TotalNotes int `json:"total_notes"`
	Generated  int `json:"generated"`
	Dispatched int `json:"dispatched"`
	Delivered  int `json:"delivered"`
	Signed     int `json:"signed"`
}

func parsePriority(s string) (job.Priority, error) {
	switch s {
	case "":
		return job.DefaultPriority, nil
	case "Low":
		return job.Low, nil
	case "Medium":
		return job.Medium, nil
	case "High":
		return job.High, nil
	case "Urgent":
		return job.Urgent, nil
	default:
		return job.UnknownPriority, errs.NewValueIsInvalidError("priority must be Low, Medium, High or Urgent")
	}
}

func parseStage(s string) (job.Stage, error) {
	for _, stage := range job.AllStages() {
		if stage.String() == s {
			return stage, nil
		}
	}
	return job.UnknownStage, errs.NewValueIsInvalidError("stage is not a valid lifecycle stage")
}

func parseRole(s string) (assignment.Role, error) {
	switch s {
	case "":
		return assignment.Artisan, nil
	case "Lead":
		return assignment.Lead, nil
	case "Artisan":
		return assignment.Artisan, nil
	default:
		return assignment.UnknownRole, errs.NewValueIsInvalidError("role must be Lead or Artisan")
	}
}

func parseDeliveryStatus(s string) (delivery.Status, error) {
	switch s {
	case "Generated":
		return delivery.Generated, nil
	case "Dispatched":
		return delivery.Dispatched, nil
	case "Delivered":
		return delivery.Delivered, nil
	case "Signed":
		return delivery.Signed, nil
	default:
		return delivery.UnknownStatus, errs.NewValueIsInvalidError("status must be Generated, Dispatched, Delivered or Signed")
	}
}

func parseVerdict(s string) (qc.SignoffStatus, error) {
	switch s {
	case "Passed":
		return qc.Passed, nil
	case "Failed":
		return qc.Failed, nil
	case "NotApplicable":
		return qc.NotApplicable, nil
	default:
		return qc.UnknownSignoffStatus, errs.NewValueIsInvalidError("verdict must be Passed, Failed or NotApplicable")
	}
}
