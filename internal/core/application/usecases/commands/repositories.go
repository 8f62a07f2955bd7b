// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest interface that covers its repositories.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// HoldingPointRepoFactory provides access to the holding point repository within a transaction.
	HoldingPointRepoFactory interface {
		HoldingPointRepository() ports.HoldingPointRepository
	}

	// SignoffRepoFactory provides access to the sign-off repository within a transaction.
	SignoffRepoFactory interface {
		SignoffRepository() ports.SignoffRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// DeliveryNoteRepoFactory provides access to the delivery note repository within a transaction.
	DeliveryNoteRepoFactory interface {
		DeliveryNoteRepository() ports.DeliveryNoteRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// QcUoW manages transactions for operations spanning jobs, the holding
	// point registry and sign-offs. Used when a job enters QC and its
	// sign-off checklist is built from the registry.
	QcUoW interface {
		TxManager
		JobRepoFactory
		HoldingPointRepoFactory
		SignoffRepoFactory
	}

	// QcUoWFactory creates new QC unit of work instances.
	QcUoWFactory interface {
		Create() QcUoW
	}

	// SignoffUoW manages transactions for sign-off operations that may move
	// the owning job's stage.
	SignoffUoW interface {
		TxManager
		JobRepoFactory
		SignoffRepoFactory
	}

	// SignoffUoWFactory creates new sign-off unit of work instances.
	SignoffUoWFactory interface {
		Create() SignoffUoW
	}

	// AssignmentUoW manages transactions for worker assignment operations
	// that may move the owning job's stage.
	AssignmentUoW interface {
		TxManager
		JobRepoFactory
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DeliveryUoW manages transactions for delivery note operations that may
	// move the owning job's stage.
	DeliveryUoW interface {
		TxManager
		JobRepoFactory
		DeliveryNoteRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// NoteUoW manages transactions for operations touching only the delivery note.
	NoteUoW interface {
		TxManager
		DeliveryNoteRepoFactory
	}

	// NoteUoWFactory creates new delivery note unit of work instances.
	NoteUoWFactory interface {
		Create() NoteUoW
	}
)
