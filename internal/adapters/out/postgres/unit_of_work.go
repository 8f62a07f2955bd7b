// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for stage change publishing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, notifier)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.JobRepository().Add(ctx, job); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within same transaction
//	if err := uow.SignoffRepository().Update(ctx, signoff); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.JobRepository().Update(ctx, job); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// After a successful commit, stage changes recorded on tracked job aggregates
// are handed to the configured Notifier in the order they occurred. Delivery
// is best effort; the commit outcome is already final by then.
package postgres

import (
	"context"

	"workshop/internal/adapters/out/postgres/assignmentrepo"
	"workshop/internal/adapters/out/postgres/deliverynoterepo"
	"workshop/internal/adapters/out/postgres/holdingpointrepo"
	"workshop/internal/adapters/out/postgres/jobrepo"
	"workshop/internal/adapters/out/postgres/signoffrepo"
	"workshop/internal/core/domain/model/job"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	notifier ports.Notifier
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The notifier receives stage changes after commits; pass nil to
// disable publishing.
func NewGormUnitOfWorkFactory(db *gorm.DB, notifier ports.Notifier) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, notifier: notifier}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking, ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		notifier:          f.notifier,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
//
// The unit of work tracks all aggregates modified during the transaction.
// Job aggregates among them have their recorded stage changes published to
// the notifier once the transaction commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	notifier          ports.Notifier
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and
// publishes the stage changes of tracked job aggregates. After commit, the
// transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.publishStageChanges(ctx)
	return nil
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository provides access to job persistence operations within the unit
// of work. Repository operations will execute within the current transaction
// if one is active, otherwise they use the main database connection.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.currentDB(), uow)
}

// HoldingPointRepository provides access to holding point persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) HoldingPointRepository() ports.HoldingPointRepository {
	return holdingpointrepo.NewGormHoldingPointRepository(uow.currentDB(), uow)
}

// SignoffRepository provides access to sign-off persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) SignoffRepository() ports.SignoffRepository {
	return signoffrepo.NewGormSignoffRepository(uow.currentDB(), uow)
}

// AssignmentRepository provides access to assignment persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.currentDB(), uow)
}

// DeliveryNoteRepository provides access to delivery note persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	return deliverynoterepo.NewGormDeliveryNoteRepository(uow.currentDB(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) currentDB() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishStageChanges(ctx context.Context) {
	if uow.notifier == nil {
		return
	}

	changes := make([]job.StageChange, 0)
	for _, tracked := range uow.trackedAggregates {
		j, ok := tracked.Aggregate.(*job.Job)
		if !ok {
			continue
		}

		changes = append(changes, j.StageChanges()...)
		j.ClearStageChanges()
	}

	if len(changes) == 0 {
		return
	}

	uow.notifier.PublishStageChanges(ctx, changes)
}
