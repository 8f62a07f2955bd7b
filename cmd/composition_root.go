package cmd

import (
	"log/slog"

	"workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/notify"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. All handler construction goes
// through here so the dependency graph lives in one place.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := notify.NewSlogNotifier(logger)

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, notifier),
	}
}

// NewHTTPServer builds the HTTP server with every command and query handler wired.
func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		http.Commands{
			CreateJob:            commands.NewCreateJobCommandHandler(c.jobUoWFactory()),
			StartQualityControl:  commands.NewStartQualityControlCommandHandler(c.qcUoWFactory()),
			SignHoldingPoint:     commands.NewSignHoldingPointCommandHandler(c.signoffUoWFactory()),
			ResetSignoff:         commands.NewResetSignoffCommandHandler(c.signoffUoWFactory()),
			ResetAllSignoffs:     commands.NewResetAllSignoffsCommandHandler(c.signoffUoWFactory()),
			AssignWorker:         commands.NewAssignWorkerCommandHandler(c.assignmentUoWFactory()),
			BulkAssignWorkers:    commands.NewBulkAssignWorkersCommandHandler(c.assignmentUoWFactory()),
			SetLeadWorker:        commands.NewSetLeadWorkerCommandHandler(c.assignmentUoWFactory()),
			StartWork:            commands.NewStartWorkCommandHandler(c.assignmentUoWFactory()),
			CompleteAssignment:   commands.NewCompleteAssignmentCommandHandler(c.assignmentUoWFactory()),
			RemoveWorker:         commands.NewRemoveWorkerCommandHandler(c.assignmentUoWFactory()),
			AdvanceStage:         commands.NewAdvanceStageCommandHandler(c.qcUoWFactory()),
			SetStage:             commands.NewSetStageCommandHandler(c.qcUoWFactory()),
			CompleteJob:          commands.NewCompleteJobCommandHandler(c.signoffUoWFactory()),
			GenerateDeliveryNote: commands.NewGenerateDeliveryNoteCommandHandler(c.deliveryUoWFactory()),
			DispatchDeliveryNote: commands.NewDispatchDeliveryNoteCommandHandler(c.noteUoWFactory()),
			MarkDelivered:        commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory()),
			RecordSignature:      commands.NewRecordSignatureCommandHandler(c.noteUoWFactory()),
		},
		http.Queries{
			QcProgress:         queries.NewGetQcProgressQueryHandler(c.gormDB),
			KanbanBoard:        queries.NewGetKanbanBoardQueryHandler(c.gormDB),
			WorkshopStatistics: queries.NewGetWorkshopStatisticsQueryHandler(c.gormDB),
			JobAssignments:     queries.NewGetJobAssignmentsQueryHandler(c.gormDB),
			WorkerAssignments:  queries.NewGetWorkerAssignmentsQueryHandler(c.gormDB),
			LeadWorker:         queries.NewGetLeadWorkerQueryHandler(c.gormDB),
			DeliveryNote:       queries.NewGetDeliveryNoteQueryHandler(c.gormDB),
			DeliveryNotes:      queries.NewGetDeliveryNotesQueryHandler(c.gormDB),
			DeliveryStatistics: queries.NewGetDeliveryStatisticsQueryHandler(c.gormDB),
		},
	)
}

// NewJobManager builds the background job manager.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetWorkshopStatisticsQueryHandler(c.gormDB),
		queries.NewGetDeliveryStatisticsQueryHandler(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) qcUoWFactory() commands.QcUoWFactory {
	return FuncQcUoWFactory(func() commands.QcUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) signoffUoWFactory() commands.SignoffUoWFactory {
	return FuncSignoffUoWFactory(func() commands.SignoffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) noteUoWFactory() commands.NoteUoWFactory {
	return FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncQcUoWFactory func() commands.QcUoW

func (f FuncQcUoWFactory) Create() commands.QcUoW {
	return f()
}

type FuncSignoffUoWFactory func() commands.SignoffUoW

func (f FuncSignoffUoWFactory) Create() commands.SignoffUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncNoteUoWFactory func() commands.NoteUoW

func (f FuncNoteUoWFactory) Create() commands.NoteUoW {
	return f()
}
