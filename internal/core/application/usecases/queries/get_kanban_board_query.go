package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetKanbanBoardQueryIsNotConstructed = errors.New(
	"GetKanbanBoardQuery must be created via NewGetKanbanBoardQuery constructor",
)

// GetKanbanBoardQuery retrieves every job grouped into lifecycle columns for
// the shop-floor board. Each lifecycle stage becomes one column, terminal
// stages included, so the board layout is stable even when a column is empty.
//
// Example:
//
//	query := NewGetKanbanBoardQuery()
//	handler := NewGetKanbanBoardQueryHandler(db)
//
//	columns, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetKanbanBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKanbanBoardQuery creates a query to retrieve the kanban board.
func NewGetKanbanBoardQuery() GetKanbanBoardQuery {
	return GetKanbanBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKanbanBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKanbanBoardQueryIsNotConstructed)
}

// KanbanJobItem is one job card on the board. ActiveWorkers counts the
// assignments currently open on the job (assigned or started).
type KanbanJobItem struct {
	JobID         kernel.UUID
	JobNumber     string
	Description   string
	Priority      string
	ActiveWorkers int
}

// GetKanbanBoardQueryResponse is one board column: a lifecycle stage and the
// jobs currently sitting in it, most urgent first.
type GetKanbanBoardQueryResponse struct {
	Stage string
	Jobs  []KanbanJobItem
}
