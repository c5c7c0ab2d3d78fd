package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

// BoardService defines the service port for pipeline topology.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method takes the already-resolved caller identity.
type BoardService interface {
	// ListBoards returns the boards visible to the principal, each with its
	// columns and a metrics summary scoped to the principal. A summary equals
	// GetMetrics filtered by that board, so unassigned leads count toward
	// every board's TotalLeads and conversion rate.
	ListBoards(ctx context.Context, p domain.Principal) ([]BoardOverview, error)

	// CreateBoard creates a board. Scoped principals may only create boards
	// they own. Returns domain.ErrValidation or domain.ErrForbidden.
	CreateBoard(ctx context.Context, p domain.Principal, b *board.Board) (*board.Board, error)

	// GetBoard returns a board with its ordered columns and per-column lead counts.
	// Returns domain.ErrNotFound if the board does not exist.
	// Returns domain.ErrForbidden if the board belongs to another scope.
	GetBoard(ctx context.Context, p domain.Principal, boardID string) (*board.Board, error)

	// CreateColumn inserts a column at the requested rank, shifting later
	// columns. Setting IsInitial clears the flag on the board's other columns.
	// Returns domain.ErrNotFound, domain.ErrForbidden or domain.ErrValidation.
	CreateColumn(ctx context.Context, p domain.Principal, c *board.Column) (*board.Column, error)

	// UpdateColumn edits a column's display metadata and role flags.
	// Order is only changed through ReorderColumns.
	UpdateColumn(ctx context.Context, p domain.Principal, columnID string, u board.ColumnUpdate) (*board.Column, error)

	// DeleteColumn removes an empty column and compacts the remaining ranks.
	// Returns domain.ErrConflict if any lead currently sits in the column.
	DeleteColumn(ctx context.Context, p domain.Principal, columnID string) error

	// ReorderColumns atomically replaces every column rank of a board.
	// Returns domain.ErrValidation if the positions are not a permutation of
	// the board's columns, and domain.ErrConflict on a version mismatch.
	ReorderColumns(ctx context.Context, p domain.Principal, req ReorderRequest) (*board.Board, error)
}

// LeadService defines the service port for leads and their timeline.
type LeadService interface {
	// CreateLead registers a lead. With a non-empty boardID the lead is
	// placed in that board's initial column. Writes a CREATED entry and, when
	// placed, a KANBAN_MOVED entry. l.KanbanColumnID must be nil.
	CreateLead(ctx context.Context, p domain.Principal, l *lead.Lead, boardID string) (*lead.Lead, error)

	// GetLead returns a single lead.
	// Returns domain.ErrNotFound or domain.ErrForbidden.
	GetLead(ctx context.Context, p domain.Principal, leadID string) (*lead.Lead, error)

	// MoveLead places a lead in the target column and records exactly one
	// KANBAN_MOVED entry in the same transaction. Moving a lead to the column
	// it already occupies succeeds without writing anything.
	// Returns domain.ErrNotFound, domain.ErrForbidden or domain.ErrUnavailable.
	MoveLead(ctx context.Context, p domain.Principal, leadID, targetColumnID string) (*MoveResult, error)

	// AddTimelineEntry appends a caller-authored fact (note, contact, status)
	// to a lead's timeline. Engine-written actions are rejected.
	AddTimelineEntry(ctx context.Context, p domain.Principal, e *timeline.Entry) (*timeline.Entry, error)

	// GetLeadTimeline returns a lead's entries ordered oldest first.
	GetLeadTimeline(ctx context.Context, p domain.Principal, leadID string) ([]timeline.Entry, error)
}

// MetricsService defines the read-only analytics port.
type MetricsService interface {
	// GetMetrics computes occupancy, dwell time and conversion figures.
	// Absent data yields zero-valued metrics; only store failures error.
	GetMetrics(ctx context.Context, p domain.Principal, filter lead.Filter) (*analytics.Metrics, error)
}

// PipelineService is the full application surface.
type PipelineService interface {
	BoardService
	LeadService
	MetricsService
}

// ReorderRequest carries a full permutation of a board's columns.
// A nil ExpectedVersion means last write wins.
type ReorderRequest struct {
	BoardID         string
	Positions       []board.ColumnPosition
	ExpectedVersion *int64
}

// MoveResult reports the outcome of MoveLead. Moved is false for a no-op,
// in which case Entry is nil.
type MoveResult struct {
	LeadID       string
	FromColumnID *string
	NewColumnID  string
	Moved        bool
	Entry        *timeline.Entry
}

// BoardOverview pairs a board with its metrics summary.
type BoardOverview struct {
	Board   board.Board
	Metrics analytics.Metrics
}
