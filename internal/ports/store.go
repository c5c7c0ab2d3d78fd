package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

// MoveEntryFunc builds the KANBAN_MOVED entry for a move. from is nil when
// the lead was unassigned. It is called inside the move transaction.
type MoveEntryFunc func(from *board.Column) timeline.Entry

// MoveOutcome is what the store observed while applying a move.
type MoveOutcome struct {
	FromColumnID *string
	Moved        bool
	Entry        *timeline.Entry
}

// PipelineStore defines the persistence port for boards, columns, leads and
// the timeline log. Implemented by the relational store adapter.
// Lookup misses return domain.ErrNotFound; connectivity failures and
// deadline expiry return domain.ErrUnavailable.
type PipelineStore interface {
	// ListBoards returns every board with its ordered columns and lead counts.
	ListBoards(ctx context.Context) ([]board.Board, error)

	// GetBoard returns a board with its ordered columns and lead counts.
	GetBoard(ctx context.Context, id string) (*board.Board, error)

	// CreateBoard persists a new board.
	CreateBoard(ctx context.Context, b *board.Board) error

	// GetColumn returns a single column with its lead count.
	GetColumn(ctx context.Context, id string) (*board.Column, error)

	// InsertColumn places c at its Order clamped to [0, n], shifting later
	// columns, and clears the board's other initial flags when c.IsInitial.
	InsertColumn(ctx context.Context, c *board.Column) (*board.Column, error)

	// UpdateColumn persists c's metadata and flags, leaving its Order alone.
	UpdateColumn(ctx context.Context, c *board.Column) (*board.Column, error)

	// DeleteColumn removes an unoccupied column and compacts the ranks.
	// Returns domain.ErrConflict when a lead references the column; the check
	// and the delete share a transaction.
	DeleteColumn(ctx context.Context, id string) error

	// ReorderColumns validates positions against the board's current column
	// set and writes every rank in one transaction, bumping the board version.
	ReorderColumns(ctx context.Context, boardID string, positions []board.ColumnPosition, expectedVersion *int64) (*board.Board, error)

	// CreateLead persists a lead together with its initial timeline entries.
	CreateLead(ctx context.Context, l *lead.Lead, entries []timeline.Entry) error

	// GetLead returns a single lead.
	GetLead(ctx context.Context, id string) (*lead.Lead, error)

	// ApplyMove re-reads the lead's column inside a transaction. If it already
	// equals target.ID nothing is written. Otherwise the column is updated and
	// the entry built by build is appended before commit.
	ApplyMove(ctx context.Context, leadID string, target board.Column, build MoveEntryFunc) (*MoveOutcome, error)

	// AppendEntry adds a timeline entry, assigning its Seq.
	AppendEntry(ctx context.Context, e *timeline.Entry) error

	// ListEntries returns a lead's timeline ordered by (CreatedAt, Seq).
	ListEntries(ctx context.Context, leadID string) ([]timeline.Entry, error)

	// LoadSnapshot reads the columns, leads and move history the analytics
	// fold needs. With a board filter, only that board's columns are returned
	// and only leads placed on it or unassigned. Snapshot.Now is left zero.
	LoadSnapshot(ctx context.Context, filter lead.Filter) (*analytics.Snapshot, error)
}
