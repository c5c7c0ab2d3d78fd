package app

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/kanban-pipeline/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// ListBoards returns the boards the principal can write to, each paired with
// metrics scoped to the principal. Each summary uses the GetMetrics board
// scope, which includes unassigned leads, so those leads appear in every
// board's totals. Summaries are computed concurrently with at most
// overviewWorkers store reads in flight.
func (s *PipelineService) ListBoards(ctx context.Context, p domain.Principal) (_ []ports.BoardOverview, err error) {
	const op = "ListBoards"
	ctx, span := s.begin(ctx, op)
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "listing boards", slog.String("role", p.Role.String()))

	all, err := s.store.ListBoards(ctx)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	visible := make([]board.Board, 0, len(all))
	for i := range all {
		if all[i].WritableBy(p) {
			visible = append(visible, all[i])
		}
	}

	overviews, err := fanout.Map(ctx, s.overviewWorkers, visible, func(ctx context.Context, b board.Board) (ports.BoardOverview, error) {
		id := b.ID
		m, err := s.compute(ctx, p, lead.Filter{BoardID: &id})
		if err != nil {
			return ports.BoardOverview{}, err
		}
		b.SortColumns()
		return ports.BoardOverview{Board: b, Metrics: *m}, nil
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return overviews, nil
}

// CreateBoard validates and persists a board together with any columns it
// carries. Scoped principals own the boards they create.
func (s *PipelineService) CreateBoard(ctx context.Context, p domain.Principal, b *board.Board) (_ *board.Board, err error) {
	const op = "CreateBoard"
	ctx, span := s.begin(ctx, op)
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "creating board", slog.String("name", b.Name))

	if !p.IsAdmin() {
		switch {
		case b.OwnerID == nil:
			owner := p.ScopeID
			b.OwnerID = &owner
		case *b.OwnerID != p.ScopeID:
			return nil, s.fail(ctx, op, forbidden("board owner %q outside scope", *b.OwnerID))
		}
	}

	b.Name = strings.TrimSpace(b.Name)
	if err := b.Validate(); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	now := s.timestamp()
	b.ID = s.newID()
	b.Version = 1
	b.CreatedAt, b.UpdatedAt = now, now

	initial := 0
	for i := range b.Columns {
		c := &b.Columns[i]
		c.ID = s.newID()
		c.BoardID = b.ID
		c.Order = i
		c.Name = strings.TrimSpace(c.Name)
		if c.Color == "" {
			c.Color = board.DefaultColor
		}
		c.CreatedAt, c.UpdatedAt = now, now
		if err := c.Validate(); err != nil {
			return nil, s.fail(ctx, op, err)
		}
		if c.IsInitial {
			initial++
		}
	}
	if initial > 1 {
		return nil, s.fail(ctx, op, domain.NewValidationError("columns", "at most one initial column"))
	}

	if err := s.store.CreateBoard(ctx, b); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.recordChange(ctx, op)
	return b, nil
}

// GetBoard returns a board with its columns in rank order.
func (s *PipelineService) GetBoard(ctx context.Context, p domain.Principal, boardID string) (_ *board.Board, err error) {
	const op = "GetBoard"
	ctx, span := s.begin(ctx, op, attribute.String("board.id", boardID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	b, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", boardID))
	}
	if !b.WritableBy(p) {
		return nil, s.fail(ctx, op, forbidden("board %s", boardID))
	}
	b.SortColumns()
	return b, nil
}

// CreateColumn inserts a column into a board the principal manages.
func (s *PipelineService) CreateColumn(ctx context.Context, p domain.Principal, c *board.Column) (_ *board.Column, err error) {
	const op = "CreateColumn"
	ctx, span := s.begin(ctx, op, attribute.String("board.id", c.BoardID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "creating column",
		slog.String("board_id", c.BoardID),
		slog.String("name", c.Name),
		slog.Int("order", c.Order),
	)

	c.Name = strings.TrimSpace(c.Name)
	if c.Color == "" {
		c.Color = board.DefaultColor
	}
	if err := c.Validate(); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if err := s.manageable(ctx, p, c.BoardID); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	now := s.timestamp()
	c.ID = s.newID()
	c.CreatedAt, c.UpdatedAt = now, now

	created, err := s.store.InsertColumn(ctx, c)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.recordChange(ctx, op)
	return created, nil
}

// UpdateColumn applies u to a column. An update that changes nothing is
// rejected rather than silently accepted.
func (s *PipelineService) UpdateColumn(ctx context.Context, p domain.Principal, columnID string, u board.ColumnUpdate) (_ *board.Column, err error) {
	const op = "UpdateColumn"
	ctx, span := s.begin(ctx, op, attribute.String("column.id", columnID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "updating column", slog.String("column_id", columnID))

	if u.IsEmpty() {
		return nil, s.fail(ctx, op, domain.NewValidationError("body", "no fields to update"))
	}

	current, err := s.store.GetColumn(ctx, columnID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", columnID))
	}
	if err := s.manageable(ctx, p, current.BoardID); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	next := u.Apply(*current)
	next.UpdatedAt = s.timestamp()
	if err := next.Validate(); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	updated, err := s.store.UpdateColumn(ctx, &next)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", columnID))
	}
	s.recordChange(ctx, op)
	return updated, nil
}

// DeleteColumn removes an empty column.
func (s *PipelineService) DeleteColumn(ctx context.Context, p domain.Principal, columnID string) (err error) {
	const op = "DeleteColumn"
	ctx, span := s.begin(ctx, op, attribute.String("column.id", columnID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "deleting column", slog.String("column_id", columnID))

	c, err := s.store.GetColumn(ctx, columnID)
	if err != nil {
		return s.fail(ctx, op, err, slog.String("column_id", columnID))
	}
	if err := s.manageable(ctx, p, c.BoardID); err != nil {
		return s.fail(ctx, op, err)
	}

	if err := s.store.DeleteColumn(ctx, columnID); err != nil {
		return s.fail(ctx, op, err, slog.String("column_id", columnID))
	}
	s.recordChange(ctx, op)
	return nil
}

// ReorderColumns replaces every column rank of a board in one write.
func (s *PipelineService) ReorderColumns(ctx context.Context, p domain.Principal, req ports.ReorderRequest) (_ *board.Board, err error) {
	const op = "ReorderColumns"
	ctx, span := s.begin(ctx, op, attribute.String("board.id", req.BoardID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "reordering columns",
		slog.String("board_id", req.BoardID),
		slog.Int("columns", len(req.Positions)),
	)

	if len(req.Positions) == 0 {
		return nil, s.fail(ctx, op, domain.NewValidationError("columns", domain.MsgRequired))
	}
	if err := s.manageable(ctx, p, req.BoardID); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	b, err := s.store.ReorderColumns(ctx, req.BoardID, req.Positions, req.ExpectedVersion)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", req.BoardID))
	}
	b.SortColumns()
	s.recordChange(ctx, op)
	return b, nil
}

// manageable loads a board and checks the principal may change its topology.
func (s *PipelineService) manageable(ctx context.Context, p domain.Principal, boardID string) error {
	b, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if !b.ManageableBy(p) {
		return forbidden("board %s is not managed by %s", boardID, actorOf(p))
	}
	return nil
}

// compute loads a snapshot for filter and folds it. Scoped principals only
// ever see their own leads.
func (s *PipelineService) compute(ctx context.Context, p domain.Principal, filter lead.Filter) (*analytics.Metrics, error) {
	if !p.IsAdmin() {
		if filter.AgentID != nil && *filter.AgentID != p.ScopeID {
			return nil, forbidden("metrics for agent %q", *filter.AgentID)
		}
		scope := p.ScopeID
		filter.AgentID = &scope
	}

	snap, err := s.store.LoadSnapshot(ctx, filter)
	if err != nil {
		return nil, err
	}
	snap.Now = s.timestamp()
	m := analytics.Compute(*snap)
	return &m, nil
}
