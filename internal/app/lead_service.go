package app

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// Move results recorded on the lead move counter.
const (
	moveResultMoved = "moved"
	moveResultNoop  = "noop"
	moveResultError = "error"
)

// CreateLead registers a lead, optionally placing it in a board's initial
// column. The placement is written as a KANBAN_MOVED entry with no origin so
// every assigned lead has a move history.
func (s *PipelineService) CreateLead(ctx context.Context, p domain.Principal, l *lead.Lead, boardID string) (_ *lead.Lead, err error) {
	const op = "CreateLead"
	ctx, span := s.begin(ctx, op, attribute.String("board.id", boardID))
	defer func() { end(span, err) }()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.logger.InfoContext(ctx, "creating lead", slog.String("board_id", boardID))

	if !p.IsAdmin() {
		switch l.AgentID {
		case "":
			l.AgentID = p.ScopeID
		case p.ScopeID:
		default:
			return nil, s.fail(ctx, op, forbidden("lead agent %q outside scope", l.AgentID))
		}
	}
	if l.IsAssigned() {
		return nil, s.fail(ctx, op, domain.NewValidationError("kanban_column_id", "set by moving the lead"))
	}

	l.Name = strings.TrimSpace(l.Name)
	if err := l.Validate(); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var initial *board.Column
	if boardID != "" {
		b, err := s.store.GetBoard(ctx, boardID)
		if err != nil {
			return nil, s.fail(ctx, op, err, slog.String("board_id", boardID))
		}
		if !b.WritableBy(p) {
			return nil, s.fail(ctx, op, forbidden("board %s", boardID))
		}
		c, ok := b.InitialColumn()
		if !ok {
			return nil, s.fail(ctx, op, domain.NewValidationError("board_id", "board has no initial column"))
		}
		initial = &c
	}

	now := s.timestamp()
	actor := actorOf(p)
	l.ID = s.newID()
	l.CreatedAt, l.UpdatedAt = now, now

	entries := []timeline.Entry{timeline.NewCreatedEntry(s.newID(), l.ID, l.Name, actor, now)}
	if initial != nil {
		columnID := initial.ID
		l.KanbanColumnID = &columnID
		to := timeline.Place{ColumnID: initial.ID, Name: initial.Name, BoardID: initial.BoardID}
		entries = append(entries, timeline.NewMoveEntry(s.newID(), l.ID, nil, to, actor, now))
	}

	if err := s.store.CreateLead(ctx, l, entries); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if initial != nil {
		s.recordMove(ctx, moveResultMoved)
	}
	return l, nil
}

// GetLead returns a lead the principal owns.
func (s *PipelineService) GetLead(ctx context.Context, p domain.Principal, leadID string) (_ *lead.Lead, err error) {
	const op = "GetLead"
	ctx, span := s.begin(ctx, op, attribute.String("lead.id", leadID))
	defer func() { end(span, err) }()

	l, err := s.ownedLead(ctx, p, leadID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", leadID))
	}
	return l, nil
}

// MoveLead places a lead in the target column. A lead already read in the
// target returns without opening a transaction. Otherwise the no-op check is
// repeated inside the store's transaction together with the KANBAN_MOVED
// append, so concurrent identical moves log once.
func (s *PipelineService) MoveLead(ctx context.Context, p domain.Principal, leadID, targetColumnID string) (_ *ports.MoveResult, err error) {
	const op = "MoveLead"
	ctx, span := s.begin(ctx, op,
		attribute.String("lead.id", leadID),
		attribute.String("column.id", targetColumnID),
	)
	defer func() {
		if err != nil {
			s.recordMove(ctx, moveResultError)
		}
		end(span, err)
	}()

	s.logger.InfoContext(ctx, "moving lead",
		slog.String("lead_id", leadID),
		slog.String("target_column_id", targetColumnID),
	)

	l, err := s.ownedLead(ctx, p, leadID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", leadID))
	}
	target, err := s.store.GetColumn(ctx, targetColumnID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("column_id", targetColumnID))
	}
	b, err := s.store.GetBoard(ctx, target.BoardID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("board_id", target.BoardID))
	}
	if !b.WritableBy(p) {
		return nil, s.fail(ctx, op, forbidden("board %s", b.ID))
	}

	if l.InColumn(target.ID) {
		s.logger.DebugContext(ctx, "lead already in target column", slog.String("lead_id", leadID))
		s.recordMove(ctx, moveResultNoop)
		return &ports.MoveResult{LeadID: l.ID, FromColumnID: l.KanbanColumnID, NewColumnID: target.ID}, nil
	}

	actor := actorOf(p)
	to := timeline.Place{ColumnID: target.ID, Name: target.Name, BoardID: target.BoardID}
	build := func(from *board.Column) timeline.Entry {
		var origin *timeline.Place
		if from != nil {
			origin = &timeline.Place{ColumnID: from.ID, Name: from.Name, BoardID: from.BoardID}
		}
		return timeline.NewMoveEntry(s.newID(), l.ID, origin, to, actor, s.timestamp())
	}

	outcome, err := s.store.ApplyMove(ctx, l.ID, *target, build)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", leadID))
	}

	result := &ports.MoveResult{
		LeadID:       l.ID,
		FromColumnID: outcome.FromColumnID,
		NewColumnID:  target.ID,
		Moved:        outcome.Moved,
		Entry:        outcome.Entry,
	}
	if result.Moved {
		s.recordMove(ctx, moveResultMoved)
	} else {
		s.logger.DebugContext(ctx, "lead reached target column concurrently", slog.String("lead_id", leadID))
		s.recordMove(ctx, moveResultNoop)
	}
	return result, nil
}

// AddTimelineEntry appends a caller-authored entry to a lead's timeline.
func (s *PipelineService) AddTimelineEntry(ctx context.Context, p domain.Principal, e *timeline.Entry) (_ *timeline.Entry, err error) {
	const op = "AddTimelineEntry"
	ctx, span := s.begin(ctx, op, attribute.String("lead.id", e.LeadID))
	defer func() { end(span, err) }()

	if e.Action.IsSystem() {
		return nil, s.fail(ctx, op, domain.NewValidationError("action", "written by the pipeline only: "+e.Action.String()))
	}
	if err := e.Validate(); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if _, err := s.ownedLead(ctx, p, e.LeadID); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", e.LeadID))
	}

	e.ID = s.newID()
	e.ActorID = actorOf(p)
	e.CreatedAt = s.timestamp()
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}

	if err := s.store.AppendEntry(ctx, e); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", e.LeadID))
	}
	return e, nil
}

// GetLeadTimeline returns a lead's entries oldest first.
func (s *PipelineService) GetLeadTimeline(ctx context.Context, p domain.Principal, leadID string) (_ []timeline.Entry, err error) {
	const op = "GetLeadTimeline"
	ctx, span := s.begin(ctx, op, attribute.String("lead.id", leadID))
	defer func() { end(span, err) }()

	if _, err := s.ownedLead(ctx, p, leadID); err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", leadID))
	}

	entries, err := s.store.ListEntries(ctx, leadID)
	if err != nil {
		return nil, s.fail(ctx, op, err, slog.String("lead_id", leadID))
	}
	return entries, nil
}

// ownedLead loads a lead and checks the principal may act on it.
func (s *PipelineService) ownedLead(ctx context.Context, p domain.Principal, leadID string) (*lead.Lead, error) {
	if err := authenticate(p); err != nil {
		return nil, err
	}
	l, err := s.store.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(p) {
		return nil, forbidden("lead %s", leadID)
	}
	return l, nil
}
