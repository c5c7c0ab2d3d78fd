package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

// LoadSnapshot implements ports.PipelineStore. All reads share one
// transaction so the leads and their move history are mutually consistent.
func (s *Store) LoadSnapshot(ctx context.Context, filter lead.Filter) (*analytics.Snapshot, error) {
	snap := &analytics.Snapshot{Moves: make(map[string][]timeline.Entry)}
	where, args := leadScope(filter)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		boardID := ""
		if filter.BoardID != nil {
			boardID = *filter.BoardID
		}
		var err error
		if snap.Columns, err = listColumns(ctx, tx, boardID); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads l`+where+` ORDER BY l.created_at, l.id`, args...)
		if err != nil {
			return err
		}
		if snap.Leads, err = scanLeads(rows); err != nil {
			return err
		}

		moveArgs := append([]any{string(timeline.ActionKanbanMoved)}, args...)
		rows, err = tx.QueryContext(ctx,
			`SELECT `+entryColumns+` FROM timeline_entries t JOIN leads l ON l.id = t.lead_id
			WHERE t.action = ?`+strings.Replace(where, " WHERE ", " AND ", 1)+`
			ORDER BY t.lead_id, t.created_at, t.seq`,
			moveArgs...,
		)
		if err != nil {
			return err
		}
		entries, err := scanEntries(rows)
		if err != nil {
			return err
		}
		for _, e := range entries {
			snap.Moves[e.LeadID] = append(snap.Moves[e.LeadID], e)
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("loading analytics snapshot", err)
	}
	return snap, nil
}

// leadScope renders the filter as a WHERE clause over the leads table
// aliased as l. The clause is empty when no filter is set.
func leadScope(f lead.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.AgentID != nil {
		conds = append(conds, "l.agent_id = ?")
		args = append(args, *f.AgentID)
	}
	if f.DateFrom != nil {
		conds = append(conds, "l.created_at >= ?")
		args = append(args, formatTime(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "l.created_at <= ?")
		args = append(args, formatTime(*f.DateTo))
	}
	if f.BoardID != nil {
		conds = append(conds, "(l.kanban_column_id IS NULL OR l.kanban_column_id IN (SELECT id FROM columns WHERE board_id = ?))")
		args = append(args, *f.BoardID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
