package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

const leadColumns = `l.id, l.agent_id, l.name, l.email, l.phone, l.priority, l.kanban_column_id, l.created_at, l.updated_at`

// CreateLead implements ports.PipelineStore.
func (s *Store) CreateLead(ctx context.Context, l *lead.Lead, entries []timeline.Entry) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if l.KanbanColumnID != nil {
			if err := columnExists(ctx, tx, *l.KanbanColumnID); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leads (id, agent_id, name, email, phone, priority, kanban_column_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.AgentID, l.Name, l.Email, l.Phone, string(l.Priority), nullString(l.KanbanColumnID),
			formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
		); err != nil {
			return err
		}
		for i := range entries {
			if err := insertEntry(ctx, tx, &entries[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr("creating lead", err)
}

// GetLead implements ports.PipelineStore.
func (s *Store) GetLead(ctx context.Context, id string) (*lead.Lead, error) {
	l, err := getLead(ctx, s.db, id)
	if err != nil {
		return nil, wrapErr("getting lead", err)
	}
	return l, nil
}

// ApplyMove implements ports.PipelineStore.
func (s *Store) ApplyMove(ctx context.Context, leadID string, target board.Column, build ports.MoveEntryFunc) (*ports.MoveOutcome, error) {
	out := &ports.MoveOutcome{}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var current sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT kanban_column_id FROM leads WHERE id = ?`, leadID).Scan(&current)
		if err != nil {
			return notFound(err, "lead", leadID)
		}
		if err := columnExists(ctx, tx, target.ID); err != nil {
			return err
		}

		out.FromColumnID = stringPtr(current)
		if current.Valid && current.String == target.ID {
			return nil
		}

		var from *board.Column
		if current.Valid {
			if from, err = getColumn(ctx, tx, current.String); err != nil {
				return err
			}
		}

		entry := build(from)
		if _, err := tx.ExecContext(ctx,
			`UPDATE leads SET kanban_column_id = ?, updated_at = ? WHERE id = ?`,
			target.ID, formatTime(entry.CreatedAt), leadID,
		); err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, &entry); err != nil {
			return err
		}

		out.Moved = true
		out.Entry = &entry
		return nil
	})
	if err != nil {
		return nil, wrapErr("applying move", err)
	}
	return out, nil
}

func getLead(ctx context.Context, q querier, id string) (*lead.Lead, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads l WHERE l.id = ?`, id)
	if err != nil {
		return nil, err
	}
	leads, err := scanLeads(rows)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	return &leads[0], nil
}

func columnExists(ctx context.Context, q querier, id string) error {
	var one int
	if err := q.QueryRowContext(ctx, `SELECT 1 FROM columns WHERE id = ?`, id).Scan(&one); err != nil {
		return notFound(err, "column", id)
	}
	return nil
}

func scanLeads(rows *sql.Rows) ([]lead.Lead, error) {
	defer rows.Close()

	var out []lead.Lead
	for rows.Next() {
		var (
			l                lead.Lead
			priority         string
			column           sql.NullString
			created, updated string
		)
		if err := rows.Scan(&l.ID, &l.AgentID, &l.Name, &l.Email, &l.Phone, &priority, &column,
			&created, &updated); err != nil {
			return nil, err
		}
		l.Priority = lead.Priority(priority)
		l.KanbanColumnID = stringPtr(column)
		var err error
		if l.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if l.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
