package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

const entryColumns = `t.seq, t.id, t.lead_id, t.action, t.description, t.metadata, t.actor_id, t.created_at`

// AppendEntry implements ports.PipelineStore.
func (s *Store) AppendEntry(ctx context.Context, e *timeline.Entry) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM leads WHERE id = ?`, e.LeadID).Scan(&one); err != nil {
			return notFound(err, "lead", e.LeadID)
		}
		return insertEntry(ctx, tx, e)
	})
	return wrapErr("appending timeline entry", err)
}

// ListEntries implements ports.PipelineStore.
func (s *Store) ListEntries(ctx context.Context, leadID string) ([]timeline.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM timeline_entries t WHERE t.lead_id = ? ORDER BY t.created_at, t.seq`,
		leadID,
	)
	if err != nil {
		return nil, wrapErr("listing timeline", err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, wrapErr("listing timeline", err)
	}
	return entries, nil
}

func insertEntry(ctx context.Context, q querier, e *timeline.Entry) error {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	res, err := q.ExecContext(ctx,
		`INSERT INTO timeline_entries (id, lead_id, action, description, metadata, actor_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.LeadID, string(e.Action), e.Description, string(raw), e.ActorID, formatTime(e.CreatedAt),
	)
	if err != nil {
		return err
	}
	if e.Seq, err = res.LastInsertId(); err != nil {
		return err
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]timeline.Entry, error) {
	defer rows.Close()

	var out []timeline.Entry
	for rows.Next() {
		var (
			e               timeline.Entry
			action, created string
			meta            string
		)
		if err := rows.Scan(&e.Seq, &e.ID, &e.LeadID, &action, &e.Description, &meta, &e.ActorID, &created); err != nil {
			return nil, err
		}
		e.Action = timeline.Action(action)
		if err := json.Unmarshal([]byte(meta), &e.Metadata); err != nil {
			return nil, fmt.Errorf("decoding metadata of entry %s: %w", e.ID, err)
		}
		var err error
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
