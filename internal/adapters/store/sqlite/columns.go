package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
)

const columnSelect = `SELECT c.id, c.board_id, c.name, c.color, c.position, c.is_initial, c.is_final, c.outcome,
	c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM leads l WHERE l.kanban_column_id = c.id)
FROM columns c`

// GetColumn implements ports.PipelineStore.
func (s *Store) GetColumn(ctx context.Context, id string) (*board.Column, error) {
	c, err := getColumn(ctx, s.db, id)
	if err != nil {
		return nil, wrapErr("getting column", err)
	}
	return c, nil
}

// InsertColumn implements ports.PipelineStore.
func (s *Store) InsertColumn(ctx context.Context, c *board.Column) (*board.Column, error) {
	var out *board.Column
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var n int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(c.id) FROM boards b LEFT JOIN columns c ON c.board_id = b.id WHERE b.id = ? GROUP BY b.id`,
			c.BoardID,
		).Scan(&n)
		if err != nil {
			return notFound(err, "board", c.BoardID)
		}

		pos := min(max(c.Order, 0), n)
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET position = position + 1 WHERE board_id = ? AND position >= ?`,
			c.BoardID, pos,
		); err != nil {
			return err
		}
		if c.IsInitial {
			if err := clearInitial(ctx, tx, c.BoardID, c.ID); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, board_id, name, color, position, is_initial, is_final, outcome, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.BoardID, c.Name, c.Color, pos, boolInt(c.IsInitial), boolInt(c.IsFinal), string(c.Outcome),
			formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		); err != nil {
			return err
		}
		if err := bumpVersion(ctx, tx, c.BoardID, formatTime(c.UpdatedAt)); err != nil {
			return err
		}

		out, err = getColumn(ctx, tx, c.ID)
		return err
	})
	if err != nil {
		return nil, wrapErr("inserting column", err)
	}
	return out, nil
}

// UpdateColumn implements ports.PipelineStore.
func (s *Store) UpdateColumn(ctx context.Context, c *board.Column) (*board.Column, error) {
	var out *board.Column
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if c.IsInitial {
			if err := clearInitial(ctx, tx, c.BoardID, c.ID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE columns SET name = ?, color = ?, is_initial = ?, is_final = ?, outcome = ?, updated_at = ?
			WHERE id = ?`,
			c.Name, c.Color, boolInt(c.IsInitial), boolInt(c.IsFinal), string(c.Outcome), formatTime(c.UpdatedAt), c.ID,
		)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("column %s: %w", c.ID, domain.ErrNotFound)
		}

		out, err = getColumn(ctx, tx, c.ID)
		return err
	})
	if err != nil {
		return nil, wrapErr("updating column", err)
	}
	return out, nil
}

// DeleteColumn implements ports.PipelineStore.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		c, err := getColumn(ctx, tx, id)
		if err != nil {
			return err
		}
		if c.LeadCount > 0 {
			return fmt.Errorf("column %s holds %d leads: %w", id, c.LeadCount, domain.ErrConflict)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET position = position - 1 WHERE board_id = ? AND position > ?`,
			c.BoardID, c.Order,
		); err != nil {
			return err
		}
		return bumpVersion(ctx, tx, c.BoardID, formatTime(s.now()))
	})
	return wrapErr("deleting column", err)
}

func getColumn(ctx context.Context, q querier, id string) (*board.Column, error) {
	rows, err := q.QueryContext(ctx, columnSelect+` WHERE c.id = ?`, id)
	if err != nil {
		return nil, err
	}
	cols, err := scanColumns(rows)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("column %s: %w", id, domain.ErrNotFound)
	}
	return &cols[0], nil
}

// listColumns returns a board's columns by rank, or every column grouped by
// board when boardID is empty.
func listColumns(ctx context.Context, q querier, boardID string) ([]board.Column, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if boardID == "" {
		rows, err = q.QueryContext(ctx, columnSelect+` ORDER BY c.board_id, c.position`)
	} else {
		rows, err = q.QueryContext(ctx, columnSelect+` WHERE c.board_id = ? ORDER BY c.position`, boardID)
	}
	if err != nil {
		return nil, err
	}
	return scanColumns(rows)
}

func columnIDs(ctx context.Context, q querier, boardID string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT id FROM columns WHERE board_id = ?`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func clearInitial(ctx context.Context, q querier, boardID, keepID string) error {
	_, err := q.ExecContext(ctx,
		`UPDATE columns SET is_initial = 0 WHERE board_id = ? AND id <> ? AND is_initial = 1`,
		boardID, keepID,
	)
	return err
}

func scanColumns(rows *sql.Rows) ([]board.Column, error) {
	defer rows.Close()

	var out []board.Column
	for rows.Next() {
		var (
			c                board.Column
			initial, final   int
			outcome          string
			created, updated string
		)
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Name, &c.Color, &c.Order, &initial, &final, &outcome,
			&created, &updated, &c.LeadCount); err != nil {
			return nil, err
		}
		c.IsInitial = initial == 1
		c.IsFinal = final == 1
		c.Outcome = board.Outcome(outcome)
		var err error
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
