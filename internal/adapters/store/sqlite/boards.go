package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
)

const boardColumns = `id, name, owner_id, version, created_at, updated_at`

// ListBoards implements ports.PipelineStore.
func (s *Store) ListBoards(ctx context.Context) ([]board.Board, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+boardColumns+` FROM boards ORDER BY created_at, id`)
	if err != nil {
		return nil, wrapErr("listing boards", err)
	}
	boards, err := scanBoards(rows)
	if err != nil {
		return nil, wrapErr("listing boards", err)
	}

	cols, err := listColumns(ctx, s.db, "")
	if err != nil {
		return nil, wrapErr("listing boards", err)
	}
	byBoard := make(map[string][]board.Column, len(boards))
	for _, c := range cols {
		byBoard[c.BoardID] = append(byBoard[c.BoardID], c)
	}
	for i := range boards {
		boards[i].Columns = byBoard[boards[i].ID]
	}
	return boards, nil
}

// GetBoard implements ports.PipelineStore.
func (s *Store) GetBoard(ctx context.Context, id string) (*board.Board, error) {
	b, err := getBoard(ctx, s.db, id)
	if err != nil {
		return nil, wrapErr("getting board", err)
	}
	return b, nil
}

// CreateBoard implements ports.PipelineStore. Columns carried on b are
// inserted in slice order with ranks 0..n-1.
func (s *Store) CreateBoard(ctx context.Context, b *board.Board) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO boards (id, name, owner_id, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			b.ID, b.Name, nullString(b.OwnerID), b.Version, formatTime(b.CreatedAt), formatTime(b.UpdatedAt),
		); err != nil {
			return err
		}
		for i := range b.Columns {
			c := &b.Columns[i]
			c.BoardID, c.Order = b.ID, i
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO columns (id, board_id, name, color, position, is_initial, is_final, outcome, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, c.BoardID, c.Name, c.Color, c.Order, boolInt(c.IsInitial), boolInt(c.IsFinal), string(c.Outcome),
				formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
			); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr("creating board", err)
}

// ReorderColumns implements ports.PipelineStore.
func (s *Store) ReorderColumns(ctx context.Context, boardID string, positions []board.ColumnPosition, expectedVersion *int64) (*board.Board, error) {
	var out *board.Board
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var version int64
		err := tx.QueryRowContext(ctx, `SELECT version FROM boards WHERE id = ?`, boardID).Scan(&version)
		if err != nil {
			return notFound(err, "board", boardID)
		}
		if expectedVersion != nil && *expectedVersion != version {
			return fmt.Errorf("board %s is at version %d, expected %d: %w", boardID, version, *expectedVersion, domain.ErrConflict)
		}

		ids, err := columnIDs(ctx, tx, boardID)
		if err != nil {
			return err
		}
		if err := board.ValidateReorder(ids, positions); err != nil {
			return err
		}

		now := formatTime(s.now())
		for _, p := range positions {
			if _, err := tx.ExecContext(ctx,
				`UPDATE columns SET position = ?, updated_at = ? WHERE id = ? AND board_id = ?`,
				p.Order, now, p.ColumnID, boardID,
			); err != nil {
				return err
			}
		}
		if err := bumpVersion(ctx, tx, boardID, now); err != nil {
			return err
		}

		out, err = getBoard(ctx, tx, boardID)
		return err
	})
	if err != nil {
		return nil, wrapErr("reordering columns", err)
	}
	return out, nil
}

func getBoard(ctx context.Context, q querier, id string) (*board.Board, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	boards, err := scanBoards(rows)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	b := boards[0]
	b.Columns, err = listColumns(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBoards(rows *sql.Rows) ([]board.Board, error) {
	defer rows.Close()

	var out []board.Board
	for rows.Next() {
		var (
			b                board.Board
			owner            sql.NullString
			created, updated string
		)
		if err := rows.Scan(&b.ID, &b.Name, &owner, &b.Version, &created, &updated); err != nil {
			return nil, err
		}
		b.OwnerID = stringPtr(owner)
		var err error
		if b.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if b.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func bumpVersion(ctx context.Context, q querier, boardID, now string) error {
	_, err := q.ExecContext(ctx, `UPDATE boards SET version = version + 1, updated_at = ? WHERE id = ?`, now, boardID)
	return err
}
