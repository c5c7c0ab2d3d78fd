package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

var t0 = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

// clock is a manually advanced time source.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestStore opens a private in-memory database.
func newTestStore(t *testing.T) (*Store, *clock) {
	t.Helper()

	clk := &clock{now: t0}
	s, err := Open(context.Background(), memoryPath, WithClock(clk.Now))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s, clk
}

// seedBoard creates a board with the given column names in order.
// The first column is initial; names containing "Fechado" are final.
func seedBoard(t *testing.T, s *Store, id string, names ...string) []board.Column {
	t.Helper()
	ctx := context.Background()

	if err := s.CreateBoard(ctx, &board.Board{ID: id, Name: "Board " + id, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("CreateBoard() error = %v", err)
	}
	cols := make([]board.Column, 0, len(names))
	for i, name := range names {
		c, err := s.InsertColumn(ctx, &board.Column{
			ID:        fmt.Sprintf("%s-%s", id, name),
			BoardID:   id,
			Name:      name,
			Order:     i,
			IsInitial: i == 0,
			IsFinal:   name == "Fechado",
			CreatedAt: t0,
			UpdatedAt: t0,
		})
		if err != nil {
			t.Fatalf("InsertColumn(%s) error = %v", name, err)
		}
		cols = append(cols, *c)
	}
	return cols
}

func seedLead(t *testing.T, s *Store, id, agent string) {
	t.Helper()

	l := &lead.Lead{ID: id, AgentID: agent, Name: "Lead " + id, CreatedAt: t0, UpdatedAt: t0}
	created := timeline.NewCreatedEntry("created-"+id, id, l.Name, agent, t0)
	if err := s.CreateLead(context.Background(), l, []timeline.Entry{created}); err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}
}

func move(t *testing.T, s *Store, clk *clock, leadID string, target board.Column) bool {
	t.Helper()

	out, err := s.ApplyMove(context.Background(), leadID, target, func(from *board.Column) timeline.Entry {
		var origin *timeline.Place
		if from != nil {
			origin = &timeline.Place{ColumnID: from.ID, Name: from.Name, BoardID: from.BoardID}
		}
		to := timeline.Place{ColumnID: target.ID, Name: target.Name, BoardID: target.BoardID}
		return timeline.NewMoveEntry(fmt.Sprintf("mv-%s-%d", leadID, clk.now.UnixNano()), leadID, origin, to, "tester", clk.now)
	})
	if err != nil {
		t.Fatalf("ApplyMove(%s -> %s) error = %v", leadID, target.ID, err)
	}
	return out.Moved
}

func orders(t *testing.T, s *Store, boardID string) []string {
	t.Helper()

	b, err := s.GetBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("GetBoard() error = %v", err)
	}
	out := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		if c.Order != i {
			t.Errorf("column %s has order %d at index %d", c.ID, c.Order, i)
		}
		out[i] = c.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	if s.Name() != "sqlite" {
		t.Errorf("Name() = %q, want sqlite", s.Name())
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetBoard(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetBoard() error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetColumn(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetColumn() error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetLead(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetLead() error = %v, want ErrNotFound", err)
	}
	if _, err := s.InsertColumn(ctx, &board.Column{ID: "c", BoardID: "nope", Name: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("InsertColumn() error = %v, want ErrNotFound", err)
	}
}

func TestStore_InsertColumnShiftsAndClamps(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	seedBoard(t, s, "b", "Novo", "Fechado")

	if _, err := s.InsertColumn(ctx, &board.Column{ID: "mid", BoardID: "b", Name: "Contatado", Order: 1, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("InsertColumn() error = %v", err)
	}
	c, err := s.InsertColumn(ctx, &board.Column{ID: "tail", BoardID: "b", Name: "Arquivo", Order: 99, CreatedAt: t0, UpdatedAt: t0})
	if err != nil {
		t.Fatalf("InsertColumn() error = %v", err)
	}
	if c.Order != 3 {
		t.Errorf("clamped Order = %d, want 3", c.Order)
	}

	want := []string{"Novo", "Contatado", "Fechado", "Arquivo"}
	if got := orders(t, s, "b"); !equal(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestStore_SingleInitialColumn(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	cols := seedBoard(t, s, "b", "Novo", "Contatado")

	if _, err := s.InsertColumn(ctx, &board.Column{ID: "entry", BoardID: "b", Name: "Entrada", IsInitial: true, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("InsertColumn() error = %v", err)
	}
	promoted := cols[1]
	promoted.IsInitial = true
	if _, err := s.UpdateColumn(ctx, &promoted); err != nil {
		t.Fatalf("UpdateColumn() error = %v", err)
	}

	b, err := s.GetBoard(ctx, "b")
	if err != nil {
		t.Fatalf("GetBoard() error = %v", err)
	}
	initial := 0
	for _, c := range b.Columns {
		if c.IsInitial {
			initial++
			if c.ID != promoted.ID {
				t.Errorf("initial column = %s, want %s", c.ID, promoted.ID)
			}
		}
	}
	if initial != 1 {
		t.Errorf("initial columns = %d, want 1", initial)
	}
}

func TestStore_ReorderColumns(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	cols := seedBoard(t, s, "b", "Novo", "Contatado", "Fechado")
	novo, contatado, fechado := cols[0], cols[1], cols[2]

	b, err := s.ReorderColumns(ctx, "b", board.PositionsFromOrder([]string{fechado.ID, novo.ID, contatado.ID}), nil)
	if err != nil {
		t.Fatalf("ReorderColumns() error = %v", err)
	}
	if b.Version != 4 {
		t.Errorf("Version = %d, want 4 (three inserts and a reorder)", b.Version)
	}

	want := []string{"Fechado", "Novo", "Contatado"}
	if got := orders(t, s, "b"); !equal(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}

	t.Run("subset is rejected without partial write", func(t *testing.T) {
		_, err := s.ReorderColumns(ctx, "b", board.PositionsFromOrder([]string{novo.ID, fechado.ID}), nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ReorderColumns() error = %v, want ErrValidation", err)
		}
		if got := orders(t, s, "b"); !equal(got, want) {
			t.Errorf("columns after failed reorder = %v, want %v", got, want)
		}
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		stale := int64(1)
		_, err := s.ReorderColumns(ctx, "b", board.PositionsFromOrder([]string{novo.ID, contatado.ID, fechado.ID}), &stale)
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("ReorderColumns() error = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := s.ReorderColumns(ctx, "zzz", nil, nil)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ReorderColumns() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_DeleteColumnGuard(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	cols := seedBoard(t, s, "b", "Novo", "Contatado", "Fechado")
	seedLead(t, s, "L", "agent")
	move(t, s, clk, "L", cols[2])

	if err := s.DeleteColumn(ctx, cols[1].ID); err != nil {
		t.Fatalf("DeleteColumn(empty) error = %v", err)
	}
	if err := s.DeleteColumn(ctx, cols[2].ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeleteColumn(occupied) error = %v, want ErrConflict", err)
	}

	want := []string{"Novo", "Fechado"}
	if got := orders(t, s, "b"); !equal(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	if err := s.DeleteColumn(ctx, cols[1].ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteColumn(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestStore_ApplyMove(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	cols := seedBoard(t, s, "b", "Novo", "Contatado", "Fechado")
	seedLead(t, s, "L", "agent")

	if !move(t, s, clk, "L", cols[0]) {
		t.Fatal("first move reported no-op")
	}
	clk.Advance(2 * time.Hour)
	if move(t, s, clk, "L", cols[0]) {
		t.Error("repeated move reported a change")
	}
	if !move(t, s, clk, "L", cols[2]) {
		t.Fatal("second move reported no-op")
	}

	l, err := s.GetLead(ctx, "L")
	if err != nil {
		t.Fatalf("GetLead() error = %v", err)
	}
	if !l.InColumn(cols[2].ID) {
		t.Errorf("lead column = %v, want %s", l.KanbanColumnID, cols[2].ID)
	}

	entries, err := s.ListEntries(ctx, "L")
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	var moves []timeline.Entry
	for _, e := range entries {
		if e.Action == timeline.ActionKanbanMoved {
			moves = append(moves, e)
		}
	}
	if len(moves) != 2 {
		t.Fatalf("KANBAN_MOVED entries = %d, want 2", len(moves))
	}
	if moves[0].FromColumnID() != "" || moves[0].ToColumnID() != cols[0].ID {
		t.Errorf("first move = %v, want null -> %s", moves[0].Metadata, cols[0].ID)
	}
	if moves[1].FromColumnID() != cols[0].ID || moves[1].ToColumnID() != cols[2].ID {
		t.Errorf("second move = %v, want %s -> %s", moves[1].Metadata, cols[0].ID, cols[2].ID)
	}
	if moves[1].Seq <= moves[0].Seq {
		t.Errorf("Seq not increasing: %d then %d", moves[0].Seq, moves[1].Seq)
	}

	_, err = s.ApplyMove(ctx, "L", board.Column{ID: "ghost"}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ApplyMove(unknown column) error = %v, want ErrNotFound", err)
	}
	_, err = s.ApplyMove(ctx, "ghost", cols[0], nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ApplyMove(unknown lead) error = %v, want ErrNotFound", err)
	}
}

func TestStore_MoveConservationLaw(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	cols := seedBoard(t, s, "b", "Novo", "Contatado", "Fechado")
	seedLead(t, s, "L", "agent")

	for _, i := range []int{0, 1, 0, 0, 2, 1, 2} {
		clk.Advance(time.Minute)
		move(t, s, clk, "L", cols[i])
	}

	entries, err := s.ListEntries(ctx, "L")
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	l, err := s.GetLead(ctx, "L")
	if err != nil {
		t.Fatalf("GetLead() error = %v", err)
	}

	for _, c := range cols {
		balance := 0
		for _, e := range entries {
			if e.Action != timeline.ActionKanbanMoved {
				continue
			}
			if e.ToColumnID() == c.ID {
				balance++
			}
			if e.FromColumnID() == c.ID {
				balance--
			}
		}
		want := 0
		if l.InColumn(c.ID) {
			want = 1
		}
		if balance != want {
			t.Errorf("column %s: in-out = %d, want %d", c.Name, balance, want)
		}
	}
}

func TestStore_TimelineIsAppendOnly(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	seedLead(t, s, "L", "agent")

	if _, err := s.db.ExecContext(ctx, `UPDATE timeline_entries SET description = 'edited'`); err == nil {
		t.Error("UPDATE on timeline_entries succeeded, want trigger abort")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM timeline_entries`); err == nil {
		t.Error("DELETE on timeline_entries succeeded, want trigger abort")
	}

	note := &timeline.Entry{ID: "n1", LeadID: "L", Action: timeline.ActionNoteAdded, Description: "ligar amanhã", CreatedAt: t0}
	if err := s.AppendEntry(ctx, note); err != nil {
		t.Fatalf("AppendEntry() error = %v", err)
	}
	if note.Seq == 0 {
		t.Error("AppendEntry() left Seq unset")
	}
	if err := s.AppendEntry(ctx, &timeline.Entry{ID: "n2", LeadID: "ghost", Action: timeline.ActionNoteAdded}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AppendEntry(unknown lead) error = %v, want ErrNotFound", err)
	}
}

func TestStore_LoadSnapshotScopesByBoard(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(t)
	ctx := context.Background()
	a := seedBoard(t, s, "a", "Novo", "Fechado")
	b := seedBoard(t, s, "b", "Novo")
	seedLead(t, s, "on-a", "agent-1")
	seedLead(t, s, "on-b", "agent-1")
	seedLead(t, s, "loose", "agent-2")
	move(t, s, clk, "on-a", a[0])
	clk.Advance(time.Hour)
	move(t, s, clk, "on-a", a[1])
	move(t, s, clk, "on-b", b[0])

	boardID := "a"
	snap, err := s.LoadSnapshot(ctx, lead.Filter{BoardID: &boardID})
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(snap.Columns) != 2 {
		t.Errorf("Columns = %d, want 2", len(snap.Columns))
	}
	got := map[string]bool{}
	for _, l := range snap.Leads {
		got[l.ID] = true
	}
	if !got["on-a"] || !got["loose"] || got["on-b"] {
		t.Errorf("Leads = %v, want on-a and loose only", got)
	}
	if n := len(snap.Moves["on-a"]); n != 2 {
		t.Errorf("Moves[on-a] = %d, want 2", n)
	}

	agent := "agent-2"
	snap, err = s.LoadSnapshot(ctx, lead.Filter{AgentID: &agent})
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(snap.Leads) != 1 || snap.Leads[0].ID != "loose" {
		t.Errorf("Leads = %+v, want only loose", snap.Leads)
	}

	from := t0.Add(time.Minute)
	snap, err = s.LoadSnapshot(ctx, lead.Filter{DateFrom: &from})
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(snap.Leads) != 0 || len(snap.Moves) != 0 {
		t.Errorf("LoadSnapshot(after all creations) = %d leads, %d move sets, want none", len(snap.Leads), len(snap.Moves))
	}
}

func TestStore_ListBoards(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	seedBoard(t, s, "a", "Novo", "Fechado")
	seedBoard(t, s, "b", "Novo")

	boards, err := s.ListBoards(context.Background())
	if err != nil {
		t.Fatalf("ListBoards() error = %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("ListBoards() = %d boards, want 2", len(boards))
	}
	counts := map[string]int{}
	for _, b := range boards {
		counts[b.ID] = len(b.Columns)
	}
	if counts["a"] != 2 || counts["b"] != 1 {
		t.Errorf("column counts = %v, want a:2 b:1", counts)
	}
}

func TestStore_CreateBoardWithColumns(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	owner := "agent-1"
	b := &board.Board{
		ID: "own", Name: "Mine", OwnerID: &owner, Version: 1, CreatedAt: t0, UpdatedAt: t0,
		Columns: []board.Column{
			{ID: "c-novo", Name: "Novo", Color: board.DefaultColor, IsInitial: true, CreatedAt: t0, UpdatedAt: t0},
			{ID: "c-fim", Name: "Fechado", Color: board.DefaultColor, IsFinal: true, Outcome: board.OutcomeWon, CreatedAt: t0, UpdatedAt: t0},
		},
	}
	if err := s.CreateBoard(ctx, b); err != nil {
		t.Fatalf("CreateBoard() error = %v", err)
	}

	got, err := s.GetBoard(ctx, "own")
	if err != nil {
		t.Fatalf("GetBoard() error = %v", err)
	}
	if got.OwnerID == nil || *got.OwnerID != owner {
		t.Errorf("OwnerID = %v, want %q", got.OwnerID, owner)
	}
	if want := []string{"Novo", "Fechado"}; !equal(orders(t, s, "own"), want) {
		t.Errorf("orders = %v, want %v", orders(t, s, "own"), want)
	}
	if c := got.Columns[len(got.Columns)-1]; c.ID != "c-fim" || c.Outcome != board.OutcomeWon || !c.IsFinal {
		t.Errorf("final column = %+v, want won and final", c)
	}

	dup := &board.Board{ID: "own", Name: "Again", CreatedAt: t0, UpdatedAt: t0}
	if err := s.CreateBoard(ctx, dup); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("CreateBoard(duplicate) error = %v, want %v", err, domain.ErrConflict)
	}
}

func TestWrapErr(t *testing.T) {
	t.Parallel()

	if wrapErr("op", nil) != nil {
		t.Error("wrapErr(nil) != nil")
	}
	if err := wrapErr("op", domain.ErrConflict); !errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("wrapErr(conflict) = %v, want conflict only", err)
	}
	if err := wrapErr("op", context.DeadlineExceeded); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("wrapErr(deadline) = %v, want ErrUnavailable", err)
	}
}
