package boardview

import (
	"slices"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
)

// Snapshot is the locally held picture of a board: columns in display order
// and the leads each one shows. Values are deep-copied on every mutation, so
// a captured Snapshot never changes underneath its holder.
type Snapshot struct {
	Version int64
	Order   []string
	Leads   map[string][]string
}

// FromBoard builds a snapshot from a board and the leads placed on it.
// Leads in columns outside the board are ignored.
func FromBoard(b *board.Board, leads []lead.Lead) Snapshot {
	cols := slices.Clone(b.Columns)
	slices.SortStableFunc(cols, func(x, y board.Column) int { return x.Order - y.Order })

	s := Snapshot{
		Version: b.Version,
		Order:   make([]string, 0, len(cols)),
		Leads:   make(map[string][]string, len(cols)),
	}
	for _, c := range cols {
		s.Order = append(s.Order, c.ID)
		s.Leads[c.ID] = []string{}
	}
	for _, l := range leads {
		if l.KanbanColumnID == nil {
			continue
		}
		if ids, ok := s.Leads[*l.KanbanColumnID]; ok {
			s.Leads[*l.KanbanColumnID] = append(ids, l.ID)
		}
	}
	return s
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Version: s.Version,
		Order:   slices.Clone(s.Order),
		Leads:   make(map[string][]string, len(s.Leads)),
	}
	for k, v := range s.Leads {
		out.Leads[k] = slices.Clone(v)
	}
	return out
}

// HasColumn reports whether the column is on the board.
func (s Snapshot) HasColumn(id string) bool {
	_, ok := s.Leads[id]
	return ok
}

// ColumnOf returns the column currently showing the lead.
func (s Snapshot) ColumnOf(leadID string) (string, bool) {
	for _, col := range s.Order {
		if slices.Contains(s.Leads[col], leadID) {
			return col, true
		}
	}
	return "", false
}

// Count returns how many leads the column shows.
func (s Snapshot) Count(columnID string) int {
	return len(s.Leads[columnID])
}

// withMove returns a copy with leadID taken out of whatever column holds it
// and appended to to.
func (s Snapshot) withMove(leadID, to string) Snapshot {
	out := s.Clone()
	for col, ids := range out.Leads {
		out.Leads[col] = slices.DeleteFunc(ids, func(id string) bool { return id == leadID })
	}
	out.Leads[to] = append(out.Leads[to], leadID)
	return out
}
