// Package analytics derives pipeline metrics from a read-only snapshot of
// columns, leads and their move history. Nothing here performs I/O: the
// caller loads a Snapshot and Compute folds it.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

// Snapshot is everything Compute needs. Columns defines the scope: leads
// sitting in a column outside this set are not counted. Moves holds each
// lead's KANBAN_MOVED entries in any order.
type Snapshot struct {
	Columns []board.Column
	Leads   []lead.Lead
	Moves   map[string][]timeline.Entry
	Now     time.Time
}

// Metrics is the aggregate view of a pipeline.
type Metrics struct {
	TotalLeads        int
	Unassigned        int
	ClosedCount       int
	LostCount         int
	ConversionRate    float64
	ClosedVsLostRatio float64
	Columns           []ColumnMetrics
	GeneratedAt       time.Time
}

// ColumnMetrics holds per-stage occupancy and dwell statistics.
type ColumnMetrics struct {
	ColumnID      string
	BoardID       string
	Name          string
	Color         string
	Order         int
	IsFinal       bool
	Outcome       board.Outcome
	LeadCount     int
	Intervals     int
	AvgDwellHours float64
	AvgDwellDays  float64
}

// Compute folds a snapshot into metrics. An empty snapshot yields zeros.
func Compute(s Snapshot) Metrics {
	m := Metrics{GeneratedAt: s.Now}

	index := make(map[string]int, len(s.Columns))
	m.Columns = make([]ColumnMetrics, len(s.Columns))
	for i := range s.Columns {
		c := &s.Columns[i]
		index[c.ID] = i
		m.Columns[i] = ColumnMetrics{
			ColumnID: c.ID,
			BoardID:  c.BoardID,
			Name:     c.Name,
			Color:    c.Color,
			Order:    c.Order,
			IsFinal:  c.IsFinal,
			Outcome:  c.Terminal(),
		}
	}

	dwell := make([]time.Duration, len(s.Columns))
	for i := range s.Leads {
		l := &s.Leads[i]
		if l.KanbanColumnID == nil {
			m.Unassigned++
		} else {
			pos, ok := index[*l.KanbanColumnID]
			if !ok {
				continue
			}
			m.Columns[pos].LeadCount++
		}
		m.TotalLeads++

		for _, iv := range Intervals(s.Moves[l.ID], s.Now) {
			pos, ok := index[iv.ColumnID]
			if !ok {
				continue
			}
			dwell[pos] += iv.Duration()
			m.Columns[pos].Intervals++
		}
	}

	for i := range m.Columns {
		cm := &m.Columns[i]
		switch cm.Outcome {
		case board.OutcomeWon:
			m.ClosedCount += cm.LeadCount
		case board.OutcomeLost:
			m.LostCount += cm.LeadCount
		}
		if cm.Intervals > 0 {
			hours := dwell[i].Hours() / float64(cm.Intervals)
			cm.AvgDwellHours = round(hours, 2)
			cm.AvgDwellDays = round(hours/24, 2)
		}
	}

	if m.TotalLeads > 0 {
		m.ConversionRate = round(100*float64(m.ClosedCount)/float64(m.TotalLeads), 1)
	}
	m.ClosedVsLostRatio = round(100*float64(m.ClosedCount)/float64(max(m.ClosedCount+m.LostCount, 1)), 1)

	return m
}

// Interval is one continuous stay of a lead in a column.
type Interval struct {
	ColumnID string
	Start    time.Time
	End      time.Time
	Open     bool
}

// Duration returns the length of the stay, never negative.
func (iv Interval) Duration() time.Duration {
	if d := iv.End.Sub(iv.Start); d > 0 {
		return d
	}
	return 0
}

// Intervals replays one lead's move history. Each move opens a stay in its
// destination that ends at the lead's chronologically next move, whatever
// that move's destination, or at now when no later move exists.
func Intervals(entries []timeline.Entry, now time.Time) []Interval {
	moves := make([]timeline.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Action == timeline.ActionKanbanMoved && e.ToColumnID() != "" {
			moves = append(moves, e)
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Before(&moves[j])
	})

	out := make([]Interval, 0, len(moves))
	for i := range moves {
		iv := Interval{ColumnID: moves[i].ToColumnID(), Start: moves[i].CreatedAt}
		if i+1 < len(moves) {
			iv.End = moves[i+1].CreatedAt
		} else {
			iv.End = now
			iv.Open = true
		}
		out = append(out, iv)
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
