// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// ColumnResponse represents a single column in HTTP responses.
type ColumnResponse struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Order     int    `json:"order"`
	IsInitial bool   `json:"is_initial"`
	IsFinal   bool   `json:"is_final"`
	Outcome   string `json:"outcome,omitempty"`
	LeadCount int    `json:"lead_count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToColumnResponse converts a domain Column entity to an HTTP response DTO.
func ToColumnResponse(c *board.Column) ColumnResponse {
	return ColumnResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Name:      c.Name,
		Color:     c.Color,
		Order:     c.Order,
		IsInitial: c.IsInitial,
		IsFinal:   c.IsFinal,
		Outcome:   c.Outcome.String(),
		LeadCount: c.LeadCount,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// BoardResponse represents a board with its ordered columns.
type BoardResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	OwnerID    *string          `json:"owner_id"`
	Version    int64            `json:"version"`
	Columns    []ColumnResponse `json:"columns"`
	TotalLeads int              `json:"total_leads"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

// ToBoardResponse converts a domain Board entity to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	cols := make([]ColumnResponse, len(b.Columns))
	for i := range b.Columns {
		cols[i] = ToColumnResponse(&b.Columns[i])
	}
	return BoardResponse{
		ID:         b.ID,
		Name:       b.Name,
		OwnerID:    b.OwnerID,
		Version:    b.Version,
		Columns:    cols,
		TotalLeads: b.TotalLeads(),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

// BoardOverviewResponse pairs a board with its metrics summary.
type BoardOverviewResponse struct {
	BoardResponse
	Metrics MetricsResponse `json:"metrics"`
}

// BoardListResponse represents the boards visible to the caller.
type BoardListResponse struct {
	Boards []BoardOverviewResponse `json:"boards"`
	Count  int                     `json:"count"`
}

// ToBoardListResponse converts board overviews to an HTTP list response DTO.
func ToBoardListResponse(overviews []ports.BoardOverview) BoardListResponse {
	items := make([]BoardOverviewResponse, len(overviews))
	for i := range overviews {
		items[i] = BoardOverviewResponse{
			BoardResponse: ToBoardResponse(&overviews[i].Board),
			Metrics:       ToMetricsResponse(&overviews[i].Metrics),
		}
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// LeadResponse represents a single lead in HTTP responses.
type LeadResponse struct {
	ID             string  `json:"id"`
	AgentID        string  `json:"agent_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	KanbanColumnID *string `json:"kanban_column_id"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ToLeadResponse converts a domain Lead entity to an HTTP response DTO.
func ToLeadResponse(l *lead.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		AgentID:        l.AgentID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Priority:       l.Priority.String(),
		KanbanColumnID: l.KanbanColumnID,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
}

// TimelineEntryResponse represents one timeline fact.
type TimelineEntryResponse struct {
	ID          string         `json:"id"`
	LeadID      string         `json:"lead_id"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	ActorID     string         `json:"actor_id"`
	CreatedAt   string         `json:"created_at"`
}

// ToTimelineEntryResponse converts a domain Entry to an HTTP response DTO.
func ToTimelineEntryResponse(e *timeline.Entry) TimelineEntryResponse {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return TimelineEntryResponse{
		ID:          e.ID,
		LeadID:      e.LeadID,
		Action:      e.Action.String(),
		Description: e.Description,
		Metadata:    meta,
		ActorID:     e.ActorID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
	}
}

// TimelineResponse represents a lead's ordered timeline.
type TimelineResponse struct {
	Entries []TimelineEntryResponse `json:"entries"`
	Count   int                     `json:"count"`
}

// ToTimelineResponse converts entries to an HTTP list response DTO.
func ToTimelineResponse(entries []timeline.Entry) TimelineResponse {
	items := make([]TimelineEntryResponse, len(entries))
	for i := range entries {
		items[i] = ToTimelineEntryResponse(&entries[i])
	}
	return TimelineResponse{Entries: items, Count: len(items)}
}

// MoveLeadResponse reports the outcome of a move. Entry is omitted when the
// lead was already in the target column.
type MoveLeadResponse struct {
	LeadID       string                 `json:"lead_id"`
	FromColumnID *string                `json:"from_column_id"`
	NewColumnID  string                 `json:"new_column_id"`
	Moved        bool                   `json:"moved"`
	Entry        *TimelineEntryResponse `json:"entry,omitempty"`
}

// ToMoveLeadResponse converts a ports.MoveResult to an HTTP response DTO.
func ToMoveLeadResponse(r *ports.MoveResult) MoveLeadResponse {
	resp := MoveLeadResponse{
		LeadID:       r.LeadID,
		FromColumnID: r.FromColumnID,
		NewColumnID:  r.NewColumnID,
		Moved:        r.Moved,
	}
	if r.Entry != nil {
		e := ToTimelineEntryResponse(r.Entry)
		resp.Entry = &e
	}
	return resp
}

// ColumnMetricsResponse holds per-column occupancy and dwell figures.
type ColumnMetricsResponse struct {
	ColumnID      string  `json:"column_id"`
	BoardID       string  `json:"board_id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Order         int     `json:"order"`
	IsFinal       bool    `json:"is_final"`
	Outcome       string  `json:"outcome,omitempty"`
	LeadCount     int     `json:"lead_count"`
	AvgDwellHours float64 `json:"avg_dwell_hours"`
	AvgDwellDays  float64 `json:"avg_dwell_days"`
}

// MetricsResponse represents pipeline analytics.
type MetricsResponse struct {
	TotalLeads        int                     `json:"total_leads"`
	Unassigned        int                     `json:"unassigned"`
	ClosedCount       int                     `json:"closed_count"`
	LostCount         int                     `json:"lost_count"`
	ConversionRate    float64                 `json:"conversion_rate"`
	ClosedVsLostRatio float64                 `json:"closed_vs_lost_ratio"`
	Columns           []ColumnMetricsResponse `json:"columns"`
	GeneratedAt       string                  `json:"generated_at"`
}

// ToMetricsResponse converts analytics metrics to an HTTP response DTO.
func ToMetricsResponse(m *analytics.Metrics) MetricsResponse {
	cols := make([]ColumnMetricsResponse, len(m.Columns))
	for i, c := range m.Columns {
		cols[i] = ColumnMetricsResponse{
			ColumnID:      c.ColumnID,
			BoardID:       c.BoardID,
			Name:          c.Name,
			Color:         c.Color,
			Order:         c.Order,
			IsFinal:       c.IsFinal,
			Outcome:       c.Outcome.String(),
			LeadCount:     c.LeadCount,
			AvgDwellHours: c.AvgDwellHours,
			AvgDwellDays:  c.AvgDwellDays,
		}
	}
	return MetricsResponse{
		TotalLeads:        m.TotalLeads,
		Unassigned:        m.Unassigned,
		ClosedCount:       m.ClosedCount,
		LostCount:         m.LostCount,
		ConversionRate:    m.ConversionRate,
		ClosedVsLostRatio: m.ClosedVsLostRatio,
		Columns:           cols,
		GeneratedAt:       m.GeneratedAt.Format(time.RFC3339),
	}
}
