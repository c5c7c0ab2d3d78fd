// Package timeline defines the append-only log of facts about a lead.
// KANBAN_MOVED entries are the source of truth for dwell-time analytics.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// Action is the enumerated kind of a timeline entry.
type Action string

const (
	ActionCreated          Action = "CREATED"
	ActionKanbanMoved      Action = "KANBAN_MOVED"
	ActionStatusChanged    Action = "STATUS_CHANGED"
	ActionNoteAdded        Action = "NOTE_ADDED"
	ActionContactMade      Action = "CONTACT_MADE"
	ActionEmailSent        Action = "EMAIL_SENT"
	ActionCallMade         Action = "CALL_MADE"
	ActionMeetingScheduled Action = "MEETING_SCHEDULED"
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreated, ActionKanbanMoved, ActionStatusChanged, ActionNoteAdded,
		ActionContactMade, ActionEmailSent, ActionCallMade, ActionMeetingScheduled:
		return true
	default:
		return false
	}
}

// IsSystem reports whether the action is written only by the engine itself.
// Callers may not append system actions directly.
func (a Action) IsSystem() bool {
	return a == ActionCreated || a == ActionKanbanMoved
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}

// Metadata keys written on KANBAN_MOVED entries.
const (
	MetaFromColumnID = "fromColumnId"
	MetaFromColumn   = "fromColumn"
	MetaToColumnID   = "toColumnId"
	MetaToColumn     = "toColumn"
	MetaBoardID      = "boardId"
)

// Entry is an immutable fact. Seq is assigned by the store on append and
// breaks ties between entries sharing a timestamp.
type Entry struct {
	ID          string
	Seq         int64
	LeadID      string
	Action      Action
	Description string
	Metadata    map[string]any
	ActorID     string
	CreatedAt   time.Time
}

// Validate checks business rules for the Entry entity.
func (e *Entry) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.LeadID) == "" {
		fields["lead_id"] = domain.MsgRequired
	}
	if !e.Action.IsValid() {
		fields["action"] = fmt.Sprintf("invalid: %q", e.Action)
	}
	if strings.TrimSpace(e.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if e.Action == ActionKanbanMoved && e.ToColumnID() == "" {
		fields["metadata."+MetaToColumnID] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToColumnID returns the destination column of a move entry, or "".
func (e *Entry) ToColumnID() string {
	return e.metaString(MetaToColumnID)
}

// FromColumnID returns the origin column of a move entry, or "" when the
// lead was unassigned before the move.
func (e *Entry) FromColumnID() string {
	return e.metaString(MetaFromColumnID)
}

func (e *Entry) metaString(key string) string {
	if e.Metadata == nil {
		return ""
	}
	s, _ := e.Metadata[key].(string)
	return s
}

// Before orders entries by creation time, then by sequence.
func (e *Entry) Before(other *Entry) bool {
	if !e.CreatedAt.Equal(other.CreatedAt) {
		return e.CreatedAt.Before(other.CreatedAt)
	}
	return e.Seq < other.Seq
}
