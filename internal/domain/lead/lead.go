// Package lead defines the tracked entity that travels through a pipeline.
package lead

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// Lead is a prospect owned by an agent. KanbanColumnID is nil until the lead
// is first placed on a board.
type Lead struct {
	ID             string
	AgentID        string
	Name           string
	Email          string
	Phone          string
	Priority       Priority
	KanbanColumnID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks business rules for the Lead entity.
func (l *Lead) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.AgentID) == "" {
		fields["agent_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(l.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if l.Email != "" && !strings.Contains(l.Email, "@") {
		fields["email"] = fmt.Sprintf("invalid: %q", l.Email)
	}
	if !l.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", l.Priority)
	}
	if l.KanbanColumnID != nil && strings.TrimSpace(*l.KanbanColumnID) == "" {
		fields["kanban_column_id"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsAssigned reports whether the lead currently sits in a column.
func (l *Lead) IsAssigned() bool {
	return l.KanbanColumnID != nil
}

// InColumn reports whether the lead currently sits in the given column.
func (l *Lead) InColumn(columnID string) bool {
	return l.KanbanColumnID != nil && *l.KanbanColumnID == columnID
}

// OwnedBy reports whether the principal may act on this lead.
func (l *Lead) OwnedBy(p domain.Principal) bool {
	return p.Owns(l.AgentID)
}
