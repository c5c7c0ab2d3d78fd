package timeline

import (
	"fmt"
	"time"
)

// Place names a column a lead moved out of or into.
type Place struct {
	ColumnID string
	Name     string
	BoardID  string
}

// NewMoveEntry builds the KANBAN_MOVED fact for a lead moving from an
// optional origin to a destination column. from is nil for a first placement.
func NewMoveEntry(id, leadID string, from *Place, to Place, actorID string, at time.Time) Entry {
	meta := map[string]any{
		MetaFromColumnID: nil,
		MetaFromColumn:   nil,
		MetaToColumnID:   to.ColumnID,
		MetaToColumn:     to.Name,
		MetaBoardID:      to.BoardID,
	}
	desc := fmt.Sprintf("Lead placed in %q", to.Name)
	if from != nil {
		meta[MetaFromColumnID] = from.ColumnID
		meta[MetaFromColumn] = from.Name
		desc = fmt.Sprintf("Lead moved from %q to %q", from.Name, to.Name)
	}

	return Entry{
		ID:          id,
		LeadID:      leadID,
		Action:      ActionKanbanMoved,
		Description: desc,
		Metadata:    meta,
		ActorID:     actorID,
		CreatedAt:   at,
	}
}

// NewCreatedEntry builds the CREATED fact written when a lead is registered.
func NewCreatedEntry(id, leadID, name, actorID string, at time.Time) Entry {
	return Entry{
		ID:          id,
		LeadID:      leadID,
		Action:      ActionCreated,
		Description: fmt.Sprintf("Lead %q created", name),
		Metadata:    map[string]any{},
		ActorID:     actorID,
		CreatedAt:   at,
	}
}
