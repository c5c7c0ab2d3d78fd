package board

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultColor is applied to columns created without a display color.
const DefaultColor = "#6B7280"

// Column is one stage of a pipeline.
type Column struct {
	ID        string
	BoardID   string
	Name      string
	Color     string
	Order     int
	IsInitial bool
	IsFinal   bool
	Outcome   Outcome
	LeadCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Column entity.
func (c *Column) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.BoardID) == "" {
		fields["board_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if c.Color != "" && !hexColor.MatchString(c.Color) {
		fields["color"] = fmt.Sprintf("must be a hex color, got %q", c.Color)
	}
	if c.Order < 0 {
		fields["order"] = fmt.Sprintf("must be non-negative, got %d", c.Order)
	}
	if !c.Outcome.IsValid() {
		fields["outcome"] = fmt.Sprintf("invalid: %q", c.Outcome)
	}
	if c.Outcome != OutcomeNone && !c.IsFinal {
		fields["outcome"] = "requires a final column"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Terminal classifies the column as a won or lost pipeline exit. Non-final
// columns are never terminal. An explicit Outcome wins over the name match.
func (c *Column) Terminal() Outcome {
	if !c.IsFinal {
		return OutcomeNone
	}
	if c.Outcome != OutcomeNone {
		return c.Outcome
	}
	return ClassifyName(c.Name)
}

// ColumnUpdate carries the optional fields of a column edit. Nil means
// "leave unchanged". Order is changed only through reordering.
type ColumnUpdate struct {
	Name      *string
	Color     *string
	IsInitial *bool
	IsFinal   *bool
	Outcome   *Outcome
}

// IsEmpty reports whether the update changes nothing.
func (u ColumnUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil && u.IsInitial == nil && u.IsFinal == nil && u.Outcome == nil
}

// Apply returns a copy of c with the update's non-nil fields set.
func (u ColumnUpdate) Apply(c Column) Column {
	if u.Name != nil {
		c.Name = strings.TrimSpace(*u.Name)
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if u.IsInitial != nil {
		c.IsInitial = *u.IsInitial
	}
	if u.IsFinal != nil {
		c.IsFinal = *u.IsFinal
		if !c.IsFinal && u.Outcome == nil {
			c.Outcome = OutcomeNone
		}
	}
	if u.Outcome != nil {
		c.Outcome = *u.Outcome
	}
	return c
}
