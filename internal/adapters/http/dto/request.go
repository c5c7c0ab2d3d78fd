package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/timeline"
)

// CreateBoardRequest represents the JSON body for creating a board. Columns
// are created in the order given.
type CreateBoardRequest struct {
	Name    string                `json:"name"`
	OwnerID *string               `json:"owner_id,omitempty"`
	Columns []CreateColumnRequest `json:"columns,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateBoardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if r.OwnerID != nil && strings.TrimSpace(*r.OwnerID) == "" {
		fields["owner_id"] = domain.MsgMustNotEmpty
	}
	for i := range r.Columns {
		prefix := "columns[" + strconv.Itoa(i) + "]."
		for field, msg := range r.Columns[i].fieldErrors() {
			fields[prefix+field] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain maps the request onto a board entity.
func (r *CreateBoardRequest) ToDomain() *board.Board {
	b := &board.Board{Name: r.Name, OwnerID: r.OwnerID}
	if len(r.Columns) > 0 {
		b.Columns = make([]board.Column, len(r.Columns))
		for i := range r.Columns {
			b.Columns[i] = *r.Columns[i].ToDomain("")
		}
	}
	return b
}

// CreateColumnRequest represents the JSON body for adding a column. A nil
// Order appends the column at the end of the board.
type CreateColumnRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Order     *int   `json:"order,omitempty"`
	IsInitial bool   `json:"is_initial"`
	IsFinal   bool   `json:"is_final"`
	Outcome   string `json:"outcome,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateColumnRequest) Validate() error {
	if fields := r.fieldErrors(); len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (r *CreateColumnRequest) fieldErrors() map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if r.Order != nil && *r.Order < 0 {
		fields["order"] = fmt.Sprintf("must be non-negative, got %d", *r.Order)
	}
	if !board.Outcome(r.Outcome).IsValid() {
		fields["outcome"] = fmt.Sprintf("invalid: %q", r.Outcome)
	}
	return fields
}

// appendOrder is large enough to be clamped to the end of any board.
const appendOrder = math.MaxInt32

// ToDomain maps the request onto a column of boardID.
func (r *CreateColumnRequest) ToDomain(boardID string) *board.Column {
	order := appendOrder
	if r.Order != nil {
		order = *r.Order
	}
	return &board.Column{
		BoardID:   boardID,
		Name:      r.Name,
		Color:     r.Color,
		Order:     order,
		IsInitial: r.IsInitial,
		IsFinal:   r.IsFinal,
		Outcome:   board.Outcome(r.Outcome),
	}
}

// UpdateColumnRequest represents the JSON body for editing a column.
// All fields are optional; nil means "do not change this field.".
type UpdateColumnRequest struct {
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	IsInitial *bool   `json:"is_initial,omitempty"`
	IsFinal   *bool   `json:"is_final,omitempty"`
	Outcome   *string `json:"outcome,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateColumnRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}
	if r.Outcome != nil && !board.Outcome(*r.Outcome).IsValid() {
		fields["outcome"] = fmt.Sprintf("invalid: %q", *r.Outcome)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain maps the request onto a column update.
func (r *UpdateColumnRequest) ToDomain() board.ColumnUpdate {
	u := board.ColumnUpdate{
		Name:      r.Name,
		Color:     r.Color,
		IsInitial: r.IsInitial,
		IsFinal:   r.IsFinal,
	}
	if r.Outcome != nil {
		o := board.Outcome(*r.Outcome)
		u.Outcome = &o
	}
	return u
}

// ColumnPositionRequest assigns a rank to one column.
type ColumnPositionRequest struct {
	ColumnID string `json:"column_id"`
	Order    int    `json:"order"`
}

// ReorderColumnsRequest represents the JSON body for reordering a board.
// Exactly one of ColumnIDs (the full sequence) or Positions must be given.
// IfVersion, when set, must match the board's current version.
type ReorderColumnsRequest struct {
	ColumnIDs []string                `json:"column_ids,omitempty"`
	Positions []ColumnPositionRequest `json:"positions,omitempty"`
	IfVersion *int64                  `json:"if_version,omitempty"`
}

// Validate checks that exactly one form of the permutation is present.
// The permutation itself is checked against the board by the service.
func (r *ReorderColumnsRequest) Validate() error {
	switch {
	case len(r.ColumnIDs) == 0 && len(r.Positions) == 0:
		return domain.NewValidationError("column_ids", domain.MsgRequired)
	case len(r.ColumnIDs) > 0 && len(r.Positions) > 0:
		return domain.NewValidationError("positions", "must not be combined with column_ids")
	}
	return nil
}

// ToDomain returns the requested ranks.
func (r *ReorderColumnsRequest) ToDomain() []board.ColumnPosition {
	if len(r.ColumnIDs) > 0 {
		return board.PositionsFromOrder(r.ColumnIDs)
	}
	out := make([]board.ColumnPosition, len(r.Positions))
	for i, p := range r.Positions {
		out[i] = board.ColumnPosition{ColumnID: p.ColumnID, Order: p.Order}
	}
	return out
}

// CreateLeadRequest represents the JSON body for registering a lead. With a
// BoardID the lead starts in that board's initial column.
type CreateLeadRequest struct {
	AgentID  string `json:"agent_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Priority string `json:"priority,omitempty"`
	BoardID  string `json:"board_id,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateLeadRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !lead.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain maps the request onto a lead entity.
func (r *CreateLeadRequest) ToDomain() *lead.Lead {
	return &lead.Lead{
		AgentID:  r.AgentID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Priority: lead.Priority(r.Priority),
	}
}

// MoveLeadRequest represents the JSON body for moving a lead.
type MoveLeadRequest struct {
	ColumnID string `json:"column_id"`
}

// Validate checks that the target column is present.
func (r *MoveLeadRequest) Validate() error {
	if strings.TrimSpace(r.ColumnID) == "" {
		return domain.NewValidationError("column_id", domain.MsgRequired)
	}
	return nil
}

// AddTimelineEntryRequest represents the JSON body for appending a fact to a
// lead's timeline.
type AddTimelineEntryRequest struct {
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Validate checks that required fields are present and the action is one a
// caller may write. Returns a *domain.ValidationError if any checks fail.
func (r *AddTimelineEntryRequest) Validate() error {
	fields := make(map[string]string)

	action := timeline.Action(r.Action)
	switch {
	case r.Action == "":
		fields["action"] = domain.MsgRequired
	case !action.IsValid():
		fields["action"] = fmt.Sprintf("invalid: %q", r.Action)
	case action.IsSystem():
		fields["action"] = fmt.Sprintf("%q is written by the pipeline only", r.Action)
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain maps the request onto a timeline entry for leadID.
func (r *AddTimelineEntryRequest) ToDomain(leadID string) *timeline.Entry {
	return &timeline.Entry{
		LeadID:      leadID,
		Action:      timeline.Action(r.Action),
		Description: r.Description,
		Metadata:    r.Metadata,
	}
}
