package board

import (
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// Board is one pipeline: an ordered sequence of columns. A nil OwnerID marks
// a global board that every principal may write to.
type Board struct {
	ID        string
	Name      string
	OwnerID   *string
	Version   int64
	Columns   []Column
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Board entity.
func (b *Board) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if b.OwnerID != nil && strings.TrimSpace(*b.OwnerID) == "" {
		fields["owner_id"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsGlobal reports whether the board is shared by every principal.
func (b *Board) IsGlobal() bool {
	return b.OwnerID == nil
}

// WritableBy reports whether the principal may mutate leads placed on this
// board or the board's topology.
func (b *Board) WritableBy(p domain.Principal) bool {
	if p.IsAdmin() || b.IsGlobal() {
		return true
	}
	return p.Owns(*b.OwnerID)
}

// ManageableBy reports whether the principal may create, update, delete or
// reorder the board's columns. Global boards are admin-only.
func (b *Board) ManageableBy(p domain.Principal) bool {
	if p.IsAdmin() {
		return true
	}
	return !b.IsGlobal() && p.Owns(*b.OwnerID)
}

// SortColumns orders the board's columns by their rank.
func (b *Board) SortColumns() {
	sort.SliceStable(b.Columns, func(i, j int) bool {
		return b.Columns[i].Order < b.Columns[j].Order
	})
}

// InitialColumn returns the board's entry column, if one is flagged.
func (b *Board) InitialColumn() (Column, bool) {
	for _, c := range b.Columns {
		if c.IsInitial {
			return c, true
		}
	}
	return Column{}, false
}

// TotalLeads sums the lead counts of all columns.
func (b *Board) TotalLeads() int {
	total := 0
	for _, c := range b.Columns {
		total += c.LeadCount
	}
	return total
}
