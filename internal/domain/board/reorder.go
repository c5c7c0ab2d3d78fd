package board

import (
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

// ColumnPosition assigns a target rank to a column during a reorder.
type ColumnPosition struct {
	ColumnID string
	Order    int
}

// PositionsFromOrder maps an ordered list of column ids to zero-based ranks.
func PositionsFromOrder(ids []string) []ColumnPosition {
	out := make([]ColumnPosition, len(ids))
	for i, id := range ids {
		out[i] = ColumnPosition{ColumnID: id, Order: i}
	}
	return out
}

// ValidateReorder checks that positions are a full permutation of the board's
// current columns: every column named exactly once, no foreign ids, and the
// ranks forming exactly {0..n-1}. current holds the board's column ids.
func ValidateReorder(current []string, positions []ColumnPosition) error {
	fields := make(map[string]string)

	known := make(map[string]bool, len(current))
	for _, id := range current {
		known[id] = false
	}

	n := len(current)
	ranks := make(map[int]bool, len(positions))
	for i, p := range positions {
		key := "columns[" + strconv.Itoa(i) + "]"
		seen, ok := known[p.ColumnID]
		switch {
		case !ok:
			fields[key+".id"] = fmt.Sprintf("column %q does not belong to the board", p.ColumnID)
		case seen:
			fields[key+".id"] = fmt.Sprintf("column %q listed more than once", p.ColumnID)
		default:
			known[p.ColumnID] = true
		}
		if p.Order < 0 || p.Order >= n {
			fields[key+".order"] = fmt.Sprintf("must be in [0, %d], got %d", n-1, p.Order)
		} else if ranks[p.Order] {
			fields[key+".order"] = fmt.Sprintf("duplicate order %d", p.Order)
		}
		ranks[p.Order] = true
	}

	missing := 0
	for _, seen := range known {
		if !seen {
			missing++
		}
	}
	if missing > 0 {
		fields["columns"] = fmt.Sprintf("must list all %d board columns, missing %d", n, missing)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
