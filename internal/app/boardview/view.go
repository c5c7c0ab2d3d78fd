// Package boardview is the consuming side of the move protocol: a local
// board picture that reflects a drag optimistically and reverts to the exact
// picture captured before the drop when the engine refuses the move.
//
// The drag lifecycle is an explicit state machine:
//
//	Idle -> Dragging -> Committing -> Idle
//	                    Committing -> Reverting -> Idle
//	        Dragging -> Idle (Cancel)
package boardview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-pipeline/internal/app/command"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// current drag state.
var ErrInvalidTransition = errors.New("boardview: invalid state transition")

// State is a drag lifecycle state.
type State int

// Drag states.
const (
	Idle State = iota
	Dragging
	Committing
	Reverting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committing:
		return "committing"
	case Reverting:
		return "reverting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mover is the engine operation the view delegates to.
type Mover interface {
	MoveLead(ctx context.Context, p domain.Principal, leadID, targetColumnID string) (*ports.MoveResult, error)
}

// Option configures a View.
type Option func(*View)

// WithObserver registers fn to be called on every state transition.
func WithObserver(fn func(from, to State)) Option {
	return func(v *View) { v.observe = fn }
}

// View holds one board's local picture and the drag in progress.
type View struct {
	mover     Mover
	principal domain.Principal
	snap      *command.SafeRef[Snapshot]
	observe   func(from, to State)

	mu     sync.Mutex
	state  State
	leadID string
	origin string
}

// New returns an idle view over initial acting as principal.
func New(mover Mover, principal domain.Principal, initial Snapshot, opts ...Option) *View {
	v := &View{
		mover:     mover,
		principal: principal,
		snap:      command.NewRef(initial.Clone()),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State returns the current drag state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Snapshot returns a copy of the current local picture.
func (v *View) Snapshot() Snapshot {
	return v.snap.Get().Clone()
}

// Replace installs a fresh picture, e.g. after a reload. Only allowed while idle.
func (v *View) Replace(s Snapshot) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Idle {
		return fmt.Errorf("replace while %s: %w", v.state, ErrInvalidTransition)
	}
	v.snap.Set(s.Clone())
	return nil
}

// BeginDrag picks up a lead shown on the board.
func (v *View) BeginDrag(leadID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != Idle {
		return fmt.Errorf("begin drag while %s: %w", v.state, ErrInvalidTransition)
	}
	origin, ok := v.snap.Get().ColumnOf(leadID)
	if !ok {
		return fmt.Errorf("lead %s not on board: %w", leadID, domain.ErrNotFound)
	}
	v.leadID, v.origin = leadID, origin
	v.transition(Dragging)
	return nil
}

// Cancel drops the lead back where it was without contacting the engine.
func (v *View) Cancel() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != Dragging {
		return fmt.Errorf("cancel while %s: %w", v.state, ErrInvalidTransition)
	}
	v.leadID, v.origin = "", ""
	v.transition(Idle)
	return nil
}

// Drop releases the dragged lead over target. The local picture changes
// immediately; if the engine then refuses the move, the picture captured
// just before the drop is restored and the engine's error returned.
// Dropping onto the origin column ends the drag without an engine call.
func (v *View) Drop(ctx context.Context, target string) (*ports.MoveResult, error) {
	v.mu.Lock()
	if v.state != Dragging {
		state := v.state
		v.mu.Unlock()
		return nil, fmt.Errorf("drop while %s: %w", state, ErrInvalidTransition)
	}
	if !v.snap.Get().HasColumn(target) {
		v.mu.Unlock()
		return nil, domain.NewValidationError("target_column_id", domain.MsgUnknownColumn)
	}
	leadID, origin := v.leadID, v.origin
	if target == origin {
		v.leadID, v.origin = "", ""
		v.transition(Idle)
		v.mu.Unlock()
		return &ports.MoveResult{LeadID: leadID, FromColumnID: &origin, NewColumnID: target}, nil
	}
	v.transition(Committing)
	v.mu.Unlock()

	logger := logging.FromContext(ctx).With(
		slog.String("lead_id", leadID),
		slog.String("from_column_id", origin),
		slog.String("to_column_id", target),
	)

	var (
		before Snapshot
		result *ports.MoveResult
	)
	plan := command.New()
	_ = plan.Add(command.Func{
		Desc: "apply move locally",
		Do: func(context.Context) error {
			before = v.snap.Get()
			v.snap.Set(before.withMove(leadID, target))
			return nil
		},
		Undo: func(context.Context) error {
			v.snap.Set(before)
			return nil
		},
	})
	_ = plan.Add(command.Func{
		Desc: "persist move",
		Do: func(ctx context.Context) error {
			res, err := v.mover.MoveLead(ctx, v.principal, leadID, target)
			if err != nil {
				v.mu.Lock()
				v.transition(Reverting)
				v.mu.Unlock()
				return err
			}
			result = res
			return nil
		},
	})

	err := plan.Commit(logging.WithLogger(ctx, logger))

	v.mu.Lock()
	v.leadID, v.origin = "", ""
	v.transition(Idle)
	v.mu.Unlock()

	if err != nil {
		logger.WarnContext(ctx, "move rejected, local board restored", slog.Any("error", err))
		return nil, err
	}
	return result, nil
}

// transition must be called with mu held.
func (v *View) transition(to State) {
	from := v.state
	v.state = to
	if v.observe != nil {
		v.observe(from, to)
	}
}
