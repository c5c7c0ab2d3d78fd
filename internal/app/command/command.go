// Package command runs a sequence of compensable actions. Each staged step
// executes in order; when one fails, the steps that already completed are
// rolled back in reverse order.
//
//	plan := command.New()
//	_ = plan.Add(applyLocally)
//	_ = plan.Add(persistRemotely)
//	err := plan.Commit(ctx)
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

var (
	// ErrAlreadyCommitted is returned when a plan is staged into or
	// committed after Commit has run.
	ErrAlreadyCommitted = errors.New("command: plan already committed")

	// ErrNilAction is returned when a nil action is staged.
	ErrNilAction = errors.New("command: nil action")
)

// Plan is an ordered list of steps committed at most once. Staging is safe
// for concurrent use; Commit runs steps without holding the lock.
type Plan struct {
	mu        sync.Mutex
	steps     []step
	committed bool
}

// New returns an empty plan.
func New() *Plan {
	return &Plan{}
}

// Add stages a single action.
func (p *Plan) Add(a domain.Action) error {
	if a == nil {
		return ErrNilAction
	}
	return p.stage(&single{action: a})
}

// Len returns the number of staged steps.
func (p *Plan) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

func (p *Plan) stage(s step) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.committed {
		return ErrAlreadyCommitted
	}
	p.steps = append(p.steps, s)
	return nil
}

// Commit executes the staged steps in order. On the first failure the
// completed steps are rolled back newest first; rollback failures are
// logged and do not replace the returned error.
func (p *Plan) Commit(ctx context.Context) error {
	p.mu.Lock()
	if p.committed {
		p.mu.Unlock()
		return ErrAlreadyCommitted
	}
	p.committed = true
	steps := p.steps
	p.mu.Unlock()

	logger := logging.FromContext(ctx)
	for i, s := range steps {
		logger.DebugContext(ctx, "executing step",
			slog.String("operation", "Plan.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("action", s.description()),
		)
		if err := s.execute(ctx); err != nil {
			logger.WarnContext(ctx, "step failed, rolling back",
				slog.String("operation", "Plan.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", s.description()),
				slog.Any("error", err),
			)
			unwind(ctx, logger, steps[:i])
			return fmt.Errorf("%s: %w", s.description(), err)
		}
	}
	return nil
}

func unwind(ctx context.Context, logger *slog.Logger, done []step) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Plan.Commit"),
				slog.Int("step", i+1),
				slog.String("action", done[i].description()),
				slog.Any("error", err),
			)
		}
	}
}

// Func adapts plain functions to domain.Action. A nil Undo makes the step
// irreversible; its rollback is a no-op.
type Func struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Execute implements domain.Action.
func (f Func) Execute(ctx context.Context) error { return f.Do(ctx) }

// Rollback implements domain.Action.
func (f Func) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

// Description implements domain.Action.
func (f Func) Description() string { return f.Desc }
