package command

import (
	"context"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
)

type step interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

type single struct {
	action domain.Action
}

func (s *single) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *single) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *single) description() string                { return s.action.Description() }
