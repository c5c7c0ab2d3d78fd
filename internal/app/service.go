// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// Compile-time check that PipelineService implements ports.PipelineService.
var _ ports.PipelineService = (*PipelineService)(nil)

// defaultOverviewWorkers bounds ListBoards metric computation when no
// option overrides it.
const defaultOverviewWorkers = 4

// adminActor is recorded as the actor of entries written by admins, who
// carry no scope identifier.
const adminActor = "admin"

// PipelineService implements ports.PipelineService on top of the relational
// store. It authorizes the caller, validates input, stamps ids and times,
// and leaves atomicity to the store's transactions.
type PipelineService struct {
	store           ports.PipelineStore
	logger          *slog.Logger
	metrics         *telemetry.Metrics
	now             func() time.Time
	newID           func() string
	overviewWorkers int
}

// Option configures a PipelineService.
type Option func(*PipelineService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *PipelineService) { s.now = now }
}

// WithIDGenerator overrides how entity ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *PipelineService) { s.newID = gen }
}

// WithMetrics enables domain metric recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *PipelineService) { s.metrics = m }
}

// WithOverviewWorkers bounds how many board summaries ListBoards computes
// at once. Values below 1 are ignored.
func WithOverviewWorkers(n int) Option {
	return func(s *PipelineService) {
		if n > 0 {
			s.overviewWorkers = n
		}
	}
}

// NewPipelineService creates a PipelineService. A nil logger discards output.
func NewPipelineService(store ports.PipelineStore, logger *slog.Logger, opts ...Option) *PipelineService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &PipelineService{
		store:           store,
		logger:          logger,
		now:             time.Now,
		newID:           uuid.NewString,
		overviewWorkers: defaultOverviewWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PipelineService) timestamp() time.Time {
	return s.now().UTC()
}

// begin opens the span for one service operation.
func (s *PipelineService) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, telemetry.AttrOperation.String(op))
	return telemetry.Tracer().Start(ctx, "PipelineService."+op, trace.WithAttributes(attrs...))
}

// end closes span, recording err when the operation failed.
func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// fail logs err for op and returns it unchanged. Caller mistakes are logged
// at warn, everything else at error.
func (s *PipelineService) fail(ctx context.Context, op string, err error, attrs ...any) error {
	args := append([]any{slog.String("operation", op), slog.Any("error", err)}, attrs...)
	if isClientError(err) {
		s.logger.WarnContext(ctx, "request rejected", args...)
	} else {
		s.logger.ErrorContext(ctx, "operation failed", args...)
	}
	return err
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrConflict)
}

// recordChange counts a topology write.
func (s *PipelineService) recordChange(ctx context.Context, op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ColumnChanges.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(op)))
}

// recordMove counts a move request by result.
func (s *PipelineService) recordMove(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LeadMoves.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// authenticate rejects principals that cannot be reasoned about.
func authenticate(p domain.Principal) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("principal: %w: %w", domain.ErrForbidden, err)
	}
	return nil
}

func forbidden(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, domain.ErrForbidden)...)
}

func actorOf(p domain.Principal) string {
	if p.IsAdmin() {
		return adminActor
	}
	return p.ScopeID
}
