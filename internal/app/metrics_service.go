package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
)

// GetMetrics computes pipeline analytics for the filter. Scoped principals
// are restricted to their own leads.
func (s *PipelineService) GetMetrics(ctx context.Context, p domain.Principal, filter lead.Filter) (_ *analytics.Metrics, err error) {
	const op = "GetMetrics"
	ctx, span := s.begin(ctx, op)
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.AnalyticsDuration.Record(ctx, time.Since(start).Seconds(),
				metric.WithAttributes(telemetry.AttrResult.String(resultOf(err))))
		}
		end(span, err)
	}()

	if err := authenticate(p); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, s.fail(ctx, op, domain.NewValidationError("dateTo", "must not precede dateFrom"))
	}
	s.logger.InfoContext(ctx, "computing metrics", filterAttrs(filter)...)

	m, err := s.compute(ctx, p, filter)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return m, nil
}

func resultOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func filterAttrs(f lead.Filter) []any {
	var attrs []any
	if f.BoardID != nil {
		attrs = append(attrs, slog.String("board_id", *f.BoardID))
	}
	if f.AgentID != nil {
		attrs = append(attrs, slog.String("agent_id", *f.AgentID))
	}
	if f.DateFrom != nil {
		attrs = append(attrs, slog.Time("date_from", *f.DateFrom))
	}
	if f.DateTo != nil {
		attrs = append(attrs, slog.Time("date_to", *f.DateTo))
	}
	return attrs
}
