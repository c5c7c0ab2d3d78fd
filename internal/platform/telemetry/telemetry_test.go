package telemetry_test

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
)

// Init* install global providers, so those tests are not parallel.

var exporterCases = []struct {
	name     string
	exporter string
	endpoint string
	wantErr  bool
}{
	{name: "stdout", exporter: telemetry.ExporterStdout},
	{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
	{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
	{name: "unknown exporter", exporter: "zipkin", wantErr: true},
}

func TestInitTracer(t *testing.T) {
	for _, tt := range exporterCases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "kanban-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitTracer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			// Shutdown may fail to reach a collector in unit tests.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			fields := otel.GetTextMapPropagator().Fields()
			for _, want := range []string{"traceparent", "baggage"} {
				if !slices.Contains(fields, want) {
					t.Errorf("propagator fields = %v, missing %q", fields, want)
				}
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	for _, tt := range exporterCases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "kanban-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitMeter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })

			if _, err := telemetry.NewMetrics(mp, "kanban-test"); err != nil {
				t.Errorf("NewMetrics() on initialized provider error = %v", err)
			}
		})
	}
}

func TestNewMetrics_PipelineInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := telemetry.NewMetrics(mp, "kanban-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	m.LeadMoves.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String("moved")))
	m.LeadMoves.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String("noop")))
	m.ColumnChanges.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String("ReorderColumns")))
	m.AnalyticsDuration.Record(ctx, 0.004)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.1, metric.WithAttributes(telemetry.AttrPeerService.String("identity-api")))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			got[md.Name] = md.Data
		}
	}

	for _, name := range []string{
		"pipeline.lead.moves",
		"pipeline.column.changes",
		"pipeline.analytics.duration",
		"http.server.request.total",
		"http.client.request.duration",
	} {
		if _, ok := got[name]; !ok {
			t.Errorf("instrument %q not collected", name)
		}
	}

	moves, ok := got["pipeline.lead.moves"].(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("pipeline.lead.moves is %T, want Sum[int64]", got["pipeline.lead.moves"])
	}
	if len(moves.DataPoints) != 2 {
		t.Errorf("pipeline.lead.moves has %d series, want one per result", len(moves.DataPoints))
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "kanban-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	m.LeadMoves.Add(context.Background(), 1)
}

func TestTracer(t *testing.T) {
	t.Parallel()

	if telemetry.Tracer() == nil {
		t.Fatal("Tracer() returned nil")
	}
}
