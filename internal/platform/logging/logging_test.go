package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		format   string
		log      func(l *slog.Logger)
		contains []string
		excludes []string
	}{
		{
			name:     "json info",
			level:    "info",
			format:   "json",
			log:      func(l *slog.Logger) { l.Info("board loaded") },
			contains: []string{`"level":"INFO"`, `"msg":"board loaded"`},
			excludes: []string{`"source"`},
		},
		{
			name:     "text format",
			level:    "info",
			format:   "text",
			log:      func(l *slog.Logger) { l.Info("board loaded") },
			contains: []string{"level=INFO", "msg=\"board loaded\""},
		},
		{
			name:     "debug adds source",
			level:    "debug",
			format:   "json",
			log:      func(l *slog.Logger) { l.Debug("reorder") },
			contains: []string{`"level":"DEBUG"`, `"source"`},
		},
		{
			name:     "info filters debug",
			level:    "info",
			format:   "json",
			log:      func(l *slog.Logger) { l.Debug("hidden") },
			excludes: []string{"hidden"},
		},
		{
			name:     "error filters warn",
			level:    "error",
			format:   "json",
			log:      func(l *slog.Logger) { l.Warn("hidden") },
			excludes: []string{"hidden"},
		},
		{
			name:     "unknown level defaults to info",
			level:    "verbose",
			format:   "json",
			log:      func(l *slog.Logger) { l.Debug("hidden"); l.Info("shown") },
			contains: []string{"shown"},
			excludes: []string{"hidden"},
		},
		{
			name:     "unknown format defaults to json",
			level:    "info",
			format:   "xml",
			log:      func(l *slog.Logger) { l.Info("shown") },
			contains: []string{`"msg":"shown"`},
		},
		{
			name:     "level is case insensitive",
			level:    "DEBUG",
			format:   "json",
			log:      func(l *slog.Logger) { l.Debug("shown") },
			contains: []string{"shown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, tt.format, &buf))

			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("output = %q, want it to exclude %q", out, unwanted)
				}
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(empty) did not return slog.Default()")
	}

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext returned an overwritten logger")
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.String("principal_role", "SCOPED"))

	logging.FromContext(ctx).InfoContext(ctx, "lead moved")

	if out := buf.String(); !strings.Contains(out, `"principal_role":"SCOPED"`) {
		t.Errorf("output = %q, want principal_role attribute", out)
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "bearer regex", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "lead email", attr: slog.String("email", "maria@example.com"), secret: "maria@example.com"},
		{name: "lead phone", attr: slog.String("phone", "+55 11 99999-0000"), secret: "99999-0000"},
		{name: "email inside error text", attr: slog.String("error", "duplicate contact joao.silva@example.com.br"), secret: "joao.silva@example.com.br"},
		{name: "api key prefix", attr: slog.String("api_key_identity", "k-778"), secret: "k-778"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.String("lead_id", "lead-123"),
		slog.String("path", "/api/v1/leads/lead-123/move"),
	)

	out := buf.String()
	for _, want := range []string{"lead-123", "/api/v1/leads/lead-123/move"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q kept", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " WARN ", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
