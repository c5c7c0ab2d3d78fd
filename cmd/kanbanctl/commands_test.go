package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
)

const testBaseYAML = `server:
  port: 8080
  read_timeout: 5s
  write_timeout: 10s
log:
  level: error
  format: text
database:
  busy_timeout: 1s
identity:
  mode: header
  role_header: X-Principal-Role
  scope_header: X-Principal-Scope
`

// testOptions writes a throwaway config dir and points --db at a file in it.
func testOptions(t *testing.T) *rootOptions {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"base.yaml": testBaseYAML,
		"test.yaml": "telemetry:\n  enabled: false\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
	return &rootOptions{
		profile:   "test",
		configDir: dir,
		dbPath:    filepath.Join(dir, "kanban.db"),
	}
}

// seed creates one board with an initial and a final column and places a
// lead in the initial column. It returns the board id.
func seed(t *testing.T, opts *rootOptions) string {
	t.Helper()
	ctx := context.Background()

	e, err := openEnv(ctx, opts)
	if err != nil {
		t.Fatalf("openEnv() error = %v", err)
	}
	defer e.Close()

	b, err := e.svc.CreateBoard(ctx, domain.Admin(), &board.Board{
		Name: "Vendas",
		Columns: []board.Column{
			{Name: "Novo", IsInitial: true},
			{Name: "Fechado", IsFinal: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateBoard() error = %v", err)
	}
	if _, err := e.svc.CreateLead(ctx, domain.Admin(), &lead.Lead{AgentID: "a1", Name: "Ana"}, b.ID); err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}
	return b.ID
}

// execute runs a subcommand tree built from opts with the given args.
func execute(t *testing.T, opts *rootOptions, cmdFn func(*rootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd := cmdFn(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	out, err := execute(t, opts, newMigrateCmd)
	if err != nil {
		t.Fatalf("migrate error = %v", err)
	}
	if !strings.Contains(out, "schema up to date") {
		t.Errorf("output = %q, want schema confirmation", out)
	}
	if _, err := os.Stat(opts.dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestBoardShow(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	boardID := seed(t, opts)

	out, err := execute(t, opts, newBoardCmd, "show", boardID)
	if err != nil {
		t.Fatalf("board show error = %v", err)
	}
	for _, want := range []string{"Vendas", "Novo", "initial", "final:won", "1 leads"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBoardShow_JSON(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	boardID := seed(t, opts)
	opts.json = true

	out, err := execute(t, opts, newBoardCmd, "show", boardID)
	if err != nil {
		t.Fatalf("board show error = %v", err)
	}

	var resp dto.BoardResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if resp.ID != boardID {
		t.Errorf("ID = %q, want %q", resp.ID, boardID)
	}
	if len(resp.Columns) != 2 {
		t.Fatalf("len(Columns) = %d, want 2", len(resp.Columns))
	}
	if resp.Columns[0].LeadCount != 1 {
		t.Errorf("Columns[0].LeadCount = %d, want 1", resp.Columns[0].LeadCount)
	}
}

func TestBoardShow_NotFound(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	_, err := execute(t, opts, newBoardCmd, "show", "nope")
	if err == nil {
		t.Fatal("expected error for unknown board")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestBoardList(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	boardID := seed(t, opts)

	out, err := execute(t, opts, newBoardCmd, "list")
	if err != nil {
		t.Fatalf("board list error = %v", err)
	}
	if !strings.Contains(out, boardID) || !strings.Contains(out, "Vendas") {
		t.Errorf("output missing board:\n%s", out)
	}
}

func TestMetrics_PerBoard(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	boardID := seed(t, opts)
	opts.json = true

	out, err := execute(t, opts, newMetricsCmd, "--board", boardID)
	if err != nil {
		t.Fatalf("metrics error = %v", err)
	}

	var resp dto.MetricsResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if resp.TotalLeads != 1 {
		t.Errorf("TotalLeads = %d, want 1", resp.TotalLeads)
	}
	if len(resp.Columns) != 2 {
		t.Errorf("len(Columns) = %d, want 2", len(resp.Columns))
	}
}

func TestMetrics_Global(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	seed(t, opts)

	out, err := execute(t, opts, newMetricsCmd)
	if err != nil {
		t.Fatalf("metrics error = %v", err)
	}
	if !strings.Contains(out, "all boards: 1 leads") {
		t.Errorf("output = %q, want global summary", out)
	}
}

func TestMetrics_InvalidDate(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	_, err := execute(t, opts, newMetricsCmd, "--from", "yesterday")
	if err == nil {
		t.Fatal("expected error for malformed --from")
	}
	if !strings.Contains(err.Error(), "--from") {
		t.Errorf("error = %v, want mention of --from", err)
	}
}

func TestMetrics_RangeInverted(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	_, err := execute(t, opts, newMetricsCmd,
		"--from", "2026-05-01T00:00:00Z", "--to", "2026-04-01T00:00:00Z")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}
