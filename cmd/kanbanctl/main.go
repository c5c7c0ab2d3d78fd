// Package main is kanbanctl, the operator CLI for the kanban pipeline. It
// works directly on the service's SQLite store through the same application
// service the HTTP server uses, acting as an admin principal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/kanban-pipeline/internal/app"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
	dbPath    string
	json      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "kanbanctl",
		Short:         "Operate a kanban pipeline store",
		Long:          `kanbanctl inspects and maintains the kanban pipeline database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"),
		"config profile (defaults to APP_PROFILE, then local)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the YAML config files")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "output in JSON format")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newBoardCmd(opts),
		newMetricsCmd(opts),
	)
	return cmd
}

// env is what a subcommand runs against.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *sqlite.Store
	svc    *app.PipelineService
}

func (e *env) Close() error {
	return e.store.Close()
}

// openEnv loads config for the selected profile and opens the store. The
// --db flag wins over database.path.
func openEnv(ctx context.Context, opts *rootOptions) (*env, error) {
	profile := opts.profile
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile,
		config.WithConfigDir(opts.configDir),
		config.WithOverrides(map[string]any{"database.path": opts.dbPath}),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, logging.FormatText, os.Stderr)

	st, err := sqlite.Open(ctx, cfg.Database.Path,
		sqlite.WithBusyTimeout(cfg.Database.BusyTimeout),
		sqlite.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		store:  st,
		svc: app.NewPipelineService(st, logger,
			app.WithOverviewWorkers(cfg.Analytics.OverviewWorkers)),
	}, nil
}

// withEnv opens the environment, runs fn and closes the store.
func withEnv(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, e *env) error) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil {
			e.logger.Error("error closing store", slog.Any("error", cerr))
		}
	}()
	return fn(ctx, e)
}
