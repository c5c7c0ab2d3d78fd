package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				if err := e.store.HealthCheck(ctx); err != nil {
					return err
				}
				e.logger.InfoContext(ctx, "schema applied", slog.String("path", e.cfg.Database.Path))
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "schema up to date: %s\n", e.cfg.Database.Path)
				return err
			})
		},
	}
}

func newBoardCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect boards",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every board with its lead total and conversion rate",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
					overviews, err := e.svc.ListBoards(ctx, domain.Admin())
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					if opts.json {
						return writeJSON(out, dto.ToBoardListResponse(overviews))
					}
					tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tNAME\tCOLUMNS\tLEADS\tCONVERSION")
					for _, o := range overviews {
						fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f%%\n",
							o.Board.ID, o.Board.Name, len(o.Board.Columns), o.Metrics.TotalLeads, o.Metrics.ConversionRate)
					}
					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "show <board-id>",
			Short: "Show a board's columns in order with their lead counts",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
					b, err := e.svc.GetBoard(ctx, domain.Admin(), args[0])
					if err != nil {
						return err
					}
					if opts.json {
						return writeJSON(cmd.OutOrStdout(), dto.ToBoardResponse(b))
					}
					return printBoard(cmd.OutOrStdout(), b)
				})
			},
		},
	)
	return cmd
}

func printBoard(w io.Writer, b *board.Board) error {
	fmt.Fprintf(w, "%s (%s) version %d, %d leads\n", b.Name, b.ID, b.Version, b.TotalLeads())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tID\tNAME\tLEADS\tROLE")
	for _, c := range b.Columns {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", c.Order, c.ID, c.Name, c.LeadCount, columnRole(&c))
	}
	return tw.Flush()
}

func columnRole(c *board.Column) string {
	var roles []string
	if c.IsInitial {
		roles = append(roles, "initial")
	}
	if c.IsFinal {
		if o := c.Terminal(); o != board.OutcomeNone {
			roles = append(roles, "final:"+o.String())
		} else {
			roles = append(roles, "final")
		}
	}
	if len(roles) == 0 {
		return "-"
	}
	return strings.Join(roles, ",")
}

type metricsOptions struct {
	boards []string
	agent  string
	from   string
	to     string
}

func newMetricsCmd(opts *rootOptions) *cobra.Command {
	mo := &metricsOptions{}

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute pipeline metrics",
		Long: `Compute occupancy, dwell time and conversion figures.

With one or more --board flags each board is computed separately and
concurrently; a failing board is reported without hiding the others.

Examples:
  kanbanctl metrics
  kanbanctl metrics --board b1 --board b2 --from 2026-01-01T00:00:00Z
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := mo.filter()
			if err != nil {
				return err
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				out := cmd.OutOrStdout()
				if len(mo.boards) == 0 {
					m, err := e.svc.GetMetrics(ctx, domain.Admin(), base)
					if err != nil {
						return err
					}
					return printMetrics(out, opts.json, "all boards", m)
				}

				results := fanout.Run(ctx, e.cfg.Analytics.OverviewWorkers, mo.boards,
					func(ctx context.Context, boardID string) (*analytics.Metrics, error) {
						f := base
						f.BoardID = &boardID
						return e.svc.GetMetrics(ctx, domain.Admin(), f)
					})

				var errs []error
				for i, r := range results {
					if r.Err != nil {
						errs = append(errs, fmt.Errorf("board %s: %w", mo.boards[i], r.Err))
						continue
					}
					if err := printMetrics(out, opts.json, "board "+mo.boards[i], r.Value); err != nil {
						return err
					}
				}
				return errors.Join(errs...)
			})
		},
	}

	cmd.Flags().StringSliceVar(&mo.boards, "board", nil, "board id (repeatable)")
	cmd.Flags().StringVar(&mo.agent, "agent", "", "restrict to one agent's leads")
	cmd.Flags().StringVar(&mo.from, "from", "", "leads created at or after (RFC 3339)")
	cmd.Flags().StringVar(&mo.to, "to", "", "leads created at or before (RFC 3339)")
	return cmd
}

func (mo *metricsOptions) filter() (lead.Filter, error) {
	var f lead.Filter
	if mo.agent != "" {
		f.AgentID = &mo.agent
	}
	for _, p := range []struct {
		flag string
		raw  string
		dst  **time.Time
	}{
		{flag: "from", raw: mo.from, dst: &f.DateFrom},
		{flag: "to", raw: mo.to, dst: &f.DateTo},
	} {
		if p.raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, p.raw)
		if err != nil {
			return lead.Filter{}, fmt.Errorf("--%s: %w", p.flag, err)
		}
		*p.dst = &ts
	}
	return f, nil
}

func printMetrics(w io.Writer, asJSON bool, title string, m *analytics.Metrics) error {
	if asJSON {
		return writeJSON(w, dto.ToMetricsResponse(m))
	}

	fmt.Fprintf(w, "%s: %d leads, %d unassigned, %d closed, %d lost, conversion %.1f%%, closed vs lost %.1f%%\n",
		title, m.TotalLeads, m.Unassigned, m.ClosedCount, m.LostCount, m.ConversionRate, m.ClosedVsLostRatio)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tLEADS\tAVG HOURS\tAVG DAYS")
	for _, c := range m.Columns {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\n", c.Name, c.LeadCount, c.AvgDwellHours, c.AvgDwellDays)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
