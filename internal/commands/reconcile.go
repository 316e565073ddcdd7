package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/model"
	"github.com/mileagelog/mileagelog/internal/pipeline"
	"github.com/mileagelog/mileagelog/internal/report"
	"github.com/mileagelog/mileagelog/internal/runlog"
	"github.com/mileagelog/mileagelog/internal/source"
)

type reconcileOptions struct {
	trips       string
	tolls       string
	configPath  string
	out         string
	history     string
	timezone    string
	writeConfig bool
	strict      bool
}

func newReconcileCommand() *cobra.Command {
	var opts reconcileOptions

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a trip export with a toll statement",
		Long: `Reconcile a trip export with a toll statement and write the report.

Exits non-zero when the settings file cannot be read or is invalid, or when an
export is malformed CSV. A --trips or --tolls file that cannot be read is
logged as a warning and reconciled as empty; pass --strict to fail instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.trips, "trips", "", "trip log export (CSV)")
	cmd.Flags().StringVar(&opts.tolls, "tolls", "", "toll statement export (CSV)")
	cmd.Flags().StringVar(&opts.configPath, "config", config.FileName, "settings file")
	cmd.Flags().StringVar(&opts.out, "out", "-", "report file; .csv, .xlsx and .json pick the format, anything else is text, - is stdout")
	cmd.Flags().StringVar(&opts.history, "history", "", "append a summary row for this run to a CSV history file")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "Local", "IANA zone the export timestamps are in")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when --trips or --tolls cannot be read")
	cmd.Flags().BoolVar(&opts.writeConfig, "write-default-config", false, "write the default settings file if it does not exist")

	return cmd
}

func runReconcile(ctx context.Context, stdout io.Writer, opts reconcileOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := loadLocation(opts.timezone)
	if err != nil {
		return err
	}

	if opts.writeConfig {
		wrote, err := ensureConfig(opts.configPath)
		if err != nil {
			return err
		}
		if wrote {
			slog.Info("wrote default settings", "path", opts.configPath)
		}
	}

	runner := pipeline.NewRunner(source.Dir{}, slog.Default(), loc)
	runner.Strict = opts.strict
	settings, err := runner.LoadSettings(ctx, opts.configPath)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, settings, pipeline.Inputs{Trips: opts.trips, Tolls: opts.tolls})
	if err != nil {
		return err
	}

	rep := report.New(res.RunID.String(), res.Settings, res.Ledger)
	if err := writeReport(stdout, opts.out, rep); err != nil {
		return err
	}

	if opts.history != "" {
		entry := runlog.Entry{
			Timestamp:  res.StartedAt,
			RunID:      res.RunID.String(),
			Trips:      opts.trips,
			Tolls:      opts.tolls,
			TripCount:  len(res.Ledger.Trips),
			TotalMiles: model.FormatFixed(res.Ledger.TotalMiles, 1),
			TotalTolls: res.Ledger.TotalTolls.StringFixed(2),
			GrandTotal: model.FormatFixed(res.Ledger.GrandTotal(), 2),
		}
		if err := runlog.Append(opts.history, []runlog.Entry{entry}); err != nil {
			return fmt.Errorf("recording history: %w", err)
		}
	}
	return nil
}

func writeReport(stdout io.Writer, out string, rep report.Report) error {
	if out == "" || out == "-" {
		return report.WriteText(stdout, rep)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(f, report.ForPath(out), rep); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}
	slog.Info("wrote report", "path", out, "format", report.ForPath(out))
	return nil
}
