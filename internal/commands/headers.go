package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/csvtext"
	"github.com/mileagelog/mileagelog/internal/importer"
	"github.com/mileagelog/mileagelog/internal/pipeline"
	"github.com/mileagelog/mileagelog/internal/source"
)

func newHeadersCommand() *cobra.Command {
	var file, configPath, dataset string

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Show which line of an export is taken as its header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			runner := pipeline.NewRunner(source.Dir{}, slog.Default(), nil)
			settings, err := runner.LoadSettings(ctx, configPath)
			if err != nil {
				return err
			}
			parsers, err := importer.FromSettings(settings)
			if err != nil {
				return err
			}
			p, ok := parsers.Get(dataset).(*importer.TemplateParser)
			if !ok {
				return fmt.Errorf("unknown dataset %q (want %s or %s)", dataset, importer.FormatTrips, importer.FormatTolls)
			}

			text, err := source.Dir{}.ReadText(ctx, file)
			if err != nil {
				return err
			}

			idx := p.HeaderIndex(text)
			lines := csvtext.Lines(text)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "header line: %d\n", idx+1)
			fmt.Fprintf(out, "text: %s\n", lines[idx])
			fmt.Fprintf(out, "data rows start at line %d\n", idx+2)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "export to inspect (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&configPath, "config", config.FileName, "settings file")
	cmd.Flags().StringVar(&dataset, "dataset", importer.FormatTrips, "which header line to match: trips or tolls")

	return cmd
}
