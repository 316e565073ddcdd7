package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mileagelog/mileagelog/internal/buildinfo"
	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr, configPath, timezone string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reconciliation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := loadLocation(timezone)
			if err != nil {
				return err
			}

			settings := config.Default()
			if configPath != "" {
				settings, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("mileagelog", "version", buildinfo.String())
			return server.New(settings, loc).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "settings used when a request uploads none (default: built-in settings)")
	cmd.Flags().StringVar(&timezone, "timezone", "Local", "IANA zone the export timestamps are in")

	return cmd
}
