package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mileagelog/mileagelog/internal/buildinfo"
	"github.com/mileagelog/mileagelog/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:     "mileagelog",
		Short:   "Reconcile trip logs with toll statements into a reimbursement report",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newHeadersCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// loadLocation resolves a --timezone value; "" and "Local" mean the machine's
// zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}
	return loc, nil
}
