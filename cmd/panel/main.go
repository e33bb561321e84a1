package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"panel/internal/platform/config"
	"panel/internal/platform/logger"
)

// app carries what every subcommand needs once the root command has loaded
// configuration.
type app struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "panel",
		Short:         "Game server control panel: subuser permissions and daemon key sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log)
			slog.SetDefault(a.logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to panel.yaml")
	flags.String("database-url", "", "PostgreSQL connection URL")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json, text)")
	flags.String("daemon-key-store", "", "where daemon keys live (postgres, redis)")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSubuserCmd(a),
		newTokenCmd(a),
	)
	return root
}
