package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unixpickle/llcases/internal/logger"
)

var (
	configPath   string
	casesFlag    string
	logLevelFlag string

	config Config
)

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "casetool",
		Short:         "Inspect and repair a database of last-layer cases",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cases") {
				cfg.Cases = casesFlag
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevelFlag
			}
			config = cfg
			logger.Initialize(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&casesFlag, "cases", "", "case database (JSON array)")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRepairCmd(),
		newPatternCmd(),
		newLookupCmd(),
		newStatsCmd(),
		newRenderCmd(),
	)
	return root
}
