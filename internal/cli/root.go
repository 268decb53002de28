package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtline/milestones/internal/config"
	"github.com/courtline/milestones/internal/platform/logging"
)

var rootCmd = &cobra.Command{
	Use:           "milestones",
	Short:         "NBA box score milestone classifier",
	Long:          "Classify scraped NBA box score JSON files into single-game milestone achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(playerCmd)
}

// setup loads configuration and installs the process logger.
func setup() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	var logger *logging.Logger
	if cfg.AppEnv == config.EnvDev {
		logger = logging.NewConsole(cfg.LogLevel)
	} else {
		logger = logging.NewJSON(cfg.LogLevel)
	}
	logging.SetDefault(logger)

	return cfg, logger, nil
}
