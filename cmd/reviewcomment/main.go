package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment/internal/config"
	"github.com/dkovacs/reviewcomment/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "reviewcomment",
	Short: "Inspect review status comments in source code",
	Long: `Reviewcomment: review status comment inspector
Extracts codechecker_suppress / codechecker_false_positive /
codechecker_intentional / codechecker_confirmed annotations placed above a
diagnostic line and reports whether they suppress a given checker.`,
}

var (
	configPath string
	debugMode  bool
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable verbose logging")
}

// setup loads the configuration and builds the logger shared by all
// subcommands.
func setup() (config.Config, *zap.SugaredLogger, error) {
	cfg := config.Default()

	if configPath != "" {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return config.Config{}, nil, err
		}
	}

	logger, err := logging.New(debugMode || cfg.Debug)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
