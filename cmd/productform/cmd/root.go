package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Gobd/formvalidation/internal/config"
	"github.com/Gobd/formvalidation/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "productform",
	Short: "Validate product form submissions",
	Long: `productform validates product records (name, description, price,
category, featured flag) with the same schema used by the product forms.

Commands:
  serve   - HTTP API for snapshot submits and reactive validation
  check   - validate one product given as flags
  prompt  - fill in a product interactively`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration and builds the logger every command shares.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.New(logger.Format(cfg.LogFormat), cfg.LogLevel, os.Stderr)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
