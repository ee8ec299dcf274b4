package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	verbose bool
	plain   bool
	logger  = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "controlflow",
		Short: "Interactive control-flow exercises",
		Long: `Controlflow walks through a set of small control-flow exercises:
a sentinel-terminated loop, a bounded password check, fixed and
user-entered lists, and a few pure functions.

Run without arguments to go through every exercise in order.`,
		Version:           fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Args:              cobra.NoArgs,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runAll,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Read answers line by line even on a terminal (typed passwords stay visible)")
}

// initLogger builds the stderr logger. Only warnings show unless --verbose.
func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	// Subcommands are added in their respective files via init() functions

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
