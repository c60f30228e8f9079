package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd(config *Config) *cobra.Command {
	cfg = config

	rootCmd := &cobra.Command{
		Use:   "hogsim",
		Short: "Simulate the dice game Hog and evaluate strategies",
		Long: `hogsim simulates the two-player dice game Hog, with the Pig out,
Free bacon, Hog wild and Swine swap rules.

It can run the full strategy experiment suite, or resolve a single roll,
a single turn, or a whole game interactively.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelInfo
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Base RNG seed, 0 for time-based (env: HOGSIM_SEED)")
	rootCmd.PersistentFlags().IntVar(&cfg.Samples, "samples", cfg.Samples, "Trials per measurement (env: HOGSIM_SAMPLES)")
	rootCmd.PersistentFlags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel workers, 0 for all cores (env: HOGSIM_WORKERS)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newExperimentsCmd())
	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(newTurnCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// Execute loads configuration and runs the root command.
func Execute() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if err := NewRootCmd(config).Execute(); err != nil {
		os.Exit(1)
	}
}
