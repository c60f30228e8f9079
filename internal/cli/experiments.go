package cli

import (
	"github.com/spf13/cobra"

	"github.com/hogsim/hog/internal/factory"
	"github.com/hogsim/hog/internal/services/experiment"
)

func newExperimentsCmd() *cobra.Command {
	var opts experiment.SuiteOptions

	cmd := &cobra.Command{
		Use:   "experiments",
		Short: "Run the strategy experiment suite",
		Long: `Run strategy experiments: per-roll-count average turn scores for both
dice kinds, and win rates against the always-roll-5 baseline.

With no experiment flags, the full suite runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Any() {
				opts = experiment.AllExperiments()
			}

			app, err := factory.New(factory.Config{
				Seed:    cfg.Seed,
				Samples: cfg.Samples,
				Workers: cfg.Workers,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			report := app.Harness.RunSuite(opts)

			out := NewOutput(cfg.Output)
			out.PrintSuite(report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.MaxScoringRolls, "max-scoring-rolls", false, "Report average turn score per roll count")
	cmd.Flags().BoolVar(&opts.AlwaysRollEight, "always-roll-8", false, "Measure always_roll(8) against the baseline")
	cmd.Flags().BoolVar(&opts.Bacon, "bacon", false, "Measure the bacon strategy against the baseline")
	cmd.Flags().BoolVar(&opts.Swap, "swap", false, "Measure the swap strategy against the baseline")
	cmd.Flags().BoolVar(&opts.Composite, "final", false, "Measure the composite strategy against the baseline")

	return cmd
}
