package experiment

import (
	"log/slog"
	"time"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/services/strategy"
)

// SuiteOptions selects which experiments a suite run includes. The zero
// value runs nothing; use AllExperiments for the full suite.
type SuiteOptions struct {
	// MaxScoringRolls reports the average turn score per roll count for
	// both dice kinds.
	MaxScoringRolls bool

	// AlwaysRollEight measures always_roll(8) against the baseline.
	AlwaysRollEight bool

	// Bacon measures the margin-based bacon strategy against the baseline.
	Bacon bool

	// Swap measures the swap-seeking strategy against the baseline.
	Swap bool

	// Composite measures the layered composite strategy against the
	// baseline.
	Composite bool
}

// AllExperiments selects every experiment.
func AllExperiments() SuiteOptions {
	return SuiteOptions{
		MaxScoringRolls: true,
		AlwaysRollEight: true,
		Bacon:           true,
		Swap:            true,
		Composite:       true,
	}
}

// Any reports whether at least one experiment is selected.
func (o SuiteOptions) Any() bool {
	return o.MaxScoringRolls || o.AlwaysRollEight || o.Bacon || o.Swap || o.Composite
}

// DiceReport holds the per-roll-count averages for one dice kind.
type DiceReport struct {
	Kind     dice.Kind `json:"kind"`
	Averages []float64 `json:"averages"` // index i holds the average for i+1 rolls
	Best     int       `json:"best"`
}

// WinRateReport holds one strategy's measured win rate against the
// baseline.
type WinRateReport struct {
	Name string  `json:"name"`
	Rate WinRate `json:"rate"`
}

// SuiteReport is the aggregate outcome of a suite run.
type SuiteReport struct {
	Dice     []DiceReport    `json:"dice,omitempty"`
	WinRates []WinRateReport `json:"win_rates,omitempty"`
	Elapsed  time.Duration   `json:"elapsed"`
}

// RunSuite runs the selected experiments against the always-roll baseline
// and returns their report. The composite strategy plays with best roll
// counts measured during the run, whether or not the per-roll report is
// selected.
func (h *Harness) RunSuite(opts SuiteOptions) *SuiteReport {
	start := h.clock.Now()
	report := &SuiteReport{}

	cfg := strategy.DefaultCompositeConfig()
	kinds := []dice.Kind{dice.SixSided, dice.FourSided}
	if !opts.MaxScoringRolls && !opts.Composite {
		kinds = nil
	}
	for i, kind := range kinds {
		src := dice.NewSided(kind, h.randoms(h.opts.Seed+int64(i)*workerSeedStride))
		best, averages := h.BestNumRolls(src)

		switch kind {
		case dice.FourSided:
			cfg.BestFourSided = best
		case dice.SixSided:
			cfg.BestSixSided = best
		}

		h.logger.Info("max scoring num rolls",
			slog.String("dice", kind.String()),
			slog.Int("best", best),
		)
		if opts.MaxScoringRolls {
			report.Dice = append(report.Dice, DiceReport{
				Kind:     kind,
				Averages: averages,
				Best:     best,
			})
		}
	}

	baseline := strategy.AlwaysRoll(strategy.BaselineNumRolls)
	contenders := []struct {
		name    string
		s       strategy.Strategy
		enabled bool
	}{
		{"always_roll(8)", strategy.AlwaysRoll(8), opts.AlwaysRollEight},
		{"bacon_strategy", strategy.Bacon(strategy.BaselineNumRolls, strategy.BaconMargin), opts.Bacon},
		{"swap_strategy", strategy.Swap(strategy.BaselineNumRolls, strategy.BaconMargin), opts.Swap},
		{"final_strategy", strategy.Composite(cfg), opts.Composite},
	}

	for _, c := range contenders {
		if !c.enabled {
			continue
		}
		report.WinRates = append(report.WinRates, WinRateReport{
			Name: c.name,
			Rate: h.AverageWinRate(c.s, baseline),
		})
	}

	report.Elapsed = h.clock.Since(start)
	return report
}
