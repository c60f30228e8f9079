// Package experiment measures dice and strategy performance over many
// simulated games of Hog.
package experiment

import (
	"io"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/hogsim/hog/internal/dependencies/clock"
	"github.com/hogsim/hog/internal/dependencies/random"
	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/game"
	"github.com/hogsim/hog/internal/services/strategy"
	"github.com/hogsim/hog/internal/services/turn"
)

// DefaultSamples is the trial count used when Options leaves Samples
// unset.
const DefaultSamples = 1000

// workerSeedStride spaces the derived per-worker seeds far apart.
const workerSeedStride = 1_000_000

// Options controls how measurements are run.
type Options struct {
	// Samples is the number of trials per measurement (default
	// DefaultSamples).
	Samples int

	// Workers is the number of parallel workers (default GOMAXPROCS).
	// Each worker simulates games on its own independently seeded dice
	// stream, so results stay reproducible for a given seed and worker
	// count.
	Workers int

	// Seed is the base RNG seed; worker i derives Seed + i*workerSeedStride.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Samples <= 0 {
		o.Samples = DefaultSamples
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// RandomFactory builds an independently seeded random source for one
// worker.
type RandomFactory func(seed int64) random.Random

// Harness runs strategy and dice experiments.
type Harness struct {
	randoms RandomFactory
	clock   clock.Clock
	opts    Options
	logger  *slog.Logger
}

// New creates a Harness. A nil factory defaults to seeded pseudo-random
// sources; a nil clock defaults to the system clock; a nil logger
// disables progress logging.
func New(randoms RandomFactory, clk clock.Clock, opts Options, logger *slog.Logger) *Harness {
	if randoms == nil {
		randoms = func(seed int64) random.Random {
			return random.New(seed)
		}
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Harness{
		randoms: randoms,
		clock:   clk,
		opts:    opts.withDefaults(),
		logger:  logger,
	}
}

// Averaged returns a function that calls fn numSamples times and returns
// the arithmetic mean of the results. A non-positive numSamples uses
// DefaultSamples.
func Averaged(fn func() float64, numSamples int) func() float64 {
	if numSamples <= 0 {
		numSamples = DefaultSamples
	}
	return func() float64 {
		total := 0.0
		for i := 0; i < numSamples; i++ {
			total += fn()
		}
		return total / float64(numSamples)
	}
}

// Measurement is an averaged trial outcome with spread statistics.
type Measurement struct {
	Mean    float64
	StdDev  float64
	CI95    float64
	Samples int
}

// WinRate holds the directional and combined results of a win-rate
// measurement.
type WinRate struct {
	// AsPlayer0 is the strategy's win rate moving first.
	AsPlayer0 Measurement

	// AsPlayer1 is the strategy's win rate moving second.
	AsPlayer1 Measurement

	// Overall averages the two directional rates, cancelling the
	// first-mover advantage.
	Overall float64
}

// WinIndicator plays one game with a as player 0 and b as player 1,
// returning 0 on a player 0 win and 1 otherwise. A tied game counts as a
// player 1 win.
func WinIndicator(eng *game.Engine, a, b strategy.Strategy) int {
	result := eng.Play(a, b)
	if result.Winner() == model.Player0 {
		return 0
	}
	return 1
}

// AverageWinRate measures s against baseline, once in each seat, and
// averages the two directional rates.
func (h *Harness) AverageWinRate(s, baseline strategy.Strategy) WinRate {
	start := h.clock.Now()

	asPlayer0 := h.measure(func(eng *game.Engine) float64 {
		return 1 - float64(WinIndicator(eng, s, baseline))
	})
	asPlayer1 := h.measure(func(eng *game.Engine) float64 {
		return float64(WinIndicator(eng, baseline, s))
	})

	rate := WinRate{
		AsPlayer0: asPlayer0,
		AsPlayer1: asPlayer1,
		Overall:   (asPlayer0.Mean + asPlayer1.Mean) / 2,
	}

	h.logger.Info("win rate measured",
		slog.Float64("as_player0", asPlayer0.Mean),
		slog.Float64("as_player1", asPlayer1.Mean),
		slog.Float64("overall", rate.Overall),
		slog.Int("samples", asPlayer0.Samples+asPlayer1.Samples),
		slog.Duration("elapsed", h.clock.Since(start)),
	)
	return rate
}

// BestNumRolls finds the roll count from 1 to MaxRolls with the highest
// average turn score on the given source, sampling each count with the
// harness sample count. Ties keep the lowest count. The per-count
// averages are returned alongside for reporting.
func (h *Harness) BestNumRolls(src dice.Source) (int, []float64) {
	averages := make([]float64, model.MaxRolls)
	best, bestAvg := 1, math.Inf(-1)

	for n := 1; n <= model.MaxRolls; n++ {
		avg := Averaged(func() float64 {
			return float64(turn.RollDice(n, src))
		}, h.opts.Samples)()

		averages[n-1] = avg
		h.logger.Info("roll count averaged",
			slog.Int("num_rolls", n),
			slog.Float64("average", avg),
		)

		if avg > bestAvg {
			best, bestAvg = n, avg
		}
	}
	return best, averages
}

// engineTrial is one simulated game producing a numeric outcome.
type engineTrial func(eng *game.Engine) float64

// measure runs trial h.opts.Samples times across workers, each worker on
// its own engine seeded from the base seed, and aggregates the outcomes.
func (h *Harness) measure(trial engineTrial) Measurement {
	perWorker := h.opts.Samples / h.opts.Workers
	extra := h.opts.Samples % h.opts.Workers

	results := make(chan []float64, h.opts.Workers)
	var wg sync.WaitGroup

	for i := 0; i < h.opts.Workers; i++ {
		n := perWorker
		if i < extra {
			n++
		}
		if n == 0 {
			continue
		}
		seed := h.opts.Seed + int64(i)*workerSeedStride

		wg.Add(1)
		go func(n int, seed int64) {
			defer wg.Done()
			eng := h.newEngine(seed)
			values := make([]float64, 0, n)
			for t := 0; t < n; t++ {
				values = append(values, trial(eng))
			}
			results <- values
		}(n, seed)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	all := make([]float64, 0, h.opts.Samples)
	for values := range results {
		all = append(all, values...)
	}

	mean := stat.Mean(all, nil)
	sd := stat.StdDev(all, nil)
	return Measurement{
		Mean:    mean,
		StdDev:  sd,
		CI95:    1.96 * sd / math.Sqrt(float64(len(all))),
		Samples: len(all),
	}
}

// newEngine builds an engine whose dice draw from a single random stream
// derived from seed.
func (h *Harness) newEngine(seed int64) *game.Engine {
	rnd := h.randoms(seed)
	return game.New(
		dice.NewSided(dice.FourSided, rnd),
		dice.NewSided(dice.SixSided, rnd),
		nil,
	)
}
