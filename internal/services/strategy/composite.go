package strategy

import (
	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/turn"
)

// CompositeConfig tunes the layered composite strategy. All knobs are
// explicit so the strategy itself stays a pure function of the two scores.
type CompositeConfig struct {
	// Goal is the winning score.
	Goal int

	// BestFourSided and BestSixSided are the empirically best roll counts
	// per dice kind, normally precomputed once at startup.
	BestFourSided int
	BestSixSided  int

	// FourSidedMargin is the reduced Free bacon threshold used while Hog
	// wild is in effect; four-sided turns score too little to beat even a
	// small bacon.
	FourSidedMargin int
}

// DefaultCompositeConfig returns the tuning used when no measurements are
// available. The best-roll defaults match what the experiment harness
// finds for fair dice over large sample counts.
func DefaultCompositeConfig() CompositeConfig {
	return CompositeConfig{
		Goal:            model.GoalScore,
		BestFourSided:   4,
		BestSixSided:    6,
		FourSidedMargin: 4,
	}
}

// Composite returns the layered strategy: it grabs beneficial swaps,
// avoids harmful ones, plays Hog wild positions around the bacon, chases a
// swap when far behind, plays safe with a dominant lead or near the goal,
// and otherwise rolls the best count for the dice kind in effect.
func Composite(cfg CompositeConfig) Strategy {
	return Func(func(score, opponentScore int) int {
		kind := dice.Select(score, opponentScore)
		bacon := turn.FreeBacon(opponentScore)
		after := score + bacon

		best := cfg.BestSixSided
		if kind == dice.FourSided {
			best = cfg.BestFourSided
		}

		// Taking the bacon lands exactly on half the opponent's score.
		if after < opponentScore && opponentScore == 2*after {
			return 0
		}

		if kind == dice.FourSided {
			if harmfulSwap(after, opponentScore) {
				return best
			}
			if opponentScore > score && opponentScore/2-score > 0 {
				return chaseRolls(cfg, kind, score, opponentScore, best)
			}
			if bacon >= cfg.FourSidedMargin {
				return 0
			}
			return best
		}

		// Both players near the goal: the bacon floor is enough.
		if opponentScore > 80 && score > 91 {
			return 0
		}

		// Bacon alone reaches the goal.
		if score+bacon-1 >= cfg.Goal {
			if harmfulSwap(after, opponentScore) {
				return best
			}
			return 0
		}

		// Taking the bacon forces Hog wild onto the opponent.
		if dice.Select(after, opponentScore) == dice.FourSided {
			if harmfulSwap(after, opponentScore) {
				return best
			}
			return 0
		}

		// Behind by more than double: chase the swap.
		if opponentScore > score && opponentScore/2-score > 0 {
			return chaseRolls(cfg, kind, score, opponentScore, best)
		}

		// Comfortable lead over a committed opponent: keep turns cheap.
		if opponentScore > 50 && score-opponentScore > 15 {
			return 0
		}

		if score+best >= cfg.Goal {
			return 2
		}
		return best
	})
}

// harmfulSwap reports whether a score of after hands the opponent a swap,
// meaning after is exactly double the opponent's score.
func harmfulSwap(after, opponentScore int) bool {
	return opponentScore != 0 && after == 2*opponentScore
}

// chaseRolls picks a roll count aimed at landing on exactly half the
// opponent's score. The tables are keyed on how far the player sits below
// that target; past the table the usual best count applies, shaved down
// near the goal.
func chaseRolls(cfg CompositeConfig, kind dice.Kind, score, opponentScore, best int) int {
	gap := opponentScore/2 - score

	if kind == dice.FourSided {
		switch {
		case gap <= 1:
			return 10
		case gap <= 2:
			return 1
		case gap <= 3:
			return 2
		case gap <= 5:
			return 3
		}
	} else {
		switch {
		case gap <= 1:
			return 10
		case gap < 4:
			return 1
		case gap <= 8:
			return 2
		case gap <= 12:
			return 3
		case gap <= 17:
			return 4
		}
	}

	if score+best >= cfg.Goal {
		return 2
	}
	return best
}
