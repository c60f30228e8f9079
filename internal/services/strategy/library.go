package strategy

import (
	"github.com/hogsim/hog/internal/services/turn"
)

// Default tuning for the basic strategies.
const (
	// BaselineNumRolls is the roll count the basic strategies fall back to.
	BaselineNumRolls = 5

	// BaconMargin is the Free bacon value worth giving up a roll for.
	BaconMargin = 8
)

// AlwaysRoll returns a strategy that rolls n dice every turn.
func AlwaysRoll(n int) Strategy {
	return Func(func(score, opponentScore int) int {
		return n
	})
}

// Bacon returns a strategy that rolls zero dice whenever Free bacon is
// worth at least margin points, and baseline dice otherwise.
func Bacon(baseline, margin int) Strategy {
	return Func(func(score, opponentScore int) int {
		if turn.FreeBacon(opponentScore) >= margin {
			return 0
		}
		return baseline
	})
}

// Swap returns a strategy that rolls zero dice when Free bacon would
// trigger a beneficial swap, and refuses the bacon (rolling baseline
// instead) when it would trigger a harmful one. In all other positions it
// behaves like Bacon.
func Swap(baseline, margin int) Strategy {
	bacon := Bacon(baseline, margin)
	return Func(func(score, opponentScore int) int {
		after := score + turn.FreeBacon(opponentScore)
		switch {
		case opponentScore-after == after:
			// Bacon lands exactly on half the opponent's score.
			return 0
		case after-opponentScore == opponentScore:
			// Bacon would double the opponent's score exactly.
			return baseline
		default:
			return bacon.Rolls(score, opponentScore)
		}
	})
}
