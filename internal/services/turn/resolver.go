// Package turn resolves a single turn of Hog: rolling dice with the Pig
// out rule, or the zero-roll Free bacon move.
package turn

import (
	"fmt"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/model"
)

// RollDice rolls numRolls outcomes from src and returns their sum, or 1 if
// any outcome is a 1 (Pig out). The source is consumed exactly numRolls
// times even after a 1 is seen, so scripted test dice stay aligned with
// the turns that follow.
//
// numRolls must be at least 1; violating the contract panics.
func RollDice(numRolls int, src dice.Source) int {
	if numRolls < 1 {
		panic(fmt.Sprintf("turn: must roll at least once, got %d", numRolls))
	}

	total := 0
	pigOut := false
	for i := 0; i < numRolls; i++ {
		outcome := src.Roll()
		if outcome == 1 {
			pigOut = true
		}
		total += outcome
	}

	if pigOut {
		return 1
	}
	return total
}

// FreeBacon returns the value of a zero-roll turn: one more than the
// larger of the tens and ones digits of the opponent's score.
func FreeBacon(opponentScore int) int {
	tens, ones := opponentScore/10, opponentScore%10
	return 1 + max(tens, ones)
}

// TakeTurn resolves a turn of numRolls dice against the given opponent
// score. Rolling zero dice takes Free bacon instead of rolling.
//
// A roll count outside [0, MaxRolls] or an opponent score at or past the
// goal is a contract violation and panics; callers must not reach this
// point in a finished game.
func TakeTurn(numRolls, opponentScore int, src dice.Source) int {
	switch {
	case numRolls < 0:
		panic(fmt.Sprintf("turn: cannot roll a negative number of dice, got %d", numRolls))
	case numRolls > model.MaxRolls:
		panic(fmt.Sprintf("turn: cannot roll more than %d dice, got %d", model.MaxRolls, numRolls))
	case opponentScore >= model.GoalScore:
		panic(fmt.Sprintf("turn: game should be over, opponent score is %d", opponentScore))
	}

	if numRolls == 0 {
		return FreeBacon(opponentScore)
	}
	return RollDice(numRolls, src)
}
