// Package strategy defines the Strategy capability and the library of
// concrete Hog strategies.
package strategy

// A Strategy chooses how many dice (0 to 10) to roll this turn, given the
// current player's score and the opponent's score. Rolling zero takes the
// Free bacon move.
//
// Implementations must be pure: identical inputs always produce identical
// outputs, with no memory of earlier turns.
type Strategy interface {
	Rolls(score, opponentScore int) int
}

// Func adapts a plain function to a Strategy.
type Func func(score, opponentScore int) int

// Rolls calls f.
func (f Func) Rolls(score, opponentScore int) int {
	return f(score, opponentScore)
}
