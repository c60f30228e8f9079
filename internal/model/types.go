package model

import "fmt"

// GoalScore is the score a player must reach to win a game of Hog.
const GoalScore = 100

// MaxRolls is the most dice a player may roll in a single turn.
const MaxRolls = 10

// Player identifies one of the two seats in a game. Player 0 always acts
// first.
type Player int

const (
	Player0 Player = 0
	Player1 Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", int(p))
}

// GameResult holds the final scores of a completed game. Scores are always
// in player order (player 0 first), regardless of whose turn ended the
// game, and at least one of them is at or past the goal.
type GameResult struct {
	Score0 int
	Score1 int
}

// Winner returns the player with the higher final score. A tied result
// counts as a player 1 win, matching the win-indicator convention used by
// the experiment harness.
func (r GameResult) Winner() Player {
	if r.Score0 > r.Score1 {
		return Player0
	}
	return Player1
}
