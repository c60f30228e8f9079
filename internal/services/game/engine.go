// Package game drives full games of Hog between two strategies, applying
// the Hog wild and Swine swap rules.
package game

import (
	"io"
	"log/slog"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/strategy"
	"github.com/hogsim/hog/internal/services/turn"
)

// Engine plays games to completion. It holds one dice source per kind;
// the Hog wild rule decides which source a turn rolls.
type Engine struct {
	sources map[dice.Kind]dice.Source
	logger  *slog.Logger
}

// New creates an Engine rolling the given sources. A nil logger disables
// turn logging.
func New(fourSided, sixSided dice.Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Engine{
		sources: map[dice.Kind]dice.Source{
			dice.FourSided: fourSided,
			dice.SixSided:  sixSided,
		},
		logger: logger,
	}
}

// Play runs a game between s0 (player 0, who acts first) and s1, playing
// to the standard goal score.
func (e *Engine) Play(s0, s1 strategy.Strategy) model.GameResult {
	return e.PlayTo(model.GoalScore, s0, s1)
}

// PlayTo runs a game to a custom goal score. The final scores are returned
// in player order regardless of whose turn ended the game.
//
// Scores are tracked from the active player's perspective and the
// perspective flips every turn, mirroring how the turn resolver and
// strategies see the game. Termination is checked before each strategy
// invocation, so a turn that reaches the goal is always the last.
func (e *Engine) PlayTo(goal int, s0, s1 strategy.Strategy) model.GameResult {
	who := model.Player0
	score, opponentScore := 0, 0
	active, waiting := s0, s1

	for score < goal && opponentScore < goal {
		numRolls := active.Rolls(score, opponentScore)
		kind := dice.Select(score, opponentScore)
		gained := turn.TakeTurn(numRolls, opponentScore, e.sources[kind])
		score += gained

		// Swine swap: one score exactly double the other. Checked once,
		// by exact arithmetic.
		if opponentScore-score == score || score-opponentScore == opponentScore {
			score, opponentScore = opponentScore, score
		}

		e.logger.Debug("turn resolved",
			slog.Int("player", int(who)),
			slog.Int("num_rolls", numRolls),
			slog.String("dice", kind.String()),
			slog.Int("gained", gained),
			slog.Int("score", score),
			slog.Int("opponent_score", opponentScore),
		)

		// Hand the turn to the other player.
		score, opponentScore = opponentScore, score
		active, waiting = waiting, active
		who = who.Other()
	}

	// Pin the result back to player order.
	if who == model.Player1 {
		score, opponentScore = opponentScore, score
	}
	return model.GameResult{Score0: score, Score1: opponentScore}
}
