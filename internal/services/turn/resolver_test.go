package turn_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/services/turn"
)

type ResolverSuite struct {
	suite.Suite
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

// countingSource wraps a source and records how many times it is rolled.
func countingSource(src dice.Source, calls *int) dice.Source {
	return dice.SourceFunc(func() int {
		*calls++
		return src.Roll()
	})
}

func (s *ResolverSuite) TestRollDice_SumsOutcomes() {
	s.Equal(11, turn.RollDice(2, dice.NewStrictSequence(5, 6)))
	s.Equal(12, turn.RollDice(3, dice.NewStrictSequence(2, 4, 6)))
}

func (s *ResolverSuite) TestRollDice_PigOut() {
	// Any 1 caps the turn at exactly 1
	s.Equal(1, turn.RollDice(3, dice.NewStrictSequence(3, 1, 5)))
	s.Equal(1, turn.RollDice(2, dice.NewStrictSequence(1, 6)))
	s.Equal(1, turn.RollDice(1, dice.NewStrictSequence(1)))
}

func (s *ResolverSuite) TestRollDice_ConsumesExactlyNumRolls() {
	for _, numRolls := range []int{1, 2, 5, 10} {
		calls := 0
		src := countingSource(dice.NewSequence(3, 1), &calls)

		turn.RollDice(numRolls, src)
		s.Equal(numRolls, calls, "rolling %d dice", numRolls)
	}
}

func (s *ResolverSuite) TestRollDice_ConsumesAllRollsAfterPigOut() {
	// The 1 arrives first; the remaining draws still happen
	calls := 0
	src := countingSource(dice.NewStrictSequence(1, 4, 5, 2), &calls)

	s.Equal(1, turn.RollDice(4, src))
	s.Equal(4, calls)
}

func (s *ResolverSuite) TestRollDice_RequiresAtLeastOneRoll() {
	s.Panics(func() { turn.RollDice(0, dice.NewSequence(3)) })
	s.Panics(func() { turn.RollDice(-2, dice.NewSequence(3)) })
}

func (s *ResolverSuite) TestFreeBacon() {
	s.Equal(1, turn.FreeBacon(0))
	s.Equal(5, turn.FreeBacon(24)) // 1 + max(2, 4)
	s.Equal(10, turn.FreeBacon(9))
	s.Equal(9, turn.FreeBacon(81))
	s.Equal(10, turn.FreeBacon(99))
}

func (s *ResolverSuite) TestTakeTurn_ZeroRollsTakesFreeBacon() {
	// No dice are consumed on a Free bacon turn
	calls := 0
	src := countingSource(dice.NewSequence(6), &calls)

	s.Equal(5, turn.TakeTurn(0, 24, src))
	s.Zero(calls)
}

func (s *ResolverSuite) TestTakeTurn_RollsDice() {
	s.Equal(9, turn.TakeTurn(2, 50, dice.NewStrictSequence(4, 5)))
	s.Equal(1, turn.TakeTurn(2, 50, dice.NewStrictSequence(3, 1)))
}

func (s *ResolverSuite) TestTakeTurn_ContractViolationsPanic() {
	src := dice.NewSequence(3)

	s.Panics(func() { turn.TakeTurn(-1, 10, src) })
	s.Panics(func() { turn.TakeTurn(11, 10, src) })
	s.Panics(func() { turn.TakeTurn(5, 100, src) })
	s.Panics(func() { turn.TakeTurn(5, 140, src) })
}
