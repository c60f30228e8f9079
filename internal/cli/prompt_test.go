package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hogsim/hog/internal/cli"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/turn"
)

type PromptSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestPromptSuite(t *testing.T) {
	suite.Run(t, new(PromptSuite))
}

func (s *PromptSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *PromptSuite) prompter(input string) *cli.Prompter {
	return cli.NewPrompter(strings.NewReader(input), s.out)
}

func (s *PromptSuite) TestInt_AcceptsValidInput() {
	n, err := s.prompter("5\n").Int("Number of rolls: ", 0)
	s.NoError(err)
	s.Equal(5, n)
	s.Contains(s.out.String(), "Number of rolls: ")
}

func (s *PromptSuite) TestInt_RepromptsOnInvalidInput() {
	n, err := s.prompter("abc\n-3\n2\n").Int("Rolls: ", 0)
	s.NoError(err)
	s.Equal(2, n)
	s.Equal(2, strings.Count(s.out.String(),
		"Please enter an integer greater than or equal to 0"))
}

func (s *PromptSuite) TestInt_EnforcesMinimumBound() {
	n, err := s.prompter("0\n1\n").Int("Result of dice roll: ", 1)
	s.NoError(err)
	s.Equal(1, n)
	s.Contains(s.out.String(), "greater than or equal to 1")
}

func (s *PromptSuite) TestInt_ClosedInput() {
	_, err := s.prompter("").Int("Rolls: ", 0)
	s.ErrorIs(err, model.ErrSessionClosed)
}

func (s *PromptSuite) TestDice_FeedsUserOutcomes() {
	src := s.prompter("3\n1\n5\n").Dice()

	s.Equal(1, turn.RollDice(3, src))
	s.Equal(3, strings.Count(s.out.String(), "Result of dice roll: "))
}

func (s *PromptSuite) TestDice_PanicsWithSessionClosed() {
	src := s.prompter("").Dice()
	s.PanicsWithError(model.ErrSessionClosed.Error(), func() { src.Roll() })
}

func (s *PromptSuite) TestStrategy_ShowsScoresInPlayerOrder() {
	st := s.prompter("4\n").Strategy(model.Player1)

	// Player 1's own score is 30, the opponent (player 0) has 10; the
	// display leads with player 0
	s.Equal(4, st.Rolls(30, 10))
	s.Contains(s.out.String(), "10 vs. 30")
	s.Contains(s.out.String(), "Number of rolls for Player 1: ")
}
