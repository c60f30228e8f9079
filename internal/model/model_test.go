package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hogsim/hog/internal/model"
)

type ModelSuite struct {
	suite.Suite
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) TestOther() {
	s.Equal(model.Player1, model.Player0.Other())
	s.Equal(model.Player0, model.Player1.Other())
}

func (s *ModelSuite) TestWinner() {
	s.Equal(model.Player0, model.GameResult{Score0: 104, Score1: 91}.Winner())
	s.Equal(model.Player1, model.GameResult{Score0: 88, Score1: 102}.Winner())
}

func (s *ModelSuite) TestWinner_TieGoesToPlayer1() {
	s.Equal(model.Player1, model.GameResult{Score0: 100, Score1: 100}.Winner())
}
