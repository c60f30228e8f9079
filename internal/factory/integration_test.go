package factory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hogsim/hog/internal/factory"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/testutil"
)

type FactorySuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) TestWiresApplication() {
	app, err := factory.New(factory.Config{
		Seed:    42,
		Samples: 50,
		Workers: 2,
		Logger:  testutil.NopLogger(),
	})
	s.Require().NoError(err)

	s.NotNil(app.Random)
	s.NotNil(app.Clock)
	s.NotNil(app.Engine)
	s.NotNil(app.Harness)
	s.NotNil(app.Baseline)
	s.NotNil(app.Composite)
}

func (s *FactorySuite) TestPlaysFullGame() {
	app, err := factory.New(factory.Config{Seed: 42, Logger: testutil.NopLogger()})
	s.Require().NoError(err)

	result := app.Engine.Play(app.Baseline, app.Composite)

	s.True(result.Score0 >= model.GoalScore || result.Score1 >= model.GoalScore,
		"completed game must have a score at the goal, got %+v", result)
}

func (s *FactorySuite) TestMeasuresBestRolls() {
	app, err := factory.New(factory.Config{
		Seed:             7,
		Samples:          100,
		Workers:          1,
		MeasureBestRolls: true,
		Logger:           testutil.NopLogger(),
	})
	s.Require().NoError(err)

	cfg := app.CompositeConfig
	s.GreaterOrEqual(cfg.BestFourSided, 1)
	s.LessOrEqual(cfg.BestFourSided, model.MaxRolls)
	s.GreaterOrEqual(cfg.BestSixSided, 1)
	s.LessOrEqual(cfg.BestSixSided, model.MaxRolls)
}

func (s *FactorySuite) TestRejectsInvalidConfig() {
	_, err := factory.New(factory.Config{Samples: -1})
	s.ErrorIs(err, model.ErrInvalidSamples)

	_, err = factory.New(factory.Config{Workers: -3})
	s.ErrorIs(err, model.ErrInvalidWorkers)
}
