package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/services/experiment"
)

type OutputSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	report *experiment.SuiteReport
}

func TestOutputSuite(t *testing.T) {
	suite.Run(t, new(OutputSuite))
}

func (s *OutputSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.report = &experiment.SuiteReport{
		Dice: []experiment.DiceReport{
			{
				Kind:     dice.SixSided,
				Averages: []float64{3.5, 7, 10.5, 14, 17.5, 21, 24.5, 28, 31.5, 35},
				Best:     10,
			},
		},
		WinRates: []experiment.WinRateReport{
			{
				Name: "final_strategy",
				Rate: experiment.WinRate{
					AsPlayer0: experiment.Measurement{Mean: 0.7, CI95: 0.03, Samples: 1000},
					AsPlayer1: experiment.Measurement{Mean: 0.66, CI95: 0.03, Samples: 1000},
					Overall:   0.68,
				},
			},
		},
		Elapsed: 1500 * time.Millisecond,
	}
}

func (s *OutputSuite) TestText() {
	out := &Output{format: "text", w: s.buf}
	out.PrintSuite(s.report)

	got := s.buf.String()
	s.Contains(got, "1 dice scores 3.50 on average")
	s.Contains(got, "10 dice scores 35.00 on average")
	s.Contains(got, "Max scoring num rolls for six-sided dice: 10")
	s.Contains(got, "final_strategy win rate: 0.680")
	s.Contains(got, "Completed in 1.5s")
}

func (s *OutputSuite) TestJSON() {
	out := &Output{format: "json", w: s.buf}
	out.PrintSuite(s.report)

	var decoded experiment.SuiteReport
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &decoded))
	s.Require().Len(decoded.WinRates, 1)
	s.Equal("final_strategy", decoded.WinRates[0].Name)
	s.InDelta(0.68, decoded.WinRates[0].Rate.Overall, 1e-12)
}
