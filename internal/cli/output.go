package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hogsim/hog/internal/services/experiment"
)

// Output handles formatting reports based on the configured format.
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates an Output formatter writing to stdout.
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// PrintSuite outputs a suite report.
func (o *Output) PrintSuite(report *experiment.SuiteReport) {
	if o.format == "json" {
		o.printJSON(report)
		return
	}

	for _, d := range report.Dice {
		for i, avg := range d.Averages {
			fmt.Fprintf(o.w, "%d dice scores %.2f on average\n", i+1, avg)
		}
		fmt.Fprintf(o.w, "Max scoring num rolls for %s dice: %d\n", d.Kind, d.Best)
	}

	for _, wr := range report.WinRates {
		fmt.Fprintf(o.w, "%s win rate: %.3f (as player 0: %.3f ± %.3f, as player 1: %.3f ± %.3f)\n",
			wr.Name, wr.Rate.Overall,
			wr.Rate.AsPlayer0.Mean, wr.Rate.AsPlayer0.CI95,
			wr.Rate.AsPlayer1.Mean, wr.Rate.AsPlayer1.CI95,
		)
	}

	fmt.Fprintf(o.w, "Completed in %s\n", report.Elapsed)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
