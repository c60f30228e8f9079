package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hogsim/hog/internal/dice"
	"github.com/hogsim/hog/internal/model"
	"github.com/hogsim/hog/internal/services/strategy"
)

// Prompter reads minimum-bounded integers from an input stream,
// re-prompting until the input is valid.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to
// out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Int prompts for an integer greater than or equal to min, re-prompting
// on invalid input. It returns model.ErrSessionClosed when the input
// stream ends.
func (p *Prompter) Int(prompt string, min int) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, model.ErrSessionClosed
		}

		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || n < min {
			fmt.Fprintf(p.out, "Please enter an integer greater than or equal to %d\n", min)
			continue
		}
		return n, nil
	}
}

// Dice returns a source whose outcomes the user supplies one at a time.
// A closed input stream aborts the roll with a model.ErrSessionClosed
// panic, recovered at the interactive command boundary.
func (p *Prompter) Dice() dice.Source {
	return dice.SourceFunc(func() int {
		n, err := p.Int("Result of dice roll: ", 1)
		if err != nil {
			panic(err)
		}
		return n
	})
}

// Strategy returns a strategy that asks the seat's owner how many dice to
// roll each turn. The score line is shown in player order for both seats.
func (p *Prompter) Strategy(player model.Player) strategy.Strategy {
	prompt := fmt.Sprintf("Number of rolls for Player %d: ", int(player))
	return strategy.Func(func(score, opponentScore int) int {
		if player == model.Player1 {
			score, opponentScore = opponentScore, score
		}
		fmt.Fprintln(p.out, score, "vs.", opponentScore)

		n, err := p.Int(prompt, 0)
		if err != nil {
			panic(err)
		}
		return n
	})
}
