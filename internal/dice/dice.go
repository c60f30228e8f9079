// Package dice provides the dice sources used by the game of Hog and the
// rule deciding which kind of dice a turn must use.
package dice

import (
	"fmt"

	"github.com/hogsim/hog/internal/dependencies/random"
)

// Source produces one dice outcome per call. Outcomes are always at
// least 1.
type Source interface {
	Roll() int
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() int

// Roll calls f.
func (f SourceFunc) Roll() int {
	return f()
}

// Kind distinguishes the dice distributions a turn may use.
type Kind int

const (
	SixSided Kind = iota
	FourSided
)

func (k Kind) String() string {
	switch k {
	case SixSided:
		return "six-sided"
	case FourSided:
		return "four-sided"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sides returns the face count for the kind.
func (k Kind) Sides() int {
	if k == FourSided {
		return 4
	}
	return 6
}

// Select applies the Hog wild rule: four-sided dice whenever the two
// players' scores sum to a multiple of 7, six-sided otherwise.
func Select(score, opponentScore int) Kind {
	if (score+opponentScore)%7 == 0 {
		return FourSided
	}
	return SixSided
}

// Sided is a dice source uniformly distributed over 1..faces.
type Sided struct {
	faces  int
	random random.Random
}

// NewSided creates a Sided source rolling dice of the given kind.
func NewSided(kind Kind, rnd random.Random) *Sided {
	return &Sided{faces: kind.Sides(), random: rnd}
}

// Roll returns a uniform outcome in [1, faces].
func (s *Sided) Roll() int {
	return s.random.Intn(s.faces) + 1
}
