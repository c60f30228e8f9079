package dice

import "fmt"

// Sequence is a deterministic test source that yields a fixed series of
// outcomes. By default it cycles back to the start when the series runs
// out; a strict sequence panics instead, which pins down exactly how many
// rolls a code path consumes.
type Sequence struct {
	outcomes []int
	next     int
	strict   bool
}

// NewSequence creates a cycling deterministic source.
func NewSequence(outcomes ...int) *Sequence {
	if len(outcomes) == 0 {
		panic("dice: sequence requires at least one outcome")
	}
	return &Sequence{outcomes: outcomes}
}

// NewStrictSequence creates a deterministic source that panics when rolled
// more times than it has outcomes.
func NewStrictSequence(outcomes ...int) *Sequence {
	s := NewSequence(outcomes...)
	s.strict = true
	return s
}

// Roll returns the next outcome in the series.
func (s *Sequence) Roll() int {
	if s.next >= len(s.outcomes) {
		if s.strict {
			panic(fmt.Sprintf("dice: sequence exhausted after %d rolls", len(s.outcomes)))
		}
		s.next = 0
	}
	out := s.outcomes[s.next]
	s.next++
	return out
}
