// core/profile/model.go
package profile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"phmm-core/alignment"
)

// ErrInvalidOptions marks a threshold or pseudocount outside its domain.
var ErrInvalidOptions = errors.New("invalid options")

// Options controls model construction.
type Options struct {
	Threshold   float64            // gap fraction at or above which a column is an insertion column, in [0,1]
	Pseudocount float64            // 0 disables smoothing
	Alphabet    alignment.Alphabet // emission symbols, in output order
	Threads     int                // parallel batches for the walk (<1 means 1)
	OnSequence  func()             // progress hook, called concurrently
}

// Validate checks the numeric domains and the alphabet.
func (o Options) Validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidOptions, o.Threshold)
	}
	if math.IsNaN(o.Pseudocount) || math.IsInf(o.Pseudocount, 0) || o.Pseudocount < 0 {
		return fmt.Errorf("%w: pseudocount %v must be finite and >= 0", ErrInvalidOptions, o.Pseudocount)
	}
	if len(o.Alphabet) == 0 {
		return fmt.Errorf("%w: empty alphabet", ErrInvalidOptions)
	}
	return nil
}

// Model is a profile HMM built from an alignment.
type Model struct {
	Alphabet   alignment.Alphabet
	MatchCount int
	Ignored    []int // insertion columns
	Sequences  int
	Smoothed   bool

	Transitions Fractions[State]
	Emissions   Fractions[byte]

	// Raw frequencies the fractions were derived from.
	TransitionCounts Counts[State]
	EmissionCounts   Counts[byte]
}

// Build classifies columns, walks and tallies every sequence, normalizes the
// counts and, when opt.Pseudocount > 0, smooths the result.
func Build(ctx context.Context, aln alignment.Alignment, opt Options) (*Model, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if err := aln.Check(opt.Alphabet); err != nil {
		return nil, err
	}
	cols := ClassifyColumns(aln, opt.Threshold)
	tally, err := Aggregate(ctx, aln, cols, opt.Threads, opt.OnSequence)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Alphabet:         opt.Alphabet,
		MatchCount:       tally.MaxTerminal,
		Ignored:          cols.IgnoredIndices(),
		Sequences:        tally.Sequences,
		TransitionCounts: tally.Transitions,
		EmissionCounts:   tally.Emissions,
		Transitions:      Normalize(tally.Transitions, Less),
		Emissions:        Normalize(tally.Emissions, byteLess),
	}
	if opt.Pseudocount > 0 {
		m.Transitions, m.Emissions = Smooth(m.Transitions, m.Emissions, m.MatchCount, opt.Pseudocount, opt.Alphabet)
		m.Smoothed = true
	}
	return m, nil
}

// States lists the model's states in header order.
func (m *Model) States() []State { return States(m.MatchCount) }

// Transition returns P(to | from), 0 when absent.
func (m *Model) Transition(from, to State) float64 { return m.Transitions.Get(from, to) }

// Emission returns P(sym | s), 0 when absent.
func (m *Model) Emission(s State, sym byte) float64 { return m.Emissions.Get(s, sym) }
