// core/profile/tally.go
package profile

import (
	"fmt"

	"phmm-core/alignment"
)

// Counts is a sparse state → key → count table. The zero value of a row is
// created on first increment, so callers never check for existence.
type Counts[K comparable] map[State]map[K]int

// Inc adds one to c[from][key].
func (c Counts[K]) Inc(from State, key K) { c.Add(from, key, 1) }

// Add adds n to c[from][key].
func (c Counts[K]) Add(from State, key K, n int) {
	row, ok := c[from]
	if !ok {
		row = make(map[K]int)
		c[from] = row
	}
	row[key] += n
}

// Get returns c[from][key], 0 when absent.
func (c Counts[K]) Get(from State, key K) int { return c[from][key] }

// Total sums the row of from.
func (c Counts[K]) Total(from State) int {
	t := 0
	for _, n := range c[from] {
		t += n
	}
	return t
}

// Merge adds every count of o into c.
func (c Counts[K]) Merge(o Counts[K]) {
	for from, row := range o {
		for k, n := range row {
			c.Add(from, k, n)
		}
	}
}

// Tally accumulates walker events of one or more sequences. Tallies built
// from disjoint sequence sets merge in any order to the same result.
type Tally struct {
	Transitions Counts[State]
	Emissions   Counts[byte]
	Sequences   int

	// Smallest and largest terminal index seen; valid when Sequences > 0.
	// The walker ends every sequence at the match column count, so the two
	// only differ if that contract is broken; CheckTerminal guards it.
	MinTerminal, MaxTerminal int
}

func NewTally() *Tally {
	return &Tally{
		Transitions: make(Counts[State]),
		Emissions:   make(Counts[byte]),
	}
}

// Observe walks seq and records its events.
func (t *Tally) Observe(seq string, cols Columns) {
	term := walk(seq, cols, func(e Event) {
		t.Transitions.Inc(e.From, e.To)
		if e.Emits {
			t.Emissions.Inc(e.To, e.Symbol)
		}
	})
	t.terminal(term, term, 1)
}

func (t *Tally) terminal(lo, hi, n int) {
	if t.Sequences == 0 || lo < t.MinTerminal {
		t.MinTerminal = lo
	}
	if t.Sequences == 0 || hi > t.MaxTerminal {
		t.MaxTerminal = hi
	}
	t.Sequences += n
}

// CheckTerminal fails with ErrAlignment when the observed sequences did not
// all end at the same match position.
func (t *Tally) CheckTerminal() error {
	if t.MinTerminal != t.MaxTerminal {
		return fmt.Errorf("%w: sequences end at different match positions (%d and %d)",
			alignment.ErrAlignment, t.MinTerminal, t.MaxTerminal)
	}
	return nil
}

// Merge folds o into t and returns t.
func (t *Tally) Merge(o *Tally) *Tally {
	if o == nil || o.Sequences == 0 {
		return t
	}
	t.Transitions.Merge(o.Transitions)
	t.Emissions.Merge(o.Emissions)
	t.terminal(o.MinTerminal, o.MaxTerminal, o.Sequences)
	return t
}
