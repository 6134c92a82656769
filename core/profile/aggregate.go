// core/profile/aggregate.go
package profile

import (
	"context"
	"fmt"

	"github.com/exascience/pargo/parallel"

	"phmm-core/alignment"
)

// Aggregate walks every sequence of aln and reduces the events into one Tally.
// Sequences are split into at most threads batches walked in parallel; each
// batch owns its Tally and the batches are merged pairwise. onSeq, when not
// nil, is called once per walked sequence and must be safe for concurrent use.
func Aggregate(ctx context.Context, aln alignment.Alignment, cols Columns, threads int, onSeq func()) (*Tally, error) {
	n := aln.Count()
	if n == 0 {
		return nil, fmt.Errorf("%w: no sequences", alignment.ErrAlignment)
	}
	if cols.Len() != aln.Len() {
		return nil, fmt.Errorf("%w: %d classified columns for alignment of width %d",
			alignment.ErrAlignment, cols.Len(), aln.Len())
	}
	if threads < 1 {
		threads = 1
	}
	if threads > n {
		threads = n
	}

	batch := func(low, high int) *Tally {
		t := NewTally()
		for i := low; i < high; i++ {
			if ctx.Err() != nil {
				return t
			}
			t.Observe(aln.Seqs[i], cols)
			if onSeq != nil {
				onSeq()
			}
		}
		return t
	}

	var tally *Tally
	if threads == 1 {
		tally = batch(0, n)
	} else {
		tally = parallel.RangeReduce(0, n, threads, func(low, high int) interface{} {
			return batch(low, high)
		}, func(x, y interface{}) interface{} {
			return x.(*Tally).Merge(y.(*Tally))
		}).(*Tally)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tally.CheckTerminal(); err != nil {
		return nil, err
	}
	return tally, nil
}
