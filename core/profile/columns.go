// core/profile/columns.go
package profile

import "phmm-core/alignment"

// Columns is the match/insertion classification of an alignment's columns.
type Columns struct {
	ignored []bool
	matches int
}

// ClassifyColumns marks column c as an insertion column when the fraction of
// sequences with a gap at c is at least threshold.
func ClassifyColumns(aln alignment.Alignment, threshold float64) Columns {
	n := aln.Count()
	cols := Columns{ignored: make([]bool, aln.Len())}
	for c := range cols.ignored {
		gaps := 0
		for _, s := range aln.Seqs {
			if s[c] == alignment.Gap {
				gaps++
			}
		}
		if float64(gaps)/float64(n) >= threshold {
			cols.ignored[c] = true
		} else {
			cols.matches++
		}
	}
	return cols
}

// Len is the number of columns classified.
func (c Columns) Len() int { return len(c.ignored) }

// Ignored reports whether column i is an insertion column.
func (c Columns) Ignored(i int) bool { return c.ignored[i] }

// MatchCount is the number of match columns.
func (c Columns) MatchCount() int { return c.matches }

// IgnoredIndices lists insertion columns in increasing order.
func (c Columns) IgnoredIndices() []int {
	out := make([]int, 0, len(c.ignored)-c.matches)
	for i, ig := range c.ignored {
		if ig {
			out = append(out, i)
		}
	}
	return out
}
