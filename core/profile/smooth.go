// core/profile/smooth.go
package profile

import (
	"fmt"

	"phmm-core/alignment"
)

// Successors lists the states reachable from s in a topology with m match
// columns. Start always leads to M1, D1 and I0, even when m == 0; the states
// past the topology carry pseudo mass but have no matrix column.
// An unknown kind is a programming error and panics.
func Successors(s State, m int) []State {
	switch s.Kind {
	case Start:
		return []State{M(1), D(1), I(0)}
	case Match, Delete, Insert:
		k := s.Index
		if k < m {
			return []State{M(k + 1), D(k + 1), I(k)}
		}
		return []State{EndState, I(k)}
	case End:
		return nil
	}
	panic(fmt.Sprintf("profile: internal consistency: unknown state kind %d", s.Kind))
}

// Smooth adds pseudo to every legal transition and to every alphabet symbol
// of every emitting state, on top of the already normalized tables, and
// renormalizes each row. Every state of States(m) with successors ends up
// with a full row. The inputs are not modified.
//
// The pseudo mass is added to probabilities rather than to counts, so
// smoothing twice is not the same as smoothing once.
func Smooth(tr Fractions[State], em Fractions[byte], m int, pseudo float64, alphabet alignment.Alphabet) (Fractions[State], Fractions[byte]) {
	outTr, outEm := tr.clone(), em.clone()
	for _, s := range States(m) {
		if next := Successors(s, m); len(next) > 0 {
			outTr[s] = addPseudo(outTr[s], next, pseudo, Less)
		}
		if s.Emits() {
			outEm[s] = addPseudo(outEm[s], []byte(alphabet), pseudo, byteLess)
		}
	}
	return outTr, outEm
}

// addPseudo returns row with pseudo added to each of keys, renormalized over
// all entries of the row.
func addPseudo[K comparable](row map[K]float64, keys []K, pseudo float64, less func(a, b K) bool) map[K]float64 {
	if row == nil {
		row = make(map[K]float64, len(keys))
	}
	for _, k := range keys {
		row[k] += pseudo
	}
	order := sortedKeys(row, less)
	vals := make([]float64, len(order))
	for i, k := range order {
		vals[i] = row[k]
	}
	if normalizeRow(vals) {
		for i, k := range order {
			row[k] = vals[i]
		}
	}
	return row
}
