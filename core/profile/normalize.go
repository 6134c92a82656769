// core/profile/normalize.go
package profile

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Fractions is a sparse state → key → probability table.
type Fractions[K comparable] map[State]map[K]float64

// Get returns f[from][key], 0 when absent.
func (f Fractions[K]) Get(from State, key K) float64 { return f[from][key] }

// Sum adds up the row of from.
func (f Fractions[K]) Sum(from State) float64 {
	row := f[from]
	if len(row) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(row))
	for _, v := range row {
		vals = append(vals, v)
	}
	return floats.Sum(vals)
}

func (f Fractions[K]) clone() Fractions[K] {
	out := make(Fractions[K], len(f))
	for s, row := range f {
		cp := make(map[K]float64, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[s] = cp
	}
	return out
}

// Normalize turns each row of counts into conditional probabilities. Rows
// with no counts are left out. Keys are summed in the order given by less so
// the result does not depend on map iteration order.
func Normalize[K comparable](c Counts[K], less func(a, b K) bool) Fractions[K] {
	out := make(Fractions[K], len(c))
	for from, row := range c {
		keys := sortedKeys(row, less)
		vals := make([]float64, len(keys))
		for i, k := range keys {
			vals[i] = float64(row[k])
		}
		if !normalizeRow(vals) {
			continue
		}
		dst := make(map[K]float64, len(keys))
		for i, k := range keys {
			dst[k] = vals[i]
		}
		out[from] = dst
	}
	return out
}

// normalizeRow scales vals in place to sum to one. It reports false when the
// row has no mass.
func normalizeRow(vals []float64) bool {
	total := floats.Sum(vals)
	if total <= 0 {
		return false
	}
	for i := range vals {
		vals[i] /= total
	}
	return true
}

func sortedKeys[K comparable, V any](m map[K]V, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}

func byteLess(a, b byte) bool { return a < b }
