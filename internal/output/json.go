// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/mat"

	"phmm-core/profile"
	"phmm/pkg/api"
)

// ToAPIProfile converts a model to the stable wire schema (v1).
func ToAPIProfile(m *profile.Model, withCounts bool) api.ProfileV1 {
	states := m.States()
	v := api.ProfileV1{
		MatchCount:     m.MatchCount,
		Sequences:      m.Sequences,
		Smoothed:       m.Smoothed,
		IgnoredColumns: append([]int{}, m.Ignored...),
		States:         make([]string, len(states)),
		Alphabet:       m.Alphabet.Strings(),
		Transitions:    denseRows(m.TransitionMatrix()),
		Emissions:      denseRows(m.EmissionMatrix()),
	}
	for i, s := range states {
		v.States[i] = s.String()
	}
	if withCounts {
		c := &api.CountsV1{
			Transitions: map[string]map[string]int{},
			Emissions:   map[string]map[string]int{},
		}
		for from, row := range m.TransitionCounts {
			dst := make(map[string]int, len(row))
			for to, n := range row {
				dst[to.String()] = n
			}
			c.Transitions[from.String()] = dst
		}
		for s, row := range m.EmissionCounts {
			dst := make(map[string]int, len(row))
			for sym, n := range row {
				dst[string(sym)] = n
			}
			c.Emissions[s.String()] = dst
		}
		v.Counts = c
	}
	return v
}

func denseRows(d *mat.Dense) [][]float64 {
	r, _ := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, d)
	}
	return out
}

// WriteJSON writes one indented JSON document.
func WriteJSON(w io.Writer, m *profile.Model, withCounts bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIProfile(m, withCounts))
}
