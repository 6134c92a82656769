// pkg/api/profile_v1.go
package api

// ProfileV1 is the stable JSON schema for a built profile HMM.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ProfileV1 struct {
	MatchCount     int      `json:"match_count"`
	Sequences      int      `json:"sequences"`
	Smoothed       bool     `json:"smoothed"`
	IgnoredColumns []int    `json:"ignored_columns"`
	States         []string `json:"states"`   // S, I0, M1, D1, I1, ..., E
	Alphabet       []string `json:"alphabet"` // emission column order

	// Dense rows indexed like States (and Alphabet for emissions).
	Transitions [][]float64 `json:"transitions"`
	Emissions   [][]float64 `json:"emissions"`

	Counts *CountsV1 `json:"counts,omitempty"`
}

// CountsV1 holds the raw frequencies behind a profile, sparse by state label.
type CountsV1 struct {
	Transitions map[string]map[string]int `json:"transitions"`
	Emissions   map[string]map[string]int `json:"emissions"`
}
