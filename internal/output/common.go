package output

import (
	"strconv"
	"strings"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Separator is the line between the transition and the emission matrix.
const Separator = "--------"

// FormatProb renders a probability the way the matrix consumers expect:
// absent or zero cells as "0", everything else as the shortest round-trip
// decimal with a trailing ".0" on whole numbers (1.0, 0.5, 9.7e-05).
func FormatProb(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
