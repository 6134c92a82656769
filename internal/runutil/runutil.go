// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for a --threads value:
// n itself when positive, otherwise all CPUs. The result never exceeds
// the number of sequences.
func EffectiveThreads(n, sequences int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if sequences > 0 && n > sequences {
		n = sequences
	}
	if n < 1 {
		n = 1
	}
	return n
}
