// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"phmm-core/profile"
)

// Options carries per-run presentation switches.
type Options struct {
	Counts bool // include raw frequencies where the format supports it
}

// ModelWriterFunc serializes one model.
type ModelWriterFunc func(w io.Writer, m *profile.Model, opt Options) error

// ModelWriters maps format → handler. Register in init() blocks.
var ModelWriters = map[string]ModelWriterFunc{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn ModelWriterFunc) { ModelWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ModelWriters))
	for f := range ModelWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteModel dispatches to the handler registered for format.
func WriteModel(format string, w io.Writer, m *profile.Model, opt Options) error {
	fn, ok := ModelWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, m, opt)
}
