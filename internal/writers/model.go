package writers

import (
	"io"

	"phmm-core/profile"
	"phmm/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, m *profile.Model, _ Options) error {
		return output.WriteText(w, m)
	})
	Register(output.FormatJSON, func(w io.Writer, m *profile.Model, opt Options) error {
		return output.WriteJSON(w, m, opt.Counts)
	})
}
