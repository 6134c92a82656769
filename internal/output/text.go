// internal/output/text.go
package output

import (
	"io"
	"strings"

	"phmm-core/profile"
)

// WriteText prints the transition matrix, a dash separator and the emission
// matrix as tab-separated tables. Rows (and transition columns) follow
// profile.States; emission columns follow the alphabet.
func WriteText(w io.Writer, m *profile.Model) error {
	states := m.States()
	labels := make([]string, len(states))
	for i, s := range states {
		labels[i] = s.String()
	}

	var b strings.Builder
	tm := m.TransitionMatrix()
	writeRow(&b, "", labels)
	for i, lbl := range labels {
		b.WriteString(lbl)
		for j := range labels {
			b.WriteByte('\t')
			b.WriteString(FormatProb(tm.At(i, j)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(Separator)
	b.WriteByte('\n')

	em := m.EmissionMatrix()
	writeRow(&b, "", m.Alphabet.Strings())
	for i, lbl := range labels {
		b.WriteString(lbl)
		for j := range m.Alphabet {
			b.WriteByte('\t')
			b.WriteString(FormatProb(em.At(i, j)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, head string, cells []string) {
	b.WriteString(head)
	for _, c := range cells {
		b.WriteByte('\t')
		b.WriteString(c)
	}
	b.WriteByte('\n')
}
