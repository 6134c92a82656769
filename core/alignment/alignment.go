// core/alignment/alignment.go
package alignment

import (
	"errors"
	"fmt"
	"strings"
)

// Gap is the gap symbol of aligned sequences. It is never part of an Alphabet.
const Gap byte = '-'

var (
	// ErrFormat marks malformed input: bad headers, row widths, numbers.
	ErrFormat = errors.New("format error")
	// ErrAlignment marks an alignment that cannot be walked column by column.
	ErrAlignment = errors.New("alignment error")
)

// Alphabet is the ordered list of emission symbols.
type Alphabet []byte

// ParseAlphabet builds an Alphabet from whitespace-separated single-byte symbols.
func ParseAlphabet(fields []string) (Alphabet, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrFormat)
	}
	seen := make(map[byte]struct{}, len(fields))
	out := make(Alphabet, 0, len(fields))
	for _, f := range fields {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: alphabet symbol %q is not a single character", ErrFormat, f)
		}
		b := f[0]
		if b == Gap {
			return nil, fmt.Errorf("%w: alphabet must not contain the gap symbol %q", ErrFormat, string(Gap))
		}
		if _, dup := seen[b]; dup {
			return nil, fmt.Errorf("%w: duplicate alphabet symbol %q", ErrFormat, f)
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out, nil
}

// AlphabetFromString accepts either "A C G T", "A,C,G,T" or "ACGT".
func AlphabetFromString(s string) (Alphabet, error) {
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}
	return ParseAlphabet(fields)
}

func (a Alphabet) Len() int { return len(a) }

// Index returns the position of b, or -1.
func (a Alphabet) Index(b byte) int {
	for i, c := range a {
		if c == b {
			return i
		}
	}
	return -1
}

func (a Alphabet) Contains(b byte) bool { return a.Index(b) >= 0 }

// Strings returns the symbols as one-character strings, in order.
func (a Alphabet) Strings() []string {
	out := make([]string, len(a))
	for i, b := range a {
		out[i] = string(b)
	}
	return out
}

// Alignment is a set of equal-length aligned sequences.
// IDs is optional and, when present, parallel to Seqs.
type Alignment struct {
	IDs  []string
	Seqs []string
}

// New checks that seqs is non-empty and rectangular.
func New(seqs []string) (Alignment, error) {
	return NewWithIDs(nil, seqs)
}

func NewWithIDs(ids, seqs []string) (Alignment, error) {
	if len(seqs) == 0 {
		return Alignment{}, fmt.Errorf("%w: no sequences", ErrAlignment)
	}
	if ids != nil && len(ids) != len(seqs) {
		return Alignment{}, fmt.Errorf("%w: %d ids for %d sequences", ErrAlignment, len(ids), len(seqs))
	}
	width := len(seqs[0])
	for i, s := range seqs {
		if len(s) != width {
			return Alignment{}, fmt.Errorf("%w: sequence %s has length %d, want %d",
				ErrAlignment, label(ids, i), len(s), width)
		}
	}
	return Alignment{IDs: ids, Seqs: seqs}, nil
}

// Count is the number of sequences.
func (a Alignment) Count() int { return len(a.Seqs) }

// Len is the number of columns.
func (a Alignment) Len() int {
	if len(a.Seqs) == 0 {
		return 0
	}
	return len(a.Seqs[0])
}

// Check reports the first symbol that is neither the gap nor in alphabet.
func (a Alignment) Check(alphabet Alphabet) error {
	var ok [256]bool
	ok[Gap] = true
	for _, b := range alphabet {
		ok[b] = true
	}
	for i, s := range a.Seqs {
		for col := 0; col < len(s); col++ {
			if !ok[s[col]] {
				return fmt.Errorf("%w: sequence %s column %d: symbol %q not in alphabet",
					ErrAlignment, label(a.IDs, i), col, string(s[col]))
			}
		}
	}
	return nil
}

func label(ids []string, i int) string {
	if i < len(ids) && ids[i] != "" {
		return fmt.Sprintf("%q", ids[i])
	}
	return fmt.Sprintf("#%d", i+1)
}
