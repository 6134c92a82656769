// internal/output/parse.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"phmm-core/alignment"
	"phmm-core/profile"
)

// Matrices is a transition/emission matrix pair as read back from text.
type Matrices struct {
	States      []profile.State
	Alphabet    []string
	Transitions *mat.Dense // len(States) x len(States)
	Emissions   *mat.Dense // len(States) x len(Alphabet)
}

// MatchCount is m of the topology the header describes.
func (x Matrices) MatchCount() int { return (len(x.States) - 3) / 3 }

// ReadText parses the output of WriteText. The transition header must be the
// full state list S, I0, M1, D1, I1, ..., E; every row must be labelled in
// the same order and have one cell per column. Violations wrap
// alignment.ErrFormat.
func ReadText(r io.Reader) (Matrices, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	lr.sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var x Matrices
	head, err := lr.next("transition header")
	if err != nil {
		return x, err
	}
	x.States, err = parseStateHeader(head[1:])
	if err != nil {
		return x, fmt.Errorf("%w: line %d: %v", alignment.ErrFormat, lr.ln, err)
	}
	n := len(x.States)
	x.Transitions = mat.NewDense(n, n, nil)
	if err := readRows(lr, x.States, n, x.Transitions); err != nil {
		return x, err
	}

	sep, err := lr.next("separator")
	if err != nil {
		return x, err
	}
	if len(sep) != 1 || strings.Trim(sep[0], "-") != "" || sep[0] == "" {
		return x, fmt.Errorf("%w: line %d: want separator line of dashes", alignment.ErrFormat, lr.ln)
	}

	head, err = lr.next("emission header")
	if err != nil {
		return x, err
	}
	x.Alphabet = head[1:]
	if len(x.Alphabet) == 0 {
		return x, fmt.Errorf("%w: line %d: empty emission header", alignment.ErrFormat, lr.ln)
	}
	x.Emissions = mat.NewDense(n, len(x.Alphabet), nil)
	if err := readRows(lr, x.States, len(x.Alphabet), x.Emissions); err != nil {
		return x, err
	}

	if extra, err := lr.next(""); err == nil {
		return x, fmt.Errorf("%w: line %d: unexpected trailing data %q", alignment.ErrFormat, lr.ln, strings.Join(extra, "\t"))
	} else if err != io.EOF {
		return x, err
	}
	return x, nil
}

func parseStateHeader(labels []string) ([]profile.State, error) {
	if len(labels) < 3 || (len(labels)-3)%3 != 0 {
		return nil, fmt.Errorf("header has %d states, want 3m+3", len(labels))
	}
	want := profile.States((len(labels) - 3) / 3)
	for i, lbl := range labels {
		s, err := profile.ParseState(lbl)
		if err != nil {
			return nil, err
		}
		if s != want[i] {
			return nil, fmt.Errorf("header column %d is %s, want %s", i+1, lbl, want[i])
		}
	}
	return want, nil
}

func readRows(lr *lineReader, states []profile.State, width int, dst *mat.Dense) error {
	for i, s := range states {
		row, err := lr.next("row " + s.String())
		if err != nil {
			return err
		}
		if row[0] != s.String() {
			return fmt.Errorf("%w: line %d: row label %q, want %s", alignment.ErrFormat, lr.ln, row[0], s)
		}
		if len(row)-1 != width {
			return fmt.Errorf("%w: line %d: row %s has %d cells, want %d", alignment.ErrFormat, lr.ln, s, len(row)-1, width)
		}
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: bad number %q in row %s", alignment.ErrFormat, lr.ln, cell, s)
			}
			dst.Set(i, j, v)
		}
	}
	return nil
}

// lineReader yields tab-split non-blank lines and tracks line numbers.
type lineReader struct {
	sc *bufio.Scanner
	ln int
}

// next returns io.EOF when the input ends and what is empty; otherwise a
// missing line is a format error naming what was expected.
func (lr *lineReader) next(what string) ([]string, error) {
	for lr.sc.Scan() {
		lr.ln++
		line := strings.TrimRight(lr.sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.Split(line, "\t"), nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	if what == "" {
		return nil, io.EOF
	}
	return nil, fmt.Errorf("%w: unexpected end of input, want %s", alignment.ErrFormat, what)
}
