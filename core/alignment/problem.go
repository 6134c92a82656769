// core/alignment/problem.go
package alignment

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Problem is the content of a flat problem file:
//
//	threshold [pseudocount]
//	--------
//	A B C D E
//	--------
//	one aligned sequence per line
type Problem struct {
	Threshold      float64
	Pseudocount    float64
	HasPseudocount bool
	Alphabet       Alphabet
	Alignment      Alignment
}

// LoadProblem reads a problem file from path ("-" for stdin, gzip allowed).
func LoadProblem(path string) (Problem, error) {
	rc, err := openInput(path)
	if err != nil {
		return Problem{}, err
	}
	defer func() { _ = rc.Close() }()
	return ReadProblem(rc, path)
}

// ReadProblem parses a problem file; name prefixes error messages.
func ReadProblem(r io.Reader, name string) (Problem, error) {
	var (
		p     Problem
		seqs  []string
		stage int // 0 params, 1 sep, 2 alphabet, 3 sep, 4 sequences
		ln    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch stage {
		case 0:
			f := strings.Fields(line)
			if len(f) > 2 {
				return Problem{}, fmt.Errorf("%w: %s:%d want \"threshold [pseudocount]\", got %d fields", ErrFormat, name, ln, len(f))
			}
			v, err := strconv.ParseFloat(f[0], 64)
			if err != nil {
				return Problem{}, fmt.Errorf("%w: %s:%d bad threshold %q", ErrFormat, name, ln, f[0])
			}
			p.Threshold = v
			if len(f) == 2 {
				v, err := strconv.ParseFloat(f[1], 64)
				if err != nil {
					return Problem{}, fmt.Errorf("%w: %s:%d bad pseudocount %q", ErrFormat, name, ln, f[1])
				}
				p.Pseudocount, p.HasPseudocount = v, true
			}
		case 1, 3:
			if line[0] != '-' || strings.Trim(line, "-") != "" {
				return Problem{}, fmt.Errorf("%w: %s:%d want separator line of dashes, got %q", ErrFormat, name, ln, line)
			}
		case 2:
			a, err := ParseAlphabet(strings.Fields(line))
			if err != nil {
				return Problem{}, fmt.Errorf("%s:%d: %w", name, ln, err)
			}
			p.Alphabet = a
		default:
			seqs = append(seqs, line)
		}
		if stage < 4 {
			stage++
		}
	}
	if err := sc.Err(); err != nil {
		return Problem{}, err
	}
	if stage < 4 {
		return Problem{}, fmt.Errorf("%w: %s: truncated header (expected threshold, separator, alphabet, separator)", ErrFormat, name)
	}
	aln, err := New(seqs)
	if err != nil {
		return Problem{}, fmt.Errorf("%s: %w", name, err)
	}
	p.Alignment = aln
	return p, nil
}
