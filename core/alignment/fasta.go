// core/alignment/fasta.go
package alignment

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
)

// ReadFASTA loads an aligned FASTA file (gzip and "-" supported).
// Sequence lines are concatenated per record; blank lines are skipped.
// Cancellation via ctx is checked between lines.
func ReadFASTA(ctx context.Context, path string) (Alignment, error) {
	rc, err := openInput(path)
	if err != nil {
		return Alignment{}, err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var (
		ids  []string
		seqs []string
		id   string
		cur  []byte
		have bool
		ln   int
	)
	flush := func() {
		if have {
			ids = append(ids, id)
			seqs = append(seqs, string(cur))
		}
		cur = cur[:0]
	}
	for sc.Scan() {
		ln++
		if ln%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Alignment{}, err
			}
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id, have = headerID(line[1:]), true
			continue
		}
		if !have {
			return Alignment{}, fmt.Errorf("%w: %s:%d sequence data before first '>' header", ErrFormat, path, ln)
		}
		cur = append(cur, line...)
	}
	if err := sc.Err(); err != nil {
		return Alignment{}, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	aln, err := NewWithIDs(ids, seqs)
	if err != nil {
		return Alignment{}, fmt.Errorf("%s: %w", path, err)
	}
	return aln, nil
}

// headerID keeps the first whitespace-delimited token of a header line.
func headerID(h []byte) string {
	if f := bytes.Fields(h); len(f) > 0 {
		return string(f[0])
	}
	return ""
}
