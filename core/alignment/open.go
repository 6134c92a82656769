// core/alignment/open.go
package alignment

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// openInput opens path for reading. "-" is stdin; gzip is detected by the
// 1F 8B magic or a .gz suffix.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, fh: fh}, nil
	}
	return fh, nil
}

// IsFASTAPath reports whether path looks like an aligned FASTA file.
func IsFASTAPath(path string) bool {
	p := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	for _, ext := range []string{".fa", ".fasta", ".afa", ".aln", ".fas", ".mfa"} {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}
