package alignment

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReadFASTAMultiline(t *testing.T) {
	path := writeFile(t, "aln.fa", ">s1 first\nAA\nB\n>s2\nA-B\n\n>s3\nABB\n")
	aln, err := ReadFASTA(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if aln.Count() != 3 || aln.Len() != 3 {
		t.Fatalf("bad shape: %+v", aln)
	}
	if aln.IDs[0] != "s1" || aln.Seqs[0] != "AAB" || aln.Seqs[1] != "A-B" {
		t.Fatalf("bad records: %+v", aln)
	}
}

func TestReadFASTARagged(t *testing.T) {
	path := writeFile(t, "bad.fa", ">a\nAAA\n>b\nAA\n")
	_, err := ReadFASTA(context.Background(), path)
	if !errors.Is(err, ErrAlignment) {
		t.Fatalf("want ErrAlignment, got %v", err)
	}
}

func TestReadFASTANoHeader(t *testing.T) {
	path := writeFile(t, "bad.fa", "AAA\n>b\nAAA\n")
	_, err := ReadFASTA(context.Background(), path)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}
