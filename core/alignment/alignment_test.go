package alignment

import (
	"errors"
	"testing"
)

func TestNewRejectsRaggedAlignment(t *testing.T) {
	_, err := New([]string{"AAB", "A-", "ABB"})
	if !errors.Is(err, ErrAlignment) {
		t.Fatalf("want ErrAlignment, got %v", err)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrAlignment) {
		t.Fatalf("want ErrAlignment, got %v", err)
	}
}

func TestAlphabetParsing(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"A B C", "ABC", false},
		{"A,C,G,T", "ACGT", false},
		{"ACGT", "ACGT", false},
		{"A - C", "", true},
		{"A A", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		a, err := AlphabetFromString(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrFormat) {
				t.Errorf("%q: want ErrFormat, got %v", c.in, err)
			}
			continue
		}
		if err != nil || string(a) != c.want {
			t.Errorf("%q: got %q err=%v, want %q", c.in, string(a), err, c.want)
		}
	}
}

func TestCheckUnknownSymbol(t *testing.T) {
	aln, err := New([]string{"AC-", "AXA"})
	if err != nil {
		t.Fatal(err)
	}
	err = aln.Check(Alphabet("AC"))
	if !errors.Is(err, ErrAlignment) {
		t.Fatalf("want ErrAlignment for X, got %v", err)
	}
	if err := aln.Check(Alphabet("ACX")); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestIsFASTAPath(t *testing.T) {
	for p, want := range map[string]bool{
		"x.fa": true, "x.AFA.gz": true, "x.fasta": true, "input.txt": false, "-": false,
	} {
		if got := IsFASTAPath(p); got != want {
			t.Errorf("IsFASTAPath(%q)=%v want %v", p, got, want)
		}
	}
}
