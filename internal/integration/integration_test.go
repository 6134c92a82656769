// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phmm/internal/app"
	"phmm/internal/output"
	"phmm/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

const pseudoProblem = `0.358	0.01
--------
A	B	C	D	E
--------
ADA
ADA
AAA
ADC
-DA
D-A
`

func TestEndToEndProblemFile(t *testing.T) {
	in := write(t, "input.txt", "0.5\n--------\nA B\n--------\nAAB\nA-B\nABB\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	x, err := output.ReadText(&out)
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if x.MatchCount() != 3 || x.Transitions.At(0, 2) != 1 {
		t.Fatalf("unexpected model: m=%d S→M1=%v", x.MatchCount(), x.Transitions.At(0, 2))
	}
}

func TestEndToEndPseudocountRowsSumToOne(t *testing.T) {
	in := write(t, "input.txt", pseudoProblem)
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{in}, &out, &errBuf); code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	x, err := output.ReadText(&out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n := len(x.States)
	for i := 0; i < n-1; i++ { // every state but E has successors
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += x.Transitions.At(i, j)
		}
		if sum < 1-1e-9 || sum > 1+1e-9 {
			t.Errorf("row %s sums to %v", x.States[i], sum)
		}
	}
}

func TestAllInsertionColumnsStartRow(t *testing.T) {
	in := write(t, "input.txt", "0\t0.05\n--------\nA\tB\n--------\nAB\nA-\n")
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{in}, &out, &errBuf); code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	x, err := output.ReadText(&out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if x.MatchCount() != 0 {
		t.Fatalf("m=%d, want 0", x.MatchCount())
	}
	// S→M1 and S→D1 take pseudo mass but are not printed.
	want := []float64{0, 1.05 / 1.15, 0}
	for j, w := range want {
		if got := x.Transitions.At(0, j); math.Abs(got-w) > 1e-12 {
			t.Errorf("S→%s = %v, want %v", x.States[j], got, w)
		}
	}
}

func TestFASTAInputWithFlags(t *testing.T) {
	fa := write(t, "aln.fa", ">a\nAAB\n>b\nA-B\n>c\nABB\n")
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--threshold", "0.5", "--alphabet", "AB", "-o", "json", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var v api.ProfileV1
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if v.MatchCount != 3 || v.Sequences != 3 {
		t.Fatalf("bad profile: %+v", v)
	}
}

func TestFASTARequiresAlphabet(t *testing.T) {
	fa := write(t, "aln.fa", ">a\nAAB\n>b\nA-B\n")
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{fa}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "alphabet") {
		t.Fatalf("unexpected error: %s", errBuf.String())
	}
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	fa := write(t, "aln.fasta", ">a\nAAB\n>b\nA-B\n>c\nABB\n")
	cfg := write(t, "phmm.yaml", "threshold: 0.5\npseudocount: 0.01\nalphabet: AB\noutput: json\n")
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--config", cfg, fa}, &out, &errBuf); code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var v api.ProfileV1
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !v.Smoothed {
		t.Fatal("pseudocount from config was not applied")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	in := write(t, "input.txt", pseudoProblem)
	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{"--threads", fmt.Sprint(threads), "--output", "json", "--counts", in}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}
	if serial, parallel := run(1), run(4); serial != parallel {
		t.Fatalf("parallel output differs from serial")
	}
}

func TestInputErrorsExitTwo(t *testing.T) {
	cases := map[string]string{
		"ragged":        "0.5\n--------\nA B\n--------\nAAB\nAB\n",
		"bad threshold": "x\n--------\nA B\n--------\nAAB\n",
		"out of range":  "1.5\n--------\nA B\n--------\nAAB\n",
		"bad symbol":    "0.5\n--------\nA B\n--------\nAAC\n",
	}
	for name, body := range cases {
		in := write(t, "input.txt", body)
		var out, errBuf bytes.Buffer
		if code := app.Run([]string{in}, &out, &errBuf); code != 2 {
			t.Errorf("%s: want exit 2, got %d (%s)", name, code, errBuf.String())
		}
	}
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{filepath.Join(t.TempDir(), "missing.txt")}, &out, &errBuf); code != 2 {
		t.Errorf("missing file: want exit 2, got %d", code)
	}
}

func TestCancelledContext(t *testing.T) {
	in := write(t, "input.txt", pseudoProblem)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{in}, &out, &errBuf); code != 130 {
		t.Fatalf("want 130, got %d (%s)", code, errBuf.String())
	}
}

func TestHelpAndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"-h"}, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "profile HMM") {
		t.Fatalf("help: exit %d out=%q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 || !strings.HasPrefix(out.String(), "phmm version") {
		t.Fatalf("version: exit %d out=%q", code, out.String())
	}
}
