// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"phmm-core/alignment"
	"phmm-core/profile"
	"phmm/internal/cli"
	"phmm/internal/cmdutil"
	"phmm/internal/config"
	"phmm/internal/version"
	"phmm/internal/writers"
)

// RunContext parses argv, builds the profile HMM and writes it to stdout.
// Exit codes: 0 ok, 2 usage/input errors, 3 output errors, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet("phmm")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "phmm version %s\n", version.Version)
		return flush(0)
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if cfg.Path != "" {
		cmdutil.Infof(stderr, opts.Verbose, "using config %s", cfg.Path)
	}

	aln, prob, err := load(parent, opts)
	if err != nil {
		return failure(stderr, err)
	}

	p, err := resolve(opts, cfg, aln, prob, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if !contains(writers.Formats(), p.output) {
		_, _ = fmt.Fprintf(stderr, "invalid output %q (want %s)\n", p.output, strings.Join(writers.Formats(), " | "))
		return 2
	}

	model, err := cmdutil.BuildModel(parent, aln, p.model, stderr, opts.Progress && !opts.Quiet)
	if err != nil {
		return failure(stderr, err)
	}
	report(stderr, opts, aln, p.model, model)

	if err := writers.WriteModel(p.output, outw, model, writers.Options{Counts: opts.Counts}); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// load reads the input as a problem file or an aligned FASTA file. The
// problem is nil for FASTA input.
func load(ctx context.Context, o cli.Options) (alignment.Alignment, *alignment.Problem, error) {
	format := o.Format
	if format == cli.FormatAuto {
		format = cli.FormatProblem
		if alignment.IsFASTAPath(o.Input) {
			format = cli.FormatFASTA
		}
	}
	if format == cli.FormatFASTA {
		aln, err := alignment.ReadFASTA(ctx, o.Input)
		return aln, nil, err
	}
	prob, err := alignment.LoadProblem(o.Input)
	if err != nil {
		return alignment.Alignment{}, nil, err
	}
	return prob.Alignment, &prob, nil
}

// failure maps an input or build error to an exit code.
func failure(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	_, _ = fmt.Fprintln(stderr, err)
	switch {
	case errors.Is(err, alignment.ErrFormat),
		errors.Is(err, alignment.ErrAlignment),
		errors.Is(err, profile.ErrInvalidOptions):
		return 2
	}
	var pe *os.PathError
	if errors.As(err, &pe) {
		return 2
	}
	return 3
}

func report(stderr io.Writer, o cli.Options, aln alignment.Alignment, opt profile.Options, m *profile.Model) {
	cmdutil.Infof(stderr, o.Verbose, "%d sequences x %d columns, threshold %v, %d threads",
		aln.Count(), aln.Len(), opt.Threshold, opt.Threads)
	cmdutil.Infof(stderr, o.Verbose, "%d insertion columns, %d match states", len(m.Ignored), m.MatchCount)
	if m.Smoothed {
		cmdutil.Infof(stderr, o.Verbose, "pseudocount %v applied", opt.Pseudocount)
	}
	if m.MatchCount == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "every column is an insertion column (threshold %v); model has no match states", opt.Threshold)
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
