// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"phmm/internal/cliutil"
	"phmm/internal/version"
)

// Input formats
const (
	FormatAuto    = "auto"
	FormatProblem = "problem"
	FormatFASTA   = "fasta"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input      string
	Format     string
	ConfigFile string

	// Model parameters
	Threshold   float64
	Pseudocount float64
	Alphabet    string

	// Performance
	Threads int

	// Output
	Output   string
	Counts   bool
	Progress bool

	// Misc
	Quiet   bool
	Verbose bool
	Version bool

	// Explicit records which canonical flags were given on the command line.
	Explicit map[string]bool
}

// aliases maps short flags to their canonical long name.
var aliases = map[string]string{
	"i": "input",
	"t": "threshold",
	"p": "pseudocount",
	"a": "alphabet",
	"c": "config",
	"j": "threads",
	"o": "output",
	"q": "quiet",
	"v": "version",
}

// IsSet reports whether the canonical flag name was given explicitly.
func (o Options) IsSet(name string) bool { return o.Explicit[name] }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: build a profile HMM from a multiple sequence alignment

Version: %s

Usage of %s:
  %s [flags] <problem.txt | alignment.fa | ->
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Input, "input", "", "problem file or aligned FASTA ('-' = stdin) [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Format, "format", FormatAuto, "input format: auto | problem | fasta [auto]")
	fs.StringVar(&opt.ConfigFile, "config", "", "config file (yaml | toml | json) with default parameters")
	fs.StringVar(&opt.ConfigFile, "c", "", "alias of --config")

	// Model
	fs.Float64Var(&opt.Threshold, "threshold", 0.5, "gap fraction at which a column becomes an insertion column [0.5]")
	fs.Float64Var(&opt.Threshold, "t", 0.5, "alias of --threshold")
	fs.Float64Var(&opt.Pseudocount, "pseudocount", 0, "pseudocount added to every legal transition/emission (0 = off) [0]")
	fs.Float64Var(&opt.Pseudocount, "p", 0, "alias of --pseudocount")
	fs.StringVar(&opt.Alphabet, "alphabet", "", "emission symbols, e.g. \"A C G T\" or ACGT")
	fs.StringVar(&opt.Alphabet, "a", "", "alias of --alphabet")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "j", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Counts, "counts", false, "include raw frequency tables (json) [false]")
	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar on stderr [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "report model statistics on stderr [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		opt.Explicit[name] = true
	})

	// Validation
	switch {
	case opt.Input != "" && len(posArgs) > 0:
		return opt, errors.New("--input conflicts with a positional input")
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected one input, got %d", len(posArgs))
	case len(posArgs) == 1:
		opt.Input = posArgs[0]
	}
	if opt.Input == "" {
		return opt, errors.New("an input file is required (use '-' for stdin)")
	}
	if opt.Format != FormatAuto && opt.Format != FormatProblem && opt.Format != FormatFASTA {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	return opt, nil
}
