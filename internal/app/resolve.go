// internal/app/resolve.go
package app

import (
	"fmt"
	"io"

	"phmm-core/alignment"
	"phmm-core/profile"
	"phmm/internal/cli"
	"phmm/internal/cmdutil"
	"phmm/internal/config"
	"phmm/internal/runutil"
)

// params is the merged run configuration.
type params struct {
	model  profile.Options
	output string
}

// resolve merges flag, problem-file and config-file values. Precedence:
// explicit flag > problem file > config file > flag default.
func resolve(o cli.Options, cfg config.Settings, aln alignment.Alignment, prob *alignment.Problem, stderr io.Writer) (params, error) {
	var p params

	p.model.Threshold = o.Threshold
	switch {
	case o.IsSet("threshold"):
		if prob != nil && prob.Threshold != o.Threshold {
			cmdutil.Warnf(stderr, o.Quiet, "--threshold %v overrides %v from the input file", o.Threshold, prob.Threshold)
		}
	case prob != nil:
		p.model.Threshold = prob.Threshold
	case cfg.IsSet(config.KeyThreshold):
		p.model.Threshold = cfg.Threshold
	}

	p.model.Pseudocount = o.Pseudocount
	switch {
	case o.IsSet("pseudocount"):
		if prob != nil && prob.HasPseudocount && prob.Pseudocount != o.Pseudocount {
			cmdutil.Warnf(stderr, o.Quiet, "--pseudocount %v overrides %v from the input file", o.Pseudocount, prob.Pseudocount)
		}
	case prob != nil && prob.HasPseudocount:
		p.model.Pseudocount = prob.Pseudocount
	case cfg.IsSet(config.KeyPseudocount):
		p.model.Pseudocount = cfg.Pseudocount
	}

	var alpha string
	switch {
	case o.IsSet("alphabet"):
		alpha = o.Alphabet
	case prob != nil:
		p.model.Alphabet = prob.Alphabet
	case cfg.IsSet(config.KeyAlphabet):
		alpha = cfg.Alphabet
	}
	if p.model.Alphabet == nil {
		if alpha == "" {
			return p, fmt.Errorf("no alphabet: pass --alphabet or set %q in --config", config.KeyAlphabet)
		}
		a, err := alignment.AlphabetFromString(alpha)
		if err != nil {
			return p, err
		}
		p.model.Alphabet = a
	}

	p.output = o.Output
	if !o.IsSet("output") && cfg.IsSet(config.KeyOutput) {
		p.output = cfg.Output
	}

	p.model.Threads = o.Threads
	if !o.IsSet("threads") && cfg.IsSet(config.KeyThreads) {
		p.model.Threads = cfg.Threads
	}
	p.model.Threads = runutil.EffectiveThreads(p.model.Threads, aln.Count())
	return p, p.model.Validate()
}
