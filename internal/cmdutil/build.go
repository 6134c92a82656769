// internal/cmdutil/build.go
package cmdutil

import (
	"context"
	"io"

	"github.com/schollz/progressbar/v3"

	"phmm-core/alignment"
	"phmm-core/profile"
)

// BuildModel runs profile.Build, drawing a progress bar on stderr (one tick
// per walked sequence) when progress is set.
func BuildModel(ctx context.Context, aln alignment.Alignment, opt profile.Options, stderr io.Writer, progress bool) (*profile.Model, error) {
	if !progress {
		return profile.Build(ctx, aln, opt)
	}
	bar := progressbar.NewOptions(aln.Count(),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("walking sequences"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(0),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(stderr, "\n") }),
	)
	opt.OnSequence = func() { _ = bar.Add(1) }
	m, err := profile.Build(ctx, aln, opt)
	if err != nil {
		_ = bar.Clear()
		return nil, err
	}
	_ = bar.Finish()
	return m, nil
}
