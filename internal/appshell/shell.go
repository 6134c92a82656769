// Package appshell is the process wrapper around app.RunContext.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs the profile builder with SIGINT/SIGTERM wired to ctx and exits
// with its code. A signal during a successful run still exits 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, defaultArgs(os.Args[1:], stdinIsPipe(os.Stdin)), os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	stop()
	os.Exit(code)
}

// defaultArgs fills in an empty command line: an alignment piped on stdin
// is read as "-", otherwise the help text is shown.
func defaultArgs(argv []string, piped bool) []string {
	switch {
	case len(argv) > 0:
		return argv
	case piped:
		return []string{"-"}
	}
	return []string{"-h"}
}

// stdinIsPipe reports whether f is something other than a terminal.
func stdinIsPipe(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}
