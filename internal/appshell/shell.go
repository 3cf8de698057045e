package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Run is a CLI entry point: it returns the process exit code.
type Run func(context.Context, []string, io.Writer, io.Writer) int

// Main runs a CLI entry point with a signal-aware context and exits with
// its code. With no arguments the tool reads stdin.
func Main(run Run) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := invoke(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// invoke returns run's own code. run reports cancellation itself, so a
// signal arriving after the output was flushed does not change the result.
func invoke(ctx context.Context, run Run, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr)
}
