// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"ringrot/internal/cli"
	"ringrot/internal/config"
	"ringrot/internal/engine"
	"ringrot/internal/grid"
	"ringrot/internal/input"
	"ringrot/internal/logging"
	"ringrot/internal/output"
	"ringrot/internal/ring"
	"ringrot/internal/runutil"
	"ringrot/internal/version"
	"ringrot/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, config or input
	ExitRuntime  = 3 // output or unexpected failure
	ExitCanceled = 130
)

const longHelp = `ringrot rotates every concentric ring of an integer grid.

Input (text): a header line "M N R" followed by M rows of N integers.
Input (json): {"rows":M,"cols":N,"rotations":R,"grid":[[...],...]}
Compressed inputs (.gz, .zst) are detected automatically. With no input
argument, or with "-", the grid is read from stdin.

Each ring is read clockwise from its top-left corner and shifted R
positions so that position i receives the value at i+R. Cells in the
middle strip of a grid whose shorter side is odd belong to no ring.`

func newRootCmd(opts *cli.Options, run func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ringrot [input]",
		Short:         "Rotate the concentric rings of an integer grid",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.SetVersionTemplate("ringrot version {{.Version}}\n")
	cli.Bind(cmd.Flags(), opts)
	return cmd
}

// RunContext parses argv, rotates the grid and writes it to stdout. It
// returns the process exit code. Nothing reaches stdout unless the whole
// rotation succeeded.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var (
		opts cli.Options
		code = ExitOK
	)
	cmd := newRootCmd(&opts, func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			opts.Input = args[0]
		}
		code = execute(cmd.Context(), cmd.Flags(), opts, stdout, stderr)
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, fs *pflag.FlagSet, opts cli.Options, stdout, stderr io.Writer) int {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		c, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return ExitUsage
		}
		cfg = c
	}
	opts.ApplyConfig(fs, cfg)
	if err := opts.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	log, err := logging.New(stderr, cfg.LogLevel, opts.Verbose, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	defer func() { _ = log.Sync() }()

	prob, err := input.Load(opts.Input, opts.InputFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	rot := prob.Rotations
	if opts.Rotations >= 0 {
		rot = opts.Rotations
	}

	levels := ring.Levels(prob.Rows, prob.Cols)
	workers := runutil.ClampWorkers(runutil.EffectiveWorkers(opts.Workers), levels)
	log.Debug("input loaded",
		zap.String("source", sourceName(opts.Input)),
		zap.Int("rows", prob.Rows),
		zap.Int("cols", prob.Cols),
		zap.Int("rotations", rot),
		zap.Int("levels", levels),
		zap.Int("workers", workers),
	)
	if m := min(prob.Rows, prob.Cols); m > 1 && m%2 == 1 && opts.Center == string(engine.CenterZero) {
		log.Warn("center cells belong to no ring and will be zeroed")
	}

	eng := engine.New(engine.Config{
		Workers: workers,
		Center:  engine.Center(opts.Center),
		Logger:  log,
	})
	rotated, err := eng.Rotate(ctx, prob.Grid, rot)
	if err != nil {
		return failure(stderr, err)
	}

	outw := bufio.NewWriter(stdout)
	res := output.Result{Rotations: rot, Center: opts.Center, Grid: rotated}
	if err := writers.Write(opts.Output, outw, res, writers.Options{Pretty: opts.Pretty}); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return ExitOK
}

func failure(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	if errors.Is(err, grid.ErrInvalidInput) || errors.Is(err, grid.ErrDimensionMismatch) {
		return ExitUsage
	}
	return ExitRuntime
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
