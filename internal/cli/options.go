// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"ringrot/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input       string // path, or "-"/"" for stdin
	InputFormat string
	Rotations   int // -1 = take R from the input

	// Rotation
	Workers int
	Center  string

	// Output
	Output string
	Pretty bool

	// Misc
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

// Bind registers all flags on fs, with defaults from config.Default().
func Bind(fs *pflag.FlagSet, o *Options) {
	d := config.Default()

	fs.StringVar(&o.InputFormat, "input-format", d.InputFormat, "input format: auto | text | json")
	fs.IntVarP(&o.Rotations, "rotations", "r", -1, "rotation count; overrides R from the input (-1 = use input)")

	fs.IntVarP(&o.Workers, "workers", "w", d.Workers, "ring levels rotated concurrently (0 = all CPUs)")
	fs.StringVar(&o.Center, "center", d.Center, "cells outside every ring: copy (keep input) | zero")

	fs.StringVarP(&o.Output, "output", "o", d.Output, "output format: text | json")
	fs.BoolVar(&o.Pretty, "pretty", d.Pretty, "indent JSON output")

	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with default settings")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging on stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress all logging")
}

// ApplyConfig copies config values into o for every flag the user did not
// set explicitly.
func (o *Options) ApplyConfig(fs *pflag.FlagSet, c config.Config) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && !f.Changed {
			apply()
		}
	}
	set("input-format", func() { o.InputFormat = c.InputFormat })
	set("workers", func() { o.Workers = c.Workers })
	set("center", func() { o.Center = c.Center })
	set("output", func() { o.Output = c.Output })
	set("pretty", func() { o.Pretty = c.Pretty })
}

// Validate checks values the flag parser cannot.
func (o Options) Validate() error {
	if o.Rotations < -1 {
		return errors.New("--rotations must be ≥ 0 (or -1 to use the input)")
	}
	if o.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if !slices.Contains([]string{"auto", "text", "json"}, o.InputFormat) {
		return fmt.Errorf("invalid --input-format %q", o.InputFormat)
	}
	if o.Center != "copy" && o.Center != "zero" {
		return fmt.Errorf("invalid --center %q", o.Center)
	}
	if o.Output != "text" && o.Output != "json" {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Verbose && o.Quiet {
		return errors.New("--verbose conflicts with --quiet")
	}
	return nil
}
