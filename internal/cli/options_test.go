package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"ringrot/internal/config"
)

func parse(t *testing.T, argv ...string) (Options, *pflag.FlagSet) {
	t.Helper()
	fs := pflag.NewFlagSet("ringrot", pflag.ContinueOnError)
	var o Options
	Bind(fs, &o)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("parse %v: %v", argv, err)
	}
	return o, fs
}

func TestDefaults(t *testing.T) {
	o, _ := parse(t)
	if err := o.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if o.Rotations != -1 || o.Output != "text" || o.Center != "copy" || o.InputFormat != "auto" {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestApplyConfigRespectsExplicitFlags(t *testing.T) {
	o, fs := parse(t, "--output", "text", "-w", "2")
	c := config.Default()
	c.Output = "json"
	c.Workers = 8
	c.Center = "zero"
	c.Pretty = true
	o.ApplyConfig(fs, c)

	if o.Output != "text" || o.Workers != 2 {
		t.Fatalf("explicit flags overridden by config: %+v", o)
	}
	if o.Center != "zero" || !o.Pretty {
		t.Fatalf("config not applied to unset flags: %+v", o)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		argv []string
		msg  string
	}{
		{[]string{"--rotations", "-2"}, "--rotations"},
		{[]string{"--workers", "-1"}, "--workers"},
		{[]string{"--input-format", "csv"}, "--input-format"},
		{[]string{"--center", "mirror"}, "--center"},
		{[]string{"-o", "xml"}, "--output"},
		{[]string{"--verbose", "-q"}, "conflicts"},
	}
	for _, tc := range cases {
		o, _ := parse(t, tc.argv...)
		err := o.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: want error mentioning %q, got %v", tc.argv, tc.msg, err)
		}
	}
}
