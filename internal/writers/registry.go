// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ringrot/internal/output"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Pretty bool
}

// WriteFunc serializes one result.
type WriteFunc func(w io.Writer, r output.Result, o Options) error

// Writer registry (format → handler). Last registration wins.
var gridWriters = map[string]WriteFunc{}

func Register(format string, fn WriteFunc) { gridWriters[format] = fn }

func init() {
	Register("text", func(w io.Writer, r output.Result, _ Options) error {
		return output.WriteText(w, r.Grid)
	})
	Register("json", func(w io.Writer, r output.Result, o Options) error {
		return output.WriteJSON(w, r, o.Pretty)
	})
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(gridWriters))
	for k := range gridWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, r output.Result, o Options) error {
	fn, ok := gridWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}
