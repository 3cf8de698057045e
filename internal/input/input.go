// internal/input/input.go
package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ringrot/internal/grid"
)

// Input formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Problem is one parsed rotation request.
type Problem struct {
	Rows      int
	Cols      int
	Rotations int
	Grid      grid.Grid
}

// DetectFormat resolves FormatAuto from the file name.
func DetectFormat(path, format string) string {
	if format != "" && format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(trimCompression(path)), ".json") {
		return FormatJSON
	}
	return FormatText
}

// Parse decodes a Problem from r in the given (already resolved) format.
func Parse(r io.Reader, format string) (Problem, error) {
	switch format {
	case FormatText:
		return ParseText(r)
	case FormatJSON:
		return ParseJSON(r)
	}
	return Problem{}, fmt.Errorf("%w: unknown input format %q", grid.ErrInvalidInput, format)
}

// Load opens path (see Open) and parses it.
func Load(path, format string) (Problem, error) {
	rc, err := Open(path)
	if err != nil {
		return Problem{}, err
	}
	defer rc.Close()
	p, err := Parse(rc, DetectFormat(path, format))
	if err != nil {
		if path == "" || path == "-" {
			return Problem{}, fmt.Errorf("stdin: %w", err)
		}
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func checkHeader(rows, cols, rot int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", grid.ErrInvalidInput, rows, cols)
	}
	if rot < 0 {
		return fmt.Errorf("%w: rotation count must be ≥ 0, got %d", grid.ErrInvalidInput, rot)
	}
	return nil
}
