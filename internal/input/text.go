package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ringrot/internal/grid"
)

// ParseText reads "M N R" followed by M rows of N integers. Blank lines
// are skipped; anything else that does not fit the header is an error.
func ParseText(r io.Reader) (Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		p      Problem
		header bool
		row    int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !header {
			if len(fields) != 3 {
				return Problem{}, fmt.Errorf("%w: line %d: header needs 3 integers (M N R), got %d fields",
					grid.ErrInvalidInput, lineNo, len(fields))
			}
			vals, err := atoiAll(fields, lineNo)
			if err != nil {
				return Problem{}, err
			}
			p.Rows, p.Cols, p.Rotations = vals[0], vals[1], vals[2]
			if err := checkHeader(p.Rows, p.Cols, p.Rotations); err != nil {
				return Problem{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			// the header is untrusted; let append grow past the first rows
			p.Grid = make(grid.Grid, 0, min(p.Rows, 1024))
			header = true
			continue
		}
		if row == p.Rows {
			return Problem{}, fmt.Errorf("%w: line %d: more than %d rows", grid.ErrDimensionMismatch, lineNo, p.Rows)
		}
		if len(fields) != p.Cols {
			return Problem{}, fmt.Errorf("%w: line %d: row %d has %d values, want %d",
				grid.ErrDimensionMismatch, lineNo, row, len(fields), p.Cols)
		}
		vals, err := atoiAll(fields, lineNo)
		if err != nil {
			return Problem{}, err
		}
		p.Grid = append(p.Grid, vals)
		row++
	}
	if err := sc.Err(); err != nil {
		return Problem{}, err
	}
	if !header {
		return Problem{}, fmt.Errorf("%w: missing header line", grid.ErrInvalidInput)
	}
	if row != p.Rows {
		return Problem{}, fmt.Errorf("%w: got %d rows, want %d", grid.ErrDimensionMismatch, row, p.Rows)
	}
	return p, nil
}

func atoiAll(fields []string, lineNo int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer", grid.ErrInvalidInput, lineNo, f)
		}
		out[i] = v
	}
	return out, nil
}
