// internal/grid/grid.go
package grid

import (
	"fmt"
	"slices"
)

// Grid is a dense row-major matrix of integers.
type Grid [][]int

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// New returns a zero-filled rows×cols grid.
func New(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the width of the first row (0 for an empty grid).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate reports whether g is a non-empty rectangle.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrInvalidInput)
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: grid has no columns", ErrInvalidInput)
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(row), cols)
		}
	}
	return nil
}

func (g Grid) Clone() Grid {
	y := make(Grid, len(g))
	for i := range g {
		y[i] = slices.Clone(g[i])
	}
	return y
}

func (g Grid) At(c Coord) int { return g[c.Row][c.Col] }

func (g Grid) Set(c Coord, v int) { g[c.Row][c.Col] = v }

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	return slices.EqualFunc(g, other, func(a, b []int) bool { return slices.Equal(a, b) })
}
