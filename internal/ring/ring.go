// internal/ring/ring.go
package ring

import (
	"fmt"

	"ringrot/internal/grid"
)

// Levels returns how many concentric rings a rows×cols grid has.
// A single row or column is one degenerate ring spanning the whole line.
func Levels(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	m := min(rows, cols)
	if m == 1 {
		return 1
	}
	return m / 2
}

// Length is the number of cells on ring level, without enumerating them.
func Length(rows, cols, level int) int {
	h, w := rows-2*level, cols-2*level
	switch {
	case h <= 0 || w <= 0:
		return 0
	case h == 1:
		return w
	case w == 1:
		return h
	}
	return 2*(h+w) - 4
}

// Coordinates returns the clockwise boundary of ring level, starting at its
// top-left corner (level, level). Corners are emitted once.
func Coordinates(rows, cols, level int) ([]grid.Coord, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", grid.ErrInvalidInput, rows, cols)
	}
	if level < 0 || level >= Levels(rows, cols) {
		return nil, fmt.Errorf("%w: ring level %d outside [0,%d) for %dx%d grid",
			grid.ErrInvalidInput, level, Levels(rows, cols), rows, cols)
	}
	n := Length(rows, cols, level)
	if n == 0 {
		return nil, fmt.Errorf("%w: ring level %d is empty", grid.ErrInvalidInput, level)
	}

	top, left := level, level
	bottom, right := rows-1-level, cols-1-level
	out := make([]grid.Coord, 0, n)

	// top: left to right
	for c := left; c <= right; c++ {
		out = append(out, grid.Coord{Row: top, Col: c})
	}
	// right: below the top corner, down to bottom
	for r := top + 1; r <= bottom; r++ {
		out = append(out, grid.Coord{Row: r, Col: right})
	}
	// bottom: right-1 back to left
	if bottom != top {
		for c := right - 1; c >= left; c-- {
			out = append(out, grid.Coord{Row: bottom, Col: c})
		}
	}
	// left: bottom-1 up to top+1
	if left != right {
		for r := bottom - 1; r > top; r-- {
			out = append(out, grid.Coord{Row: r, Col: left})
		}
	}
	return out, nil
}
