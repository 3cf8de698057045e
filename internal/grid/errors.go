package grid

import "errors"

var (
	// ErrInvalidInput marks non-positive dimensions, negative rotation
	// counts and ring requests outside the grid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch marks a row whose length differs from the
	// declared column count.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
