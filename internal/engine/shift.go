package engine

import (
	"fmt"

	"ringrot/internal/grid"
)

// CyclicShift returns a copy of seq read from offset r mod len(seq),
// wrapping around: out[i] = seq[(i+r) % len(seq)].
func CyclicShift[T any](seq []T, r int) ([]T, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: cannot shift an empty sequence", grid.ErrInvalidInput)
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: negative shift %d", grid.ErrInvalidInput, r)
	}
	start := r % len(seq)
	out := make([]T, 0, len(seq))
	out = append(out, seq[start:]...)
	out = append(out, seq[:start]...)
	return out, nil
}
