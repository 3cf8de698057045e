// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ringrot/internal/grid"
	"ringrot/internal/ring"
)

// Center controls cells that belong to no ring (the middle strip when
// min(rows, cols) is odd).
type Center string

const (
	CenterCopy Center = "copy" // keep the input value
	CenterZero Center = "zero" // leave the zero from allocation
)

// Config controls a rotation run.
type Config struct {
	Workers int // ring levels processed concurrently; <=1 runs serially
	Center  Center
	Logger  *zap.Logger
}

// Engine rotates grids according to its Config.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// New returns an Engine; a zero Config rotates serially, copies center cells
// and discards logs.
func New(c Config) *Engine {
	if c.Center == "" {
		c.Center = CenterCopy
	}
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: c, log: log}
}

// Rotate returns a new grid in which every ring of in is shifted r positions
// along its clockwise traversal. in is never modified. On error no grid is
// returned.
func (e *Engine) Rotate(ctx context.Context, in grid.Grid, r int) (grid.Grid, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: negative rotation count %d", grid.ErrInvalidInput, r)
	}
	switch e.cfg.Center {
	case CenterCopy, CenterZero:
	default:
		return nil, fmt.Errorf("%w: unknown center policy %q", grid.ErrInvalidInput, e.cfg.Center)
	}

	rows, cols := in.Rows(), in.Cols()
	var out grid.Grid
	if e.cfg.Center == CenterCopy {
		out = in.Clone()
	} else {
		out = grid.New(rows, cols)
	}

	levels := ring.Levels(rows, cols)
	if e.cfg.Workers <= 1 || levels < 2 {
		for lv := 0; lv < levels; lv++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := e.rotateLevel(in, out, lv, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	// Levels write disjoint coordinate sets, so out needs no lock.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for lv := 0; lv < levels; lv++ {
		lv := lv
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.rotateLevel(in, out, lv, r)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) rotateLevel(in, out grid.Grid, level, r int) error {
	coords, err := ring.Coordinates(in.Rows(), in.Cols(), level)
	if err != nil {
		return err
	}
	values := make([]int, len(coords))
	for i, c := range coords {
		values[i] = in.At(c)
	}
	rotated, err := CyclicShift(values, r)
	if err != nil {
		return fmt.Errorf("ring level %d: %w", level, err)
	}
	for i, c := range coords {
		out.Set(c, rotated[i])
	}
	e.log.Debug("ring rotated",
		zap.Int("level", level),
		zap.Int("length", len(coords)),
		zap.Int("shift", r%len(coords)),
	)
	return nil
}
