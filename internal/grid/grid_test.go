package grid

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	g := New(2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				t.Fatalf("expected zero-filled grid, got %v", g)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    Grid
		want error
	}{
		{"nil", nil, ErrInvalidInput},
		{"no columns", Grid{{}}, ErrInvalidInput},
		{"ragged", Grid{{1, 2}, {3}}, ErrDimensionMismatch},
		{"ok", Grid{{1, 2}, {3, 4}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	c := g.Clone()
	c.Set(Coord{Row: 0, Col: 0}, 9)
	if g.At(Coord{Row: 0, Col: 0}) != 1 {
		t.Fatal("Clone shares row storage with the source")
	}
	if g.Equal(c) {
		t.Fatal("grids should differ after mutation")
	}
}
