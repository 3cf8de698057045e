package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ringrot/internal/grid"
	"ringrot/pkg/api"
)

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, grid.Grid{{2, 3, 6}, {1, 5, 9}, {4, 7, -8}}); err != nil {
		t.Fatal(err)
	}
	want := "2 3 6\n1 5 9\n4 7 -8\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var b bytes.Buffer
		res := Result{Rotations: 2, Center: "copy", Grid: grid.Grid{{3, 4, 5, 1, 2}}}
		if err := WriteJSON(&b, res, pretty); err != nil {
			t.Fatal(err)
		}
		if lines := strings.Count(b.String(), "\n"); pretty != (lines > 1) {
			t.Fatalf("pretty=%v but got %d lines", pretty, lines)
		}
		var got api.GridV1
		if err := json.Unmarshal(b.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Rows != 1 || got.Cols != 5 || got.Rotations != 2 || got.Center != "copy" {
			t.Fatalf("unexpected header fields: %+v", got)
		}
		if !grid.Grid(got.Grid).Equal(res.Grid) {
			t.Fatalf("grid = %v, want %v", got.Grid, res.Grid)
		}
	}
}

func TestToAPIGridCopiesRows(t *testing.T) {
	g := grid.Grid{{1, 2}}
	v := ToAPIGrid(Result{Grid: g})
	v.Grid[0][0] = 42
	if g[0][0] != 1 {
		t.Fatal("ToAPIGrid aliases the domain grid")
	}
}
