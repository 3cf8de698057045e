// internal/output/json.go
package output

import (
	"io"

	"ringrot/internal/grid"
	"ringrot/internal/jsonutil"
	"ringrot/pkg/api"
)

// Result is a finished rotation ready for serialization.
type Result struct {
	Rotations int
	Center    string
	Grid      grid.Grid
}

// ToAPIGrid converts a Result to the stable wire schema (v1).
func ToAPIGrid(r Result) api.GridV1 {
	rows := make([][]int, len(r.Grid))
	for i, row := range r.Grid {
		rows[i] = append([]int(nil), row...)
	}
	return api.GridV1{
		Rows:      r.Grid.Rows(),
		Cols:      r.Grid.Cols(),
		Rotations: r.Rotations,
		Center:    r.Center,
		Grid:      rows,
	}
}

// WriteJSON writes a single v1 document; pretty selects indented output.
func WriteJSON(w io.Writer, r Result, pretty bool) error {
	if pretty {
		return jsonutil.EncodePretty(w, ToAPIGrid(r))
	}
	return jsonutil.Encode(w, ToAPIGrid(r))
}
