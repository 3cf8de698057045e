// pkg/api/grid_v1.go
package api

// GridV1 is the stable JSON schema for a rotated grid.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GridV1 struct {
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Rotations int     `json:"rotations"`
	Center    string  `json:"center,omitempty"` // "copy" | "zero"
	Grid      [][]int `json:"grid"`
}
