package input

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ringrot/internal/grid"
)

//go:embed schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func inputSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("ringrot://input.schema.json", schemaSource)
	})
	return schema, schemaErr
}

type document struct {
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Rotations int     `json:"rotations"`
	Grid      [][]int `json:"grid"`
}

// ParseJSON reads a {"rows","cols","rotations","grid"} document. The shape is
// checked against the embedded schema before the declared dimensions are
// compared with the grid itself.
func ParseJSON(r io.Reader) (Problem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Problem{}, err
	}
	s, err := inputSchema()
	if err != nil {
		return Problem{}, fmt.Errorf("compile input schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return Problem{}, fmt.Errorf("%w: %v", grid.ErrInvalidInput, err)
	}
	if err := s.Validate(generic); err != nil {
		return Problem{}, fmt.Errorf("%w: %v", grid.ErrInvalidInput, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Problem{}, fmt.Errorf("%w: %v", grid.ErrInvalidInput, err)
	}
	if err := checkHeader(doc.Rows, doc.Cols, doc.Rotations); err != nil {
		return Problem{}, err
	}
	if len(doc.Grid) != doc.Rows {
		return Problem{}, fmt.Errorf("%w: grid has %d rows, want %d", grid.ErrDimensionMismatch, len(doc.Grid), doc.Rows)
	}
	for i, row := range doc.Grid {
		if len(row) != doc.Cols {
			return Problem{}, fmt.Errorf("%w: row %d has %d values, want %d", grid.ErrDimensionMismatch, i, len(row), doc.Cols)
		}
	}
	return Problem{Rows: doc.Rows, Cols: doc.Cols, Rotations: doc.Rotations, Grid: grid.Grid(doc.Grid)}, nil
}
