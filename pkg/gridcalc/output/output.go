// Package output serializes and renders grids for the command line.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// ToJSON serializes grid to JSON. Keys are sorted by encoding/json.
func ToJSON(grid models.Grid, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(grid, "", "  ")
	}
	return json.Marshal(grid)
}

// ToYAML serializes grid to YAML in the snapshot layout.
func ToYAML(grid models.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := parser.WriteSnapshot(&buf, grid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
