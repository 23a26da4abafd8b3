package parser

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ReadSnapshot decodes a grid snapshot: a mapping of cell identifier to
// {value, formula, computedValue, style}. JSON snapshots decode as well,
// since JSON is a subset of YAML. An empty document gives an empty grid.
func ReadSnapshot(r io.Reader) (models.Grid, error) {
	grid := make(models.Grid)
	if err := yaml.NewDecoder(r).Decode(&grid); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if grid == nil {
		// a "null" document
		grid = make(models.Grid)
	}
	return grid, nil
}

// WriteSnapshot encodes grid as YAML.
func WriteSnapshot(w io.Writer, grid models.Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(grid); err != nil {
		return err
	}
	return enc.Close()
}
