// Package models defines the grid data structures shared by the evaluator,
// the recalculation helpers and the file formats.
package models

// Cell is a single grid entry as held by the caller.
type Cell struct {
	// Value is the raw text entered by the user.
	Value string `json:"value" yaml:"value"`
	// Formula is the text as typed; it is a formula only when it starts with "=".
	Formula string `json:"formula" yaml:"formula"`
	// ComputedValue is the last evaluated display string.
	ComputedValue string `json:"computedValue,omitempty" yaml:"computedValue,omitempty"`
	// Style carries presentation attributes and is ignored by evaluation.
	Style map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Display returns the text a referencing formula or a renderer sees:
// the computed value, or the raw value when nothing was computed.
func (c Cell) Display() string {
	if c.ComputedValue != "" {
		return c.ComputedValue
	}
	return c.Value
}

// Input returns the text that should be evaluated for this cell.
func (c Cell) Input() string {
	if c.Formula != "" {
		return c.Formula
	}
	return c.Value
}

// Grid maps cell identifiers such as "A1" or "AB12" to cells.
// It is sparse: identifiers without an entry are empty cells.
type Grid map[string]Cell

// Cell looks up a cell by identifier.
func (g Grid) Cell(id string) (Cell, bool) {
	c, ok := g[id]
	return c, ok
}

// Clone returns a copy of the grid that can be modified without affecting g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for id, c := range g {
		if c.Style != nil {
			style := make(map[string]string, len(c.Style))
			for k, v := range c.Style {
				style[k] = v
			}
			c.Style = style
		}
		out[id] = c
	}
	return out
}
