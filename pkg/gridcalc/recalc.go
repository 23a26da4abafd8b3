package gridcalc

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// Report summarizes a recalculation.
type Report struct {
	// Passes is the number of passes run.
	Passes int
	// Settled reports whether the last pass changed no computed value.
	Settled bool
	// Errors maps cell identifiers to the evaluation error of the last pass.
	Errors map[string]error
}

// Recalculate returns a copy of grid in which every cell's computed value is
// re-evaluated from its input (formula, or value when there is no formula).
//
// Cells are visited in Order, and each one is evaluated against the grid as
// already updated by the cells before it. Passes repeat until nothing
// changes or opts.Passes() is reached; circular references never settle.
func Recalculate(grid models.Grid, opts Options) (models.Grid, Report) {
	log := opts.logger()
	ev := opts.Evaluator()
	token := opts.Token()
	order := Order(grid)

	current := grid.Clone()
	var report Report
	for pass := 1; pass <= opts.Passes(); pass++ {
		changed := 0
		errs := make(map[string]error)
		for _, id := range order {
			c := current[id]
			res := ev.Evaluate(c.Input(), current)
			if err := res.Err(); err != nil {
				errs[id] = err
			}
			text := res.Render(token)
			if text != c.ComputedValue {
				changed++
				c.ComputedValue = text
				current[id] = c
			}
		}

		report.Passes = pass
		report.Errors = errs
		log.Debug("Recalculation pass",
			zap.Int("pass", pass),
			zap.Int("cells", len(order)),
			zap.Int("changed", changed),
			zap.Int("errors", len(errs)))
		if changed == 0 {
			report.Settled = true
			break
		}
	}

	if !report.Settled {
		log.Warn("Grid did not settle, check for circular references",
			zap.Int("passes", report.Passes))
	}
	for id, err := range report.Errors {
		log.Debug("Cell evaluation failed", zap.String("cell", id), zap.Error(err))
	}
	return current, report
}

// Edit stores text as both the value and the formula of cell id in a copy of
// grid and recalculates it. This is the flow of a single user edit.
func Edit(grid models.Grid, id, text string, opts Options) (models.Grid, Report, error) {
	col, row, err := excelize.CellNameToCoordinates(id)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w: %q", ErrInvalidCell, id)
	}
	if name, _ := excelize.CoordinatesToCellName(col, row); name != id {
		return nil, Report{}, fmt.Errorf("%w: %q (expected %q)", ErrInvalidCell, id, name)
	}

	next := grid.Clone()
	c := next[id]
	c.Value = text
	c.Formula = text
	next[id] = c

	out, report := Recalculate(next, opts)
	return out, report, nil
}

// Order returns the identifiers of grid in row-major order: by row, then by
// column number. Identifiers that are not cell names come last, sorted
// lexically.
func Order(grid models.Grid) []string {
	type key struct {
		id       string
		col, row int
		valid    bool
	}

	keys := make([]key, 0, len(grid))
	for id := range grid {
		col, row, err := excelize.CellNameToCoordinates(id)
		keys = append(keys, key{id: id, col: col, row: row, valid: err == nil})
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return a.id < b.id
		}
		if a.row != b.row {
			return a.row < b.row
		}
		if a.col != b.col {
			return a.col < b.col
		}
		return a.id < b.id
	})

	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.id
	}
	return ids
}
