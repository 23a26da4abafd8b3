package formula

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// Source is a read-only view of a grid.
type Source interface {
	Cell(id string) (models.Cell, bool)
}

// Evaluator evaluates parsed formulas against a Source. The zero value
// keeps the sheet's historical behavior: single-letter column ranges and
// "NaN" for the average of an empty range.
type Evaluator struct {
	// MultiLetterColumns walks range columns as base-26 numbers (A..XFD).
	MultiLetterColumns bool
	// EmptyAverageAsError fails AVG over an empty range instead of rendering NaN.
	EmptyAverageAsError bool
}

// Evaluate parses text and evaluates it.
func (e Evaluator) Evaluate(text string, src Source) Result {
	return e.Eval(Parse(text), src)
}

// Eval evaluates x. It never panics on malformed input; every failure is
// reported through the Result.
func (e Evaluator) Eval(x Expr, src Source) Result {
	if src == nil {
		src = models.Grid(nil)
	}

	switch x := x.(type) {
	case Literal:
		return Value(x.Text)

	case Sum:
		vals, err := e.values(x.Range, src)
		if err != nil {
			return Fail(x.String(), err)
		}
		return Value(FormatNumber(sum(vals)))

	case Avg:
		vals, err := e.values(x.Range, src)
		if err != nil {
			return Fail(x.String(), err)
		}
		if len(vals) == 0 && e.EmptyAverageAsError {
			return Fail(x.String(), ErrEmptyAverage)
		}
		// 0/0 is NaN for an empty range
		return Value(FormatFixed2(sum(vals) / float64(len(vals))))

	case Subtract:
		return Value(FormatNumber(Resolve(src, x.Left) - Resolve(src, x.Right)))

	case Unrecognized:
		return Fail(x.Text, ErrUnsupported)
	}
	return Fail("", ErrUnsupported)
}

func (e Evaluator) values(r Range, src Source) ([]float64, error) {
	ids, err := r.Cells(e.MultiLetterColumns)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, 0, len(ids))
	for _, id := range ids {
		vals = append(vals, Resolve(src, id))
	}
	return vals, nil
}

// Resolve returns the numeric value of the cell id: its display text parsed
// as a number, or 0 when the cell is absent or not numeric.
func Resolve(src Source, id string) float64 {
	c, ok := src.Cell(id)
	if !ok {
		return 0
	}
	v, ok := ParseNumber(c.Display())
	if !ok {
		return 0
	}
	return v
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
