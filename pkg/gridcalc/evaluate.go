package gridcalc

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// Evaluate evaluates text against grid with the default options.
// Text not starting with "=" is returned unchanged; a formula that cannot be
// evaluated yields "#ERRO!". The grid is only read.
func Evaluate(text string, grid models.Grid) string {
	return EvaluateWith(text, grid, DefaultOptions())
}

// EvaluateWith evaluates text against src and renders the result with opts.
func EvaluateWith(text string, src formula.Source, opts Options) string {
	return EvaluateResult(text, src, opts).Render(opts.Token())
}

// EvaluateResult evaluates text against src and returns the unrendered result.
func EvaluateResult(text string, src formula.Source, opts Options) formula.Result {
	return opts.Evaluator().Evaluate(text, src)
}
