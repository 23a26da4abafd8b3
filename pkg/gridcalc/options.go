// Package gridcalc evaluates sheet formulas over a sparse grid and provides
// the recalculation and file helpers built around the evaluator.
package gridcalc

import (
	"go.uber.org/zap"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
)

// Mode represents the evaluation mode.
type Mode string

const (
	// ModeCompat reproduces the sheet's historical behavior, quirks included.
	ModeCompat Mode = "compat"
	// ModeExtended walks multi-letter column ranges and reports an empty AVG as an error.
	ModeExtended Mode = "extended"
)

// DefaultMaxPasses bounds Recalculate when Options.MaxPasses is not set.
const DefaultMaxPasses = 8

// Options configures evaluation and recalculation.
type Options struct {
	// Mode specifies the evaluation mode (compat, extended).
	Mode Mode
	// MultiLetterColumns specifies whether ranges walk columns past Z.
	// If nil, defaults to true for extended mode, false otherwise.
	MultiLetterColumns *bool
	// EmptyAverageAsError specifies whether AVG over an empty range fails.
	// If nil, defaults to true for extended mode, false otherwise.
	EmptyAverageAsError *bool
	// ErrorToken is the display string of a failed evaluation.
	// If empty, defaults to "#ERRO!".
	ErrorToken string
	// MaxPasses bounds the number of recalculation passes.
	// If zero or negative, defaults to DefaultMaxPasses.
	MaxPasses int
	// Logger receives recalculation diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default evaluation options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeCompat,
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeCompat, ModeExtended:
		return Mode(name), nil
	}
	return "", &ModeError{Name: name}
}

// ShouldWalkMultiLetterColumns returns whether ranges walk columns past Z.
func (o Options) ShouldWalkMultiLetterColumns() bool {
	if o.MultiLetterColumns != nil {
		return *o.MultiLetterColumns
	}
	return o.Mode == ModeExtended
}

// ShouldFailEmptyAverage returns whether AVG over an empty range fails.
func (o Options) ShouldFailEmptyAverage() bool {
	if o.EmptyAverageAsError != nil {
		return *o.EmptyAverageAsError
	}
	return o.Mode == ModeExtended
}

// Token returns the display string of a failed evaluation.
func (o Options) Token() string {
	if o.ErrorToken != "" {
		return o.ErrorToken
	}
	return formula.ErrorToken
}

// Passes returns the recalculation pass limit.
func (o Options) Passes() int {
	if o.MaxPasses > 0 {
		return o.MaxPasses
	}
	return DefaultMaxPasses
}

// Evaluator returns the formula evaluator configured by o.
func (o Options) Evaluator() formula.Evaluator {
	return formula.Evaluator{
		MultiLetterColumns:  o.ShouldWalkMultiLetterColumns(),
		EmptyAverageAsError: o.ShouldFailEmptyAverage(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
