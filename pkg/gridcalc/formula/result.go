package formula

import (
	"errors"
	"fmt"
)

// ErrorToken is the default rendering of a formula that could not be evaluated.
const ErrorToken = "#ERRO!"

var (
	// ErrUnsupported indicates a formula that matches no supported shape.
	ErrUnsupported = errors.New("unsupported formula")
	// ErrEmptyAverage indicates AVG over a range without values.
	ErrEmptyAverage = errors.New("average of empty range")
)

// EvalError describes why a formula could not be evaluated.
type EvalError struct {
	Formula string
	Err     error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate %q: %v", e.Formula, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Result is the outcome of evaluating a formula: either a display value or
// an *EvalError. The zero Result is the empty display value.
type Result struct {
	text string
	err  *EvalError
}

// Value returns a successful result.
func Value(text string) Result {
	return Result{text: text}
}

// Fail returns a failed result for formula.
func Fail(formula string, err error) Result {
	return Result{err: &EvalError{Formula: formula, Err: err}}
}

// OK reports whether evaluation produced a value.
func (r Result) OK() bool {
	return r.err == nil
}

// Text returns the display value and whether there is one.
func (r Result) Text() (string, bool) {
	return r.text, r.err == nil
}

// Err returns the evaluation error, or nil.
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Render returns the display value, or token when evaluation failed.
func (r Result) Render(token string) string {
	if r.err != nil {
		return token
	}
	return r.text
}

// String renders the result with ErrorToken.
func (r Result) String() string {
	return r.Render(ErrorToken)
}
