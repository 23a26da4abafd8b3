// Package formula parses and evaluates the grid formula dialect:
// SUM and AVG over a range, and subtraction of two cell references.
package formula

import (
	"regexp"
	"strings"
	"unicode"
)

// Expr is a parsed formula. It is one of Literal, Sum, Avg, Subtract or
// Unrecognized.
type Expr interface {
	expr()
}

// Literal is input that is not a formula. It evaluates to its own text.
type Literal struct {
	Text string
}

// Sum adds every value in a range.
type Sum struct {
	Range Range
}

// Avg averages every value in a range.
type Avg struct {
	Range Range
}

// Subtract computes Left minus Right for two single cell references.
type Subtract struct {
	Left  string
	Right string
}

// Unrecognized is a formula that matches none of the supported shapes.
type Unrecognized struct {
	Text string
}

func (Literal) expr()      {}
func (Sum) expr()          {}
func (Avg) expr()          {}
func (Subtract) expr()     {}
func (Unrecognized) expr() {}

func (l Literal) String() string      { return l.Text }
func (s Sum) String() string          { return "=SUM(" + s.Range.String() + ")" }
func (a Avg) String() string          { return "=AVG(" + a.Range.String() + ")" }
func (s Subtract) String() string     { return "=" + s.Left + "-" + s.Right }
func (u Unrecognized) String() string { return u.Text }

var subtractPattern = regexp.MustCompile(`^=([A-Z]+[0-9]+)-([A-Z]+[0-9]+)$`)

// Parse classifies text. Text not starting with "=" is a Literal and is kept
// verbatim. Formulas are uppercased and stripped of all whitespace before
// the shapes are tried in order: SUM, AVG, subtraction.
func Parse(text string) Expr {
	if !strings.HasPrefix(text, "=") {
		return Literal{Text: text}
	}

	norm := Normalize(text)
	switch {
	case strings.HasPrefix(norm, "=SUM("):
		return Sum{Range: ParseRange(argument(norm))}
	case strings.HasPrefix(norm, "=AVG("):
		return Avg{Range: ParseRange(argument(norm))}
	}

	if m := subtractPattern.FindStringSubmatch(norm); m != nil {
		return Subtract{Left: m[1], Right: m[2]}
	}
	return Unrecognized{Text: norm}
}

// Normalize uppercases a formula and removes every whitespace character.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if isFormulaSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(text))
}

// isFormulaSpace reports whether r is whitespace inside a formula: the
// Unicode White_Space set plus the byte order mark, without NEL (U+0085).
func isFormulaSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\ufeff'
}

// argument returns the text between the first "(" and the first ")" after it.
// Nested parentheses are not balanced; a missing ")" yields "".
func argument(norm string) string {
	open := strings.IndexByte(norm, '(')
	if open < 0 {
		return ""
	}
	rest := norm[open+1:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
