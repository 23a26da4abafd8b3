package formula

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrBadReference indicates a range that cannot be walked, such as one
// covering more than MaxRangeCells cells or a column past XFD.
var ErrBadReference = errors.New("bad cell reference")

var (
	columnPattern = regexp.MustCompile(`[A-Z]+`)
	rowPattern    = regexp.MustCompile(`[0-9]+`)
)

// Range is the argument of SUM or AVG, split at its first colon.
// An empty End means the argument is the single reference Start.
type Range struct {
	Start string
	End   string
}

// ParseRange splits s at ":". Anything after a second colon is ignored.
func ParseRange(s string) Range {
	parts := strings.Split(s, ":")
	r := Range{Start: parts[0]}
	if len(parts) > 1 {
		r.End = parts[1]
	}
	return r
}

// Single reports whether the range is a single reference.
func (r Range) Single() bool {
	return r.End == ""
}

func (r Range) String() string {
	if r.Single() {
		return r.Start
	}
	return r.Start + ":" + r.End
}

// SplitRef returns the first run of uppercase letters and the first run of
// digits in ref. ok is false when either is missing.
func SplitRef(ref string) (col, row string, ok bool) {
	col = columnPattern.FindString(ref)
	row = rowPattern.FindString(ref)
	return col, row, col != "" && row != ""
}

// MaxRangeCells bounds the number of identifiers a single range may expand to.
const MaxRangeCells = 1 << 24

// Cells lists the identifiers covered by the range, column-major: the outer
// loop walks columns, the inner loop rows. A single reference is returned as
// is. Bounds that do not decompose, or that are reversed, give no cells.
// Rows are not limited to the worksheet size, but a range covering more
// than MaxRangeCells cells fails with ErrBadReference.
//
// Without multiLetter only the first letter of each column bound is used,
// so columns are limited to A..Z and "AA1:AA5" walks A1..A5. With
// multiLetter columns are walked as base-26 numbers up to XFD.
func (r Range) Cells(multiLetter bool) ([]string, error) {
	if r.Single() {
		return []string{r.Start}, nil
	}

	startCol, startRowText, ok1 := SplitRef(r.Start)
	endCol, endRowText, ok2 := SplitRef(r.End)
	if !ok1 || !ok2 {
		return nil, nil
	}

	startRow, endRow := parseRow(startRowText), parseRow(endRowText)
	if endRow < startRow {
		return nil, nil
	}

	if !multiLetter {
		first, last := int(startCol[0]), int(endCol[0])
		if last < first {
			return nil, nil
		}
		if err := checkSize(r, last-first+1, endRow-startRow); err != nil {
			return nil, err
		}
		ids := make([]string, 0, (last-first+1)*(endRow-startRow+1))
		for c := first; c <= last; c++ {
			for i := 0; i <= endRow-startRow; i++ {
				ids = append(ids, string(rune(c))+strconv.Itoa(startRow+i))
			}
		}
		return ids, nil
	}

	first, err := excelize.ColumnNameToNumber(startCol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReference, err)
	}
	last, err := excelize.ColumnNameToNumber(endCol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReference, err)
	}
	if last < first {
		return nil, nil
	}
	if err := checkSize(r, last-first+1, endRow-startRow); err != nil {
		return nil, err
	}

	ids := make([]string, 0, (last-first+1)*(endRow-startRow+1))
	for c := first; c <= last; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadReference, err)
		}
		for i := 0; i <= endRow-startRow; i++ {
			ids = append(ids, name+strconv.Itoa(startRow+i))
		}
	}
	return ids, nil
}

// parseRow converts the digits of a range bound, saturating on overflow.
func parseRow(digits string) int {
	row, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return row
}

// checkSize rejects a walk of cols columns by span+1 rows that exceeds
// MaxRangeCells.
func checkSize(r Range, cols, span int) error {
	if span >= MaxRangeCells || cols*(span+1) > MaxRangeCells {
		return fmt.Errorf("%w: range %s covers more than %d cells", ErrBadReference, r, MaxRangeCells)
	}
	return nil
}
