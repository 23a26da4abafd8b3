package formula

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
	}{
		{"A1:B2", Range{Start: "A1", End: "B2"}},
		{"A1", Range{Start: "A1"}},
		{"A1:", Range{Start: "A1"}},
		{"", Range{}},
		{"A1:B2:C3", Range{Start: "A1", End: "B2"}},
	}

	for _, tt := range tests {
		result := ParseRange(tt.input)
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestSplitRef(t *testing.T) {
	tests := []struct {
		ref   string
		col   string
		row   string
		valid bool
	}{
		{"A1", "A", "1", true},
		{"AB12", "AB", "12", true},
		{"1A", "A", "1", true},
		{"A", "A", "", false},
		{"12", "", "12", false},
		{"", "", "", false},
		{"$B$7", "B", "7", true},
	}

	for _, tt := range tests {
		col, row, ok := SplitRef(tt.ref)
		if col != tt.col || row != tt.row || ok != tt.valid {
			t.Errorf("SplitRef(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tt.ref, col, row, ok, tt.col, tt.row, tt.valid)
		}
	}
}

func TestRangeCells(t *testing.T) {
	tests := []struct {
		name        string
		rng         Range
		multiLetter bool
		expected    []string
	}{
		{"single reference", Range{Start: "C3"}, false, []string{"C3"}},
		{"single reference kept verbatim", Range{Start: "A01"}, false, []string{"A01"}},
		{"column", Range{Start: "A1", End: "A3"}, false, []string{"A1", "A2", "A3"}},
		{"column-major block", Range{Start: "A1", End: "B2"}, false, []string{"A1", "A2", "B1", "B2"}},
		{"leading zeros in rows", Range{Start: "A01", End: "A02"}, false, []string{"A1", "A2"}},
		{"reversed rows", Range{Start: "A3", End: "A1"}, false, nil},
		{"reversed columns", Range{Start: "C1", End: "A1"}, false, nil},
		{"start without row", Range{Start: "A", End: "A3"}, false, nil},
		{"end without column", Range{Start: "A1", End: "3"}, false, nil},
		// only the first letter of a column counts without multi-letter support
		{"two-letter columns collapse", Range{Start: "AA1", End: "AA3"}, false, []string{"A1", "A2", "A3"}},
		{"two-letter end column", Range{Start: "Y1", End: "AB1"}, false, nil},
		{"multi-letter columns", Range{Start: "AA1", End: "AB2"}, true, []string{"AA1", "AA2", "AB1", "AB2"}},
		{"multi-letter crossing Z", Range{Start: "Z1", End: "AA1"}, true, []string{"Z1", "AA1"}},
		{"rows past the sheet limit", Range{Start: "A2000000", End: "A2000001"}, false, []string{"A2000000", "A2000001"}},
		{"multi-letter rows past the sheet limit", Range{Start: "AA2000000", End: "AA2000001"}, true, []string{"AA2000000", "AA2000001"}},
		{"reversed rows past the sheet limit", Range{Start: "A2000000", End: "A1"}, false, nil},
		{"reversed overflowing row", Range{Start: "A99999999999999999999", End: "A1"}, false, nil},
		{"saturated rows", Range{Start: "B99999999999999999999", End: "B99999999999999999998"}, false, []string{"B9223372036854775807"}},
		{"row zero", Range{Start: "A0", End: "A1"}, true, []string{"A0", "A1"}},
		{"multi-letter reversed columns", Range{Start: "AB1", End: "AA1"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.rng.Cells(tt.multiLetter)
			if err != nil {
				t.Fatalf("Cells() failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Cells() mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestRangeCellsErrors(t *testing.T) {
	tests := []struct {
		name        string
		rng         Range
		multiLetter bool
	}{
		{"row overflow", Range{Start: "A1", End: "A99999999999999999999"}, false},
		{"too many cells", Range{Start: "A1", End: "Z1000000"}, false},
		{"too many multi-letter cells", Range{Start: "A1", End: "AZ1000000"}, true},
		{"column past XFD", Range{Start: "A1", End: "XFE1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rng.Cells(tt.multiLetter)
			if !errors.Is(err, ErrBadReference) {
				t.Errorf("Cells() error = %v, expected ErrBadReference", err)
			}
		})
	}
}
