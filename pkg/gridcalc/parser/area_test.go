package parser

import (
	"testing"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Area
		wantErr  bool
	}{
		{"A1:D10", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$C$3", models.Area{R1: 2, C1: 2, R2: 3, C2: 3}, false},
		{"D10:A1", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"AA5", models.Area{R1: 5, C1: 27, R2: 5, C2: 27}, false},
		{"A1:B2:C3", models.Area{}, true},
		{"A:B", models.Area{}, true},
		{"", models.Area{}, true},
	}

	for _, tt := range tests {
		result, err := ParseArea(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArea(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseArea(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestFormatArea(t *testing.T) {
	result, err := FormatArea(models.Area{R1: 2, C1: 1, R2: 12, C2: 28})
	if err != nil {
		t.Fatalf("FormatArea failed: %v", err)
	}
	if result != "A2:AB12" {
		t.Errorf("FormatArea = %q, expected %q", result, "A2:AB12")
	}

	if _, err := FormatArea(models.Area{}); err == nil {
		t.Errorf("Expected error for zero area")
	}
}

func TestUsedArea(t *testing.T) {
	grid := models.Grid{
		"B3":    {Value: "1"},
		"D2":    {Value: "2"},
		"C7":    {Value: "3"},
		"notes": {Value: "ignored"},
	}

	area, ok := UsedArea(grid)
	if !ok {
		t.Fatalf("UsedArea reported no cells")
	}
	expected := models.Area{R1: 2, C1: 2, R2: 7, C2: 4}
	if area != expected {
		t.Errorf("UsedArea = %+v, expected %+v", area, expected)
	}

	if _, ok := UsedArea(models.Grid{"x": {}}); ok {
		t.Errorf("UsedArea should report no cells for invalid identifiers")
	}
}
