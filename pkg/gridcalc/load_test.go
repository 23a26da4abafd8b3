package gridcalc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		ok       bool
	}{
		{"grid.yaml", FormatYAML, true},
		{"grid.YML", FormatYAML, true},
		{"dir/grid.json", FormatJSON, true},
		{"estoque.xlsx", FormatXLSX, true},
		{"grid.csv", "", false},
		{"grid", "", false},
	}

	for _, tt := range tests {
		format, ok := FormatOf(tt.path)
		if format != tt.expected || ok != tt.ok {
			t.Errorf("FormatOf(%q) = (%q, %v), expected (%q, %v)", tt.path, format, ok, tt.expected, tt.ok)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("- not\n- a grid\n"), 0644); err != nil {
		t.Fatal(err)
	}
	notWorkbook := filepath.Join(dir, "fake.xlsx")
	if err := os.WriteFile(notWorkbook, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		err  error
	}{
		{"unknown extension", filepath.Join(dir, "grid.csv"), ErrInvalidFormat},
		{"missing file", filepath.Join(dir, "missing.yaml"), ErrFileNotFound},
		{"undecodable snapshot", broken, ErrInvalidFormat},
		{"not a workbook", notWorkbook, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, "")
			if !errors.Is(err, tt.err) {
				t.Errorf("Load(%q) error = %v, expected %v", tt.path, err, tt.err)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) || loadErr.Path != tt.path {
				t.Errorf("Load(%q) error %v is not a LoadError for the path", tt.path, err)
			}
		})
	}
}

func TestSaveLoadSnapshots(t *testing.T) {
	grid := models.Grid{
		"A1": {Value: "50", Formula: "50", ComputedValue: "50"},
		"A2": {Value: "=SUM(A1:A1)", Formula: "=SUM(A1:A1)", ComputedValue: "50", Style: map[string]string{"color": "green"}},
	}

	for _, name := range []string{"grid.yaml", "grid.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, "", grid); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Load(path, "")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(grid, loaded); diff != "" {
				t.Errorf("round trip mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestSaveLoadWorkbook(t *testing.T) {
	grid := models.Grid{
		"A1": {Value: "Placa", Formula: "Placa"},
		"B1": {Value: "50", Formula: "50", ComputedValue: "50"},
		"C1": {Value: "=B1-B2", Formula: "=B1-B2", ComputedValue: "5"},
	}

	path := filepath.Join(t.TempDir(), "estoque.xlsx")
	if err := Save(path, "Estoque", grid); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expected := models.Grid{
		"A1": {Value: "Placa", Formula: "Placa"},
		"B1": {Value: "50", Formula: "50"},
		"C1": {Value: "5", Formula: "5"},
	}
	if diff := cmp.Diff(expected, loaded); diff != "" {
		t.Errorf("workbook round trip mismatch (-expected +got):\n%s", diff)
	}

	if _, err := Load(path, "Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Load with missing sheet error = %v, expected ErrSheetNotFound", err)
	}
}

func TestLoadWorkbookFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 10)
	f.SetCellValue("Sheet1", "A2", 4)
	f.SetCellValue("Sheet1", "A3", 6)
	f.SetCellFormula("Sheet1", "A3", "A1-A2")

	path := filepath.Join(t.TempDir(), "formulas.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	grid, err := Load(path, "Sheet1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := grid["A3"].Formula; got != "=A1-A2" {
		t.Errorf("A3 formula = %q, expected =A1-A2", got)
	}

	out, _ := Recalculate(grid, DefaultOptions())
	if got := out["A3"].ComputedValue; got != "6" {
		t.Errorf("A3 = %q after recalculation, expected 6", got)
	}
}
