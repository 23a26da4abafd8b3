// Package parser reads and writes grids: xlsx worksheets through excelize
// and YAML/JSON snapshot files.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ExtractGrid extracts the non-empty cells of a sheet.
// Value holds the cell's cached value; Formula is "=" plus the stored
// formula when the cell has one, otherwise the value. Formula cells without
// a cached value are not reported by GetRows and are skipped.
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid)
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}

			cell := models.Cell{Value: cellValue, Formula: cellValue}
			formulaText, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if formulaText != "" {
				cell.Formula = "=" + strings.TrimPrefix(formulaText, "=")
			}
			grid[cellName] = cell
		}
	}

	return grid, nil
}

// WriteGrid writes the display value of every cell into a sheet, creating
// the sheet when needed. Numeric text is stored as a number.
func WriteGrid(f *excelize.File, sheetName string, grid models.Grid) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	}

	for cellName, cell := range grid {
		if err := f.SetCellValue(sheetName, cellName, parseValue(cell.Display())); err != nil {
			return err
		}
	}
	return nil
}

// parseValue attempts to parse a display string as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Infinity stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "nN") {
		return f
	}
	// Return as string
	return s
}
