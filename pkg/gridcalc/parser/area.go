package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// ParseArea parses a range string like A1:D10 or $A$1:$D$10 to an Area.
// A single cell name gives a one-cell area. Reversed bounds are normalized.
func ParseArea(rangeStr string) (models.Area, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, fmt.Errorf("invalid area %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, err
	}

	return models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// FormatArea renders an area in A1:D10 notation.
func FormatArea(area models.Area) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// UsedArea finds the bounding box of the cells in grid whose identifiers
// are valid cell names. ok is false when there are none.
func UsedArea(grid models.Grid) (area models.Area, ok bool) {
	for cellName := range grid {
		col, row, err := excelize.CellNameToCoordinates(cellName)
		if err != nil {
			continue
		}
		if !ok {
			area = models.Area{R1: row, C1: col, R2: row, C2: col}
			ok = true
			continue
		}
		area.R1 = min(area.R1, row)
		area.C1 = min(area.C1, col)
		area.R2 = max(area.R2, row)
		area.C2 = max(area.C2, col)
	}
	return area, ok
}
