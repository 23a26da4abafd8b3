package gridcalc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/parser"
)

// Format identifies a grid file format.
type Format string

const (
	// FormatYAML is a YAML grid snapshot.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON grid snapshot.
	FormatJSON Format = "json"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".xlsx", ".xlsm":
		return FormatXLSX, true
	}
	return "", false
}

// Load reads a grid from a snapshot file or a workbook. For workbooks an
// empty sheet name selects the first sheet.
func Load(path, sheet string) (models.Grid, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, NewLoadError(path, sheet, ErrInvalidFormat)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewLoadError(path, sheet, ErrFileNotFound)
	}

	if format != FormatXLSX {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewLoadError(path, "", err)
		}
		grid, err := parser.ReadSnapshot(bytes.NewReader(data))
		if err != nil {
			return nil, NewLoadError(path, "", errors.Join(ErrInvalidFormat, err))
		}
		return grid, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, sheet, errors.Join(ErrInvalidFormat, err))
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, NewLoadError(path, sheet, ErrSheetNotFound)
	}

	grid, err := parser.ExtractGrid(f, sheet)
	if err != nil {
		return nil, NewLoadError(path, sheet, err)
	}
	return grid, nil
}

// Save writes grid to path in the format implied by its extension.
// Workbooks receive display values only; formulas stay in snapshots.
func Save(path, sheet string, grid models.Grid) error {
	format, ok := FormatOf(path)
	if !ok {
		return NewLoadError(path, sheet, ErrInvalidFormat)
	}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		if err := parser.WriteSnapshot(&buf, grid); err != nil {
			return NewLoadError(path, "", err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return NewLoadError(path, "", err)
		}
		return nil

	case FormatJSON:
		data, err := json.MarshalIndent(grid, "", "  ")
		if err != nil {
			return NewLoadError(path, "", err)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return NewLoadError(path, "", err)
		}
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return NewLoadError(path, sheet, err)
	}
	if err := parser.WriteGrid(f, sheet, grid); err != nil {
		return NewLoadError(path, sheet, err)
	}
	if err := f.SaveAs(path); err != nil {
		return NewLoadError(path, sheet, err)
	}
	return nil
}
