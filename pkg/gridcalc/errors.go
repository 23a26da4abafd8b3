package gridcalc

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a grid snapshot nor an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid grid format")

// ErrInvalidCell indicates an identifier that is not a cell name such as "B7".
var ErrInvalidCell = errors.New("invalid cell identifier")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadError represents an error while reading or writing a grid file.
type LoadError struct {
	Path  string
	Sheet string // empty for snapshot files
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("grid file %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("grid file %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}

// ModeError reports an unknown evaluation mode name.
type ModeError struct {
	Name string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid mode: %s (must be %s or %s)", e.Name, ModeCompat, ModeExtended)
}
