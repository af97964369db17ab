package fundcurate

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook holds none of the allow-listed sheets.
// Curation still succeeds; the condition is recorded as a report note.
var ErrNoSheets = errors.New("no expected sheet found")

// CurationError represents an error while curating one source sheet.
type CurationError struct {
	SheetName string
	Component string // "read", "clone"
	Err       error
}

func (e *CurationError) Error() string {
	return fmt.Sprintf("curation error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *CurationError) Unwrap() error {
	return e.Err
}

// NewCurationError creates a new CurationError.
func NewCurationError(sheetName, component string, err error) *CurationError {
	return &CurationError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
