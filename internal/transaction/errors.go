package transaction

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// SchemaError reports required source columns that are absent from an export.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DataIntegrityError reports an identity-critical field left empty after cleaning.
// Row is the 1-based line number in the source file.
type DataIntegrityError struct {
	Row   int
	Field string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("row %d: %s must not be empty", e.Row, e.Field)
}

// UnsupportedFormatError is returned for files no importer can read.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported file format: missing extension"
	}

	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}
