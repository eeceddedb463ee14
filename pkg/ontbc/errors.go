package ontbc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat indicates a cell table file with an unrecognized suffix.
	ErrUnsupportedFormat = errors.New("unsupported cell table format")
	// ErrMissingColumns indicates a cell table without one or more required columns.
	ErrMissingColumns = errors.New("missing cell table columns")
	// ErrInvalidRow indicates a cell table row that cannot be indexed.
	ErrInvalidRow = errors.New("invalid cell table row")
	// ErrDuplicateCell indicates a cell identifier that appears on more than one row.
	ErrDuplicateCell = errors.New("duplicate cell")
	// ErrUnknownCell indicates a cell identifier not present in the cell table.
	ErrUnknownCell = errors.New("unknown cell")
	// ErrMissingSample indicates a cell row without a sample.
	ErrMissingSample = errors.New("missing sample")
	// ErrMissingDefault indicates no row override and no configured default for a field.
	ErrMissingDefault = errors.New("missing default")
	// ErrMalformedTemplate indicates a default FAST5 directory without the {cell} placeholder.
	ErrMalformedTemplate = errors.New("malformed fast5_dir template")
	// ErrMissingSection indicates a configuration section required for resolution is absent.
	ErrMissingSection = errors.New("missing config section")
	// ErrUnknownProfile indicates a profile name not defined in the profile section.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrIncompleteProfile indicates a profile without a required field.
	ErrIncompleteProfile = errors.New("incomplete profile")
)

// FormatError is returned when the cell table suffix is not .tsv, .tsv.gz or .xlsx.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cell table is not a TSV or XLSX: %s", e.Path)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }

// SchemaError is returned when required columns are missing. Missing lists all of them.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing cell table columns: %s (%s)", strings.Join(e.Missing, ", "), e.Path)
}

// Unwrap returns ErrMissingColumns for errors.Is() compatibility.
func (e *SchemaError) Unwrap() error { return ErrMissingColumns }

// RowError is returned for a row that has data but no cell identifier.
type RowError struct {
	Path   string
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid cell table row at %s:%d: %s", e.Path, e.Line, e.Reason)
}

// Unwrap returns ErrInvalidRow for errors.Is() compatibility.
func (e *RowError) Unwrap() error { return ErrInvalidRow }

// DuplicateCellError is returned when a cell identifier is not unique.
type DuplicateCellError struct {
	Path      string
	Cell      string
	FirstLine int
	Line      int
}

func (e *DuplicateCellError) Error() string {
	return fmt.Sprintf("duplicate cell %q in %s: lines %d and %d", e.Cell, e.Path, e.FirstLine, e.Line)
}

// Unwrap returns ErrDuplicateCell for errors.Is() compatibility.
func (e *DuplicateCellError) Unwrap() error { return ErrDuplicateCell }

// UnknownCellError is returned when the cell is not in the cell table.
type UnknownCellError struct {
	Cell string
}

func (e *UnknownCellError) Error() string {
	return fmt.Sprintf("cell not in cell table: %s", e.Cell)
}

// Unwrap returns ErrUnknownCell for errors.Is() compatibility.
func (e *UnknownCellError) Unwrap() error { return ErrUnknownCell }

// MissingSampleError is returned when the row of a cell has no sample.
type MissingSampleError struct {
	Cell string
}

func (e *MissingSampleError) Error() string {
	return fmt.Sprintf("no SAMPLE for cell: %s", e.Cell)
}

// Unwrap returns ErrMissingSample for errors.Is() compatibility.
func (e *MissingSampleError) Unwrap() error { return ErrMissingSample }

// MissingDefaultError is returned when a field has neither a row override nor a default.
// Field is the configuration key that would have supplied the default.
type MissingDefaultError struct {
	Field string
	Cell  string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("no %s default for cell: %s", e.Field, e.Cell)
}

// Unwrap returns ErrMissingDefault for errors.Is() compatibility.
func (e *MissingDefaultError) Unwrap() error { return ErrMissingDefault }

// MalformedTemplateError is returned when the default FAST5 directory lacks {cell}.
type MalformedTemplateError struct {
	Template string
	Cell     string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("default fast5_dir is missing wildcard \"{cell}\": %q (cell %s)", e.Template, e.Cell)
}

// Unwrap returns ErrMalformedTemplate for errors.Is() compatibility.
func (e *MalformedTemplateError) Unwrap() error { return ErrMalformedTemplate }

// MissingSectionError is returned when a configuration section is absent.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("no %q section in config", e.Section)
}

// Unwrap returns ErrMissingSection for errors.Is() compatibility.
func (e *MissingSectionError) Unwrap() error { return ErrMissingSection }

// UnknownProfileError is returned when the resolved profile is not configured.
type UnknownProfileError struct {
	Profile string
	Cell    string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("no profile in configuration section with name %q: cell %q", e.Profile, e.Cell)
}

// Unwrap returns ErrUnknownProfile for errors.Is() compatibility.
func (e *UnknownProfileError) Unwrap() error { return ErrUnknownProfile }

// IncompleteProfileError is returned when a profile lacks guppy_dir or cfg.
type IncompleteProfileError struct {
	Field   string
	Profile string
	Cell    string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("profile %q is missing %q entry: cell %q", e.Profile, e.Field, e.Cell)
}

// Unwrap returns ErrIncompleteProfile for errors.Is() compatibility.
func (e *IncompleteProfileError) Unwrap() error { return ErrIncompleteProfile }
