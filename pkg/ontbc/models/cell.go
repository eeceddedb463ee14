// Package models defines data structures for cell resolution.
package models

// Column names recognized in a cell table header. Matching is case-sensitive.
const (
	ColumnCell     = "CELL"
	ColumnSample   = "SAMPLE"
	ColumnFast5Dir = "FAST5_DIR"
	ColumnProfile  = "PROFILE"
)

// CellTableRow represents one row of the cell table.
type CellTableRow struct {
	// Cell is the unique cell identifier.
	Cell string `json:"cell" yaml:"cell"`
	// Sample is the sample the cell belongs to (nil if the source value was blank).
	Sample *string `json:"sample,omitempty" yaml:"sample,omitempty"`
	// Fast5Dir overrides the default FAST5 directory template (nil if unset).
	Fast5Dir *string `json:"fast5_dir,omitempty" yaml:"fast5_dir,omitempty"`
	// Profile overrides the default profile name (nil if unset).
	Profile *string `json:"profile,omitempty" yaml:"profile,omitempty"`
	// Extra holds values of unrecognized columns keyed by header name.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
	// Line is the 1-based source line or sheet row the cell was read from.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// Clone returns a deep copy of the row.
func (r CellTableRow) Clone() CellTableRow {
	out := r
	out.Sample = cloneString(r.Sample)
	out.Fast5Dir = cloneString(r.Fast5Dir)
	out.Profile = cloneString(r.Profile)
	if r.Extra != nil {
		out.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
