// Package parser reads raw cell table content from delimited and spreadsheet files.
package parser

import "strings"

// Table is the raw content of a tabular source: a header row and the records below it.
type Table struct {
	// Header holds the column names in source order.
	Header []string
	// Records holds the data rows in source order. Blank rows are kept.
	Records []Record
}

// Record is one data row.
type Record struct {
	// Line is the 1-based line (TSV) or sheet row (XLSX) of the record.
	Line int
	// Values holds the trimmed cell values. It may be shorter than Header.
	Values []string
}

// Value returns the value in column i, or "" when the record is short.
func (r Record) Value(i int) string {
	if i < 0 || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// Blank reports whether every value of the record is empty.
func (r Record) Blank() bool {
	for _, v := range r.Values {
		if v != "" {
			return false
		}
	}
	return true
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func trimValues(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
