package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"k8s.io/utils/ptr"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
)

// unsetMarker is shown for optional values that are not set.
const unsetMarker = "-"

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(names ...string) table.Row {
	row := make(table.Row, len(names))
	for i, n := range names {
		row[i] = text.FgHiCyan.Sprint(n)
	}
	return row
}

// CellTable renders the rows of a cell table.
func CellTable(w io.Writer, ct *models.CellTable) {
	t := newTable(w)
	t.AppendHeader(header(models.ColumnCell, models.ColumnSample, models.ColumnFast5Dir, models.ColumnProfile))
	for _, row := range ct.Rows() {
		t.AppendRow(table.Row{
			row.Cell,
			ptr.Deref(row.Sample, unsetMarker),
			ptr.Deref(row.Fast5Dir, unsetMarker),
			ptr.Deref(row.Profile, unsetMarker),
		})
	}
	t.AppendFooter(table.Row{"", "", "cells", ct.Len()})
	t.Render()
}

// CellEntries renders resolved entries.
func CellEntries(w io.Writer, entries []*models.CellEntry) {
	t := newTable(w)
	t.AppendHeader(header("CELL", "SAMPLE", "FAST5_DIR", "PROFILE", "GUPPY_DIR", "CFG"))
	for _, e := range entries {
		t.AppendRow(table.Row{e.Cell, e.Sample, e.Fast5Dir, e.Profile, e.GuppyDir, e.Cfg})
	}
	t.Render()
}
