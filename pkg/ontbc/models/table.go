package models

// CellTable is an ordered, cell-indexed view of a cell table file.
// It is immutable after construction; accessors hand out copies.
type CellTable struct {
	path    string
	columns []string
	rows    []CellTableRow
	index   map[string]int
}

// BaselineColumns are the columns of a table built without a source file.
var BaselineColumns = []string{ColumnCell, ColumnFast5Dir, ColumnProfile}

// NewEmptyCellTable returns a table with the baseline columns and no rows.
func NewEmptyCellTable() *CellTable {
	return &CellTable{
		columns: append([]string(nil), BaselineColumns...),
		index:   map[string]int{},
	}
}

// NewCellTable builds a table from rows already validated for unique cells.
// Rows are copied; later changes to the slice do not affect the table.
func NewCellTable(path string, columns []string, rows []CellTableRow) *CellTable {
	t := &CellTable{
		path:    path,
		columns: append([]string(nil), columns...),
		rows:    make([]CellTableRow, 0, len(rows)),
		index:   make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		t.index[row.Cell] = len(t.rows)
		t.rows = append(t.rows, row.Clone())
	}
	return t
}

// Path returns the file the table was read from, or "" for an empty default table.
func (t *CellTable) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Columns returns the column names present in the table.
func (t *CellTable) Columns() []string {
	if t == nil {
		return append([]string(nil), BaselineColumns...)
	}
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether name is one of the table columns.
func (t *CellTable) HasColumn(name string) bool {
	for _, c := range t.Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *CellTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Has reports whether cell is a key of the table.
func (t *CellTable) Has(cell string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[cell]
	return ok
}

// Row returns a copy of the row for cell.
func (t *CellTable) Row(cell string) (CellTableRow, bool) {
	if t == nil {
		return CellTableRow{}, false
	}
	i, ok := t.index[cell]
	if !ok {
		return CellTableRow{}, false
	}
	return t.rows[i].Clone(), true
}

// Cells returns the cell identifiers in table order.
func (t *CellTable) Cells() []string {
	if t == nil {
		return nil
	}
	cells := make([]string, len(t.rows))
	for i, row := range t.rows {
		cells[i] = row.Cell
	}
	return cells
}

// Rows returns copies of all rows in table order.
func (t *CellTable) Rows() []CellTableRow {
	if t == nil {
		return nil
	}
	rows := make([]CellTableRow, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Clone()
	}
	return rows
}
