package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXOptions selects what part of a workbook holds the cell table.
type XLSXOptions struct {
	// Sheet is the sheet name. Empty selects the first sheet.
	Sheet string
	// Range restricts reading to a cell range such as "A1:D20". Empty reads the used area.
	Range string
}

// ReadXLSXFile reads a cell table from a workbook. The first row of the selected
// area is the header.
func ReadXLSXFile(path string, opts XLSXOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadXLSX(f, opts)
}

// ReadXLSX reads a cell table from an open workbook.
func ReadXLSX(f *excelize.File, opts XLSXOptions) (*Table, error) {
	sheetName := opts.Sheet
	var area *Area
	if opts.Range != "" {
		rangeSheet, a, err := ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		if rangeSheet != "" {
			sheetName = rangeSheet
		}
		area = &a
	}

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyFile
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	// Row offset of rows[0] in the sheet, for 1-based record lines.
	offset := 0
	if area != nil {
		rows = crop(rows, area.R1-1, area.R2-1, area.C1-1, area.C2-1)
		offset = area.R1 - 1
	} else {
		minRow, maxRow, minCol, maxCol := findDataBounds(rows)
		if minRow < 0 {
			return nil, ErrEmptyFile
		}
		rows = crop(rows, minRow, maxRow, minCol, maxCol)
		offset = minRow
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	t := &Table{Header: normalizeHeader(rows[0])}
	for i, row := range rows[1:] {
		t.Records = append(t.Records, Record{
			Line:   offset + i + 2,
			Values: trimValues(row),
		})
	}

	return t, nil
}
