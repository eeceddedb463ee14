package ontbc

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/parser"
	"k8s.io/utils/ptr"
)

// requiredColumns are checked in this order so errors list them consistently.
var requiredColumns = []string{models.ColumnSample, models.ColumnCell}

// LoadCellTable reads the cell table at path.
//
// A path that is not an existing file yields an empty table with the CELL,
// FAST5_DIR and PROFILE columns. Files ending in .tsv or .tsv.gz are read as
// tab-separated text and .xlsx files as workbooks; any other suffix fails
// with a FormatError.
func LoadCellTable(path string, opts Options) (*models.CellTable, error) {
	logger := opts.logger()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		logger.Debug("no cell table file, using empty table", "path", path)
		return models.NewEmptyCellTable(), nil
	}

	var raw *parser.Table
	switch {
	case strings.HasSuffix(path, ".tsv"):
		raw, err = parser.ReadTSVFile(path, false)
	case strings.HasSuffix(path, ".tsv.gz"):
		raw, err = parser.ReadTSVFile(path, true)
	case strings.HasSuffix(path, ".xlsx"):
		raw, err = parser.ReadXLSXFile(path, parser.XLSXOptions{Sheet: opts.Sheet, Range: opts.Range})
	default:
		return nil, &FormatError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cell table: %w", err)
	}

	table, err := buildCellTable(path, raw)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded cell table", "path", path, "cells", table.Len(), "columns", table.Columns())
	return table, nil
}

func buildCellTable(path string, raw *parser.Table) (*models.CellTable, error) {
	var missing []string
	for _, col := range requiredColumns {
		if raw.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	columns := append([]string(nil), raw.Header...)
	for _, col := range []string{models.ColumnFast5Dir, models.ColumnProfile} {
		if raw.ColumnIndex(col) < 0 {
			columns = append(columns, col)
		}
	}

	cellIdx := raw.ColumnIndex(models.ColumnCell)
	sampleIdx := raw.ColumnIndex(models.ColumnSample)
	fast5Idx := raw.ColumnIndex(models.ColumnFast5Dir)
	profileIdx := raw.ColumnIndex(models.ColumnProfile)

	firstLine := make(map[string]int)
	rows := make([]models.CellTableRow, 0, len(raw.Records))
	for _, rec := range raw.Records {
		if rec.Blank() {
			continue
		}

		cell := rec.Value(cellIdx)
		if isMissing(cell) {
			return nil, &RowError{Path: path, Line: rec.Line, Reason: "empty CELL"}
		}
		if line, ok := firstLine[cell]; ok {
			return nil, &DuplicateCellError{Path: path, Cell: cell, FirstLine: line, Line: rec.Line}
		}
		firstLine[cell] = rec.Line

		row := models.CellTableRow{
			Cell:     cell,
			Sample:   optional(rec, sampleIdx),
			Fast5Dir: optional(rec, fast5Idx),
			Profile:  optional(rec, profileIdx),
			Line:     rec.Line,
		}
		for i, name := range raw.Header {
			if i == cellIdx || i == sampleIdx || i == fast5Idx || i == profileIdx || name == "" {
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[name] = rec.Value(i)
		}

		rows = append(rows, row)
	}

	return models.NewCellTable(path, columns, rows), nil
}

// missingValues are the tokens read as "no value", matching the default NA
// markers of pandas.read_csv.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isMissing(v string) bool {
	_, ok := missingValues[v]
	return ok
}

// optional returns nil for an absent column, a blank value or an NA marker.
func optional(rec parser.Record, idx int) *string {
	if idx < 0 {
		return nil
	}
	v := rec.Value(idx)
	if isMissing(v) {
		return nil
	}
	return ptr.To(v)
}
