package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ErrEmptyFile indicates a table file without a header row.
var ErrEmptyFile = errors.New("table file has no header row")

// ReadTSVFile reads a tab-separated file with a header row.
// When gzipped is true the file is decompressed while reading.
func ReadTSVFile(path string, gzipped bool) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	t, err := ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadTSV reads tab-separated records. The first record is the header.
// Empty lines are skipped by the reader; rows may have fewer fields than the header.
func ReadTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Header: normalizeHeader(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		t.Records = append(t.Records, Record{
			Line:   line,
			Values: trimValues(rec),
		})
	}

	return t, nil
}
