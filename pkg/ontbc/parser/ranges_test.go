package parser

import (
	"reflect"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input     string
		sheet     string
		area      Area
		expectErr bool
	}{
		{"A1:D10", "", Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$E$40", "", Area{R1: 2, C1: 2, R2: 40, C2: 5}, false},
		{"'Run Sheet'!A3:B4", "Run Sheet", Area{R1: 3, C1: 1, R2: 4, C2: 2}, false},
		{"Cells!D10:A1", "Cells", Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"A1", "", Area{}, true},
		{"A1:ZZ", "", Area{}, true},
	}

	for _, tt := range tests {
		sheet, area, err := ParseRange(tt.input)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseRange(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if sheet != tt.sheet || area != tt.area {
			t.Errorf("ParseRange(%q) = %q %+v, expected %q %+v", tt.input, sheet, area, tt.sheet, tt.area)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", ""},
		{"", "CELL", "SAMPLE"},
		{"", "FC1"},
		{},
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 2 || maxRow != 3 || minCol != 1 || maxCol != 2 {
		t.Errorf("findDataBounds = (%d,%d,%d,%d), expected (2,3,1,2)", minRow, maxRow, minCol, maxCol)
	}

	if r, _, _, _ := findDataBounds([][]string{{"", ""}}); r != -1 {
		t.Errorf("expected -1 for empty rows, got %d", r)
	}
}

func TestCrop(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d"},
	}

	got := crop(rows, 0, 2, 1, 2)
	expected := [][]string{
		{"b", "c"},
		{"", ""},
		{"", ""},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("crop = %v, expected %v", got, expected)
	}

	if got := crop(rows, -1, 0, 0, 0); got != nil {
		t.Errorf("expected nil for empty bounds, got %v", got)
	}
}
