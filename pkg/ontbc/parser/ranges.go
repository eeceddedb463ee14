package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is a rectangular cell range with 1-based, inclusive coordinates.
type Area struct {
	R1, C1, R2, C2 int
}

// ParseRange parses a range like "B2:E40" or "$B$2:$E$40".
// A sheet prefix ("'Cells'!A1:D9") is accepted and returned separately.
func ParseRange(ref string) (sheet string, area Area, err error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return "", Area{}, fmt.Errorf("invalid cell range %q: expected START:END", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", Area{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", Area{}, fmt.Errorf("invalid cell range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return sheet, Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
